package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	proxyRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "energy_frontend_proxy_requests_total",
		Help: "Total proxied backend requests by endpoint.",
	}, []string{"endpoint"})
	proxyFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "energy_frontend_proxy_failures_total",
		Help: "Total failed backend calls by endpoint.",
	}, []string{"endpoint"})
	liveClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "energy_frontend_live_clients",
		Help: "Currently connected live feed websocket clients.",
	})
)
