package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/IamDalemark/energy-consumption-frontend/config"
	"github.com/IamDalemark/energy-consumption-frontend/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var liveBroadcasts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "energy_frontend_live_broadcasts_total",
	Help: "Total number of live dataset frames broadcast to subscribers.",
})

const liveFeedLimit = 20

// DatasetUpdate is one live feed frame. Seq is monotonic so clients can drop
// frames that arrive out of order.
type DatasetUpdate struct {
	Type string              `json:"type"`
	Seq  uint64              `json:"seq"`
	Data []models.DatasetRow `json:"data"`
}

// LiveFeed polls the first dataset page on an interval and fans the rows out
// to websocket subscribers.
type LiveFeed struct {
	backend  *BackendClient
	interval time.Duration

	mu   sync.Mutex
	subs map[chan DatasetUpdate]struct{}
	seq  uint64
}

func NewLiveFeed(backend *BackendClient, cfg config.LiveConfig) *LiveFeed {
	return &LiveFeed{
		backend:  backend,
		interval: time.Duration(cfg.PollIntervalSec) * time.Second,
		subs:     make(map[chan DatasetUpdate]struct{}),
	}
}

// Subscribe registers a new listener. The returned channel is buffered; slow
// consumers miss frames instead of stalling the feed.
func (f *LiveFeed) Subscribe() chan DatasetUpdate {
	ch := make(chan DatasetUpdate, 4)
	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()
	return ch
}

func (f *LiveFeed) Unsubscribe(ch chan DatasetUpdate) {
	f.mu.Lock()
	delete(f.subs, ch)
	f.mu.Unlock()
}

// Run polls until the context is cancelled. Poll failures are logged and
// skipped; the next tick tries again.
func (f *LiveFeed) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.poll(ctx)
	for {
		select {
		case <-ticker.C:
			f.poll(ctx)
		case <-ctx.Done():
			log.Printf("live feed shutting down")
			return
		}
	}
}

func (f *LiveFeed) poll(ctx context.Context) {
	page, err := f.backend.FetchDataset(ctx, 1, liveFeedLimit)
	if err != nil {
		log.Printf("live feed poll failed: %v", err)
		return
	}
	f.Broadcast(page.Data)
}

// Broadcast stamps the rows with the next sequence number and delivers them to
// every subscriber without blocking.
func (f *LiveFeed) Broadcast(rows []models.DatasetRow) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	update := DatasetUpdate{Type: "dataset_update", Seq: f.seq, Data: rows}
	for ch := range f.subs {
		select {
		case ch <- update:
		default:
		}
	}
	liveBroadcasts.Inc()
}
