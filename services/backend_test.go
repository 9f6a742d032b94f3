package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IamDalemark/energy-consumption-frontend/config"
	"github.com/IamDalemark/energy-consumption-frontend/models"
)

func newTestClient(url string) *BackendClient {
	return NewBackendClient(config.BackendConfig{BaseURL: url, TimeoutSec: 2})
}

func TestDatasetRawRelaysBodyUnchanged(t *testing.T) {
	const body = `{"data":[{"building_type":"Residential"}],"total":1,"page":1,"limit":50,"pages":1,"extra":"untouched"}`

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dataset" {
			t.Errorf("backend path = %q, want /dataset", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).DatasetRaw(context.Background(), 2, 25)
	if err != nil {
		t.Fatalf("DatasetRaw() error: %v", err)
	}
	if string(got) != body {
		t.Errorf("relayed body = %q, want backend body unchanged", got)
	}
	if gotQuery != "page=2&limit=25" {
		t.Errorf("backend query = %q, want page=2&limit=25", gotQuery)
	}
}

func TestDatasetRawBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).DatasetRaw(context.Background(), 1, 50)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("error = %v, want ErrBackendUnavailable", err)
	}
}

func TestFetchDatasetBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchDataset(context.Background(), 1, 50)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("error = %v, want ErrBackendUnavailable", err)
	}
}

func TestPredictForwardsExactlyFourFields(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Errorf("backend path = %q, want /predict", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode forwarded body: %v", err)
		}
		w.Write([]byte(`{"energy_consumption":400,"unit":"kWh"}`))
	}))
	defer srv.Close()

	input := models.PredictionInput{
		BuildingType:      models.BuildingResidential,
		SquareFootage:     250,
		NumberOfOccupants: 4,
		AppliancesUsed:    20,
	}
	result, err := newTestClient(srv.URL).Predict(context.Background(), input)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}

	if len(received) != 4 {
		t.Errorf("forwarded body has %d fields, want 4: %v", len(received), received)
	}
	if received["building_type"] != "Residential" {
		t.Errorf("forwarded building_type = %v", received["building_type"])
	}
	if result.EnergyConsumption != 400 {
		t.Errorf("EnergyConsumption = %v, want 400", result.EnergyConsumption)
	}
}

func TestPredictNormalizesSparseResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"energy_consumption":120}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Predict(context.Background(), models.PredictionInput{})
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	if result.Unit != "kWh" {
		t.Errorf("Unit = %q, want kWh", result.Unit)
	}
	if result.Factors != (models.Factors{}) {
		t.Errorf("Factors = %+v, want all zeros", result.Factors)
	}
}

func TestPredictBackendFailure(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Predict(context.Background(), models.PredictionInput{})
		if !errors.Is(err, ErrBackendUnavailable) {
			t.Errorf("error = %v, want ErrBackendUnavailable", err)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := newTestClient(srv.URL).Predict(context.Background(), models.PredictionInput{})
		if !errors.Is(err, ErrBackendUnavailable) {
			t.Errorf("error = %v, want ErrBackendUnavailable", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>oops</html>"))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Predict(context.Background(), models.PredictionInput{})
		if !errors.Is(err, ErrBackendUnavailable) {
			t.Errorf("error = %v, want ErrBackendUnavailable", err)
		}
	})
}
