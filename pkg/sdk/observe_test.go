package resrank

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserver_NilSafe(t *testing.T) {
	var obs *observer
	obs.observe("test", time.Now(), nil)
	obs.observe("test", time.Now(), errors.New("err"))
	obs.observeDocuments(1, 1)
}

func TestObserver_WithPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observe("rank", time.Now().Add(-10*time.Millisecond), nil)
	obs.observe("rank", time.Now(), errors.New("fail"))
	obs.observeDocuments(3, 1)

	if got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("rank", "ok")); got != 1 {
		t.Errorf("operations{rank,ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("rank", "error")); got != 1 {
		t.Errorf("operations{rank,error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(obs.metrics.documents.WithLabelValues("readable")); got != 3 {
		t.Errorf("documents{readable} = %v, want 3", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "resrank_sdk_operations_total" {
			found = true
		}
	}
	if !found {
		t.Error("resrank_sdk_operations_total not found")
	}
}

func TestObserver_ReusesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("first observer: %v", err)
	}
	second, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("second observer: %v", err)
	}
	if first.metrics.operations != second.metrics.operations {
		t.Error("expected the second observer to reuse registered collectors")
	}
}

func TestObserver_WithLogger(t *testing.T) {
	obs, err := newObserver(slog.Default(), nil)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}
	obs.observe("rank", time.Now(), nil, "run_id", "r1")
	obs.observe("rank", time.Now(), errors.New("test error"))
}

func TestNew_WithPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(WithPrometheus(reg)); err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := New(WithPrometheus(reg)); err != nil {
		t.Fatalf("second New on same registry: %v", err)
	}
}
