package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/predict", "200"))

	RecordHTTPRequest("POST", "/api/predict", 200, 25*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/predict", "200"))
	if after != before+1 {
		t.Errorf("expected counter to increment, got %v -> %v", before, after)
	}
}

func TestRecordSnapshotRefresh(t *testing.T) {
	RecordSnapshotRefresh("success", 20)
	if got := testutil.ToFloat64(StoreTeams); got != 20 {
		t.Errorf("expected store teams gauge 20, got %v", got)
	}

	// Failures leave the gauge at the last good value.
	RecordSnapshotRefresh("failure", 0)
	if got := testutil.ToFloat64(StoreTeams); got != 20 {
		t.Errorf("failed refresh should not reset gauge, got %v", got)
	}
}

func TestRecordIngestRun(t *testing.T) {
	RecordIngestRun("success", 380, 2*time.Second)
	if got := testutil.ToFloat64(IngestMatches); got != 380 {
		t.Errorf("expected ingest matches gauge 380, got %v", got)
	}
}
