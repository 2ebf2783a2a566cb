package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordCacheLookup(t *testing.T) {
	before := testutil.ToFloat64(CacheLookups.WithLabelValues("stats", "hit"))
	RecordCacheLookup("stats", true)
	after := testutil.ToFloat64(CacheLookups.WithLabelValues("stats", "hit"))
	if after-before != 1 {
		t.Fatalf("expected hit counter to grow by 1, got %v", after-before)
	}
}

func TestRecordUpstream(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequests.WithLabelValues("modrinth", "ok"))
	RecordUpstream("modrinth", "ok")
	RecordUpstream("modrinth", "ok")
	after := testutil.ToFloat64(UpstreamRequests.WithLabelValues("modrinth", "ok"))
	if after-before != 2 {
		t.Fatalf("expected 2 new requests, got %v", after-before)
	}
}

func TestRecordRenderObserves(t *testing.T) {
	RecordRender("card", "svg", 3*time.Millisecond)
	if n := testutil.CollectAndCount(RenderDuration); n == 0 {
		t.Fatalf("render histogram should expose at least one series")
	}
}
