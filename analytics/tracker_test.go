package analytics

import (
	"testing"
	"time"
)

// with analytics off, the tracker must be a safe no-op even before any
// connection has been injected (handlers call it unconditionally)
func TestTrackerDisabledIsNoOp(t *testing.T) {
	t.Setenv("USE_ANALYTICS", "")

	tracker := new(Tracker)

	tracker.SaveVisitor("question", "abc123", "ann@example.com")

	visits, err := tracker.GetVisits("question", "abc123", time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("get visits failed: %v", err)
	}
	if visits != -1 {
		t.Fatalf("visits = %d, want -1 (disabled marker)", visits)
	}

	visitors, err := tracker.RecentVisitors("question", "abc123")
	if err != nil {
		t.Fatalf("recent visitors failed: %v", err)
	}
	if visitors != nil {
		t.Fatalf("visitors = %v, want nil", visitors)
	}
}
