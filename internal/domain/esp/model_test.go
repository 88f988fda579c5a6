package esp

import "testing"

func TestValidTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusPending, StatusInProgress},
		{StatusPending, StatusRejected},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusRejected},
	}
	for _, tc := range allowed {
		if !ValidTransition(tc.from, tc.to) {
			t.Errorf("transition %s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{StatusCompleted, StatusPending},
		{StatusRejected, StatusInProgress},
		{StatusPending, StatusCompleted},
		{StatusInProgress, StatusPending},
	}
	for _, tc := range denied {
		if ValidTransition(tc.from, tc.to) {
			t.Errorf("transition %s -> %s should be denied", tc.from, tc.to)
		}
	}
}
