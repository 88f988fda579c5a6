package subscriptions

import (
	"testing"
	"time"
)

func activeSub(weekIDs []uint, end time.Time) *Subscription {
	return &Subscription{
		Plan:           string(PlanMonthly),
		StartDate:      day(2026, 3, 1),
		EndDate:        end,
		AllowedWeekIDs: weekIDs,
		IsActive:       true,
	}
}

func TestCanAccessWeek(t *testing.T) {
	now := day(2026, 3, 10)

	t.Run("no subscription denies", func(t *testing.T) {
		if CanAccessWeek(nil, 1, now) {
			t.Error("nil subscription must deny")
		}
	})

	t.Run("expired denies even while is_active", func(t *testing.T) {
		sub := activeSub([]uint{1}, day(2026, 3, 5))
		if CanAccessWeek(sub, 1, now) {
			t.Error("expired subscription must deny regardless of is_active")
		}
	})

	t.Run("week outside window denies", func(t *testing.T) {
		sub := activeSub([]uint{1, 2}, day(2026, 4, 1))
		if CanAccessWeek(sub, 3, now) {
			t.Error("week not in allowed_week_ids must deny")
		}
	})

	t.Run("week inside window allows", func(t *testing.T) {
		sub := activeSub([]uint{1, 2}, day(2026, 4, 1))
		if !CanAccessWeek(sub, 2, now) {
			t.Error("week in allowed_week_ids must allow")
		}
	})

	t.Run("empty entitlement denies everything", func(t *testing.T) {
		sub := activeSub([]uint{}, day(2026, 4, 1))
		if CanAccessWeek(sub, 1, now) {
			t.Error("empty allowed_week_ids must deny")
		}
	})
}

func TestExpiredOnBoundary(t *testing.T) {
	sub := activeSub([]uint{1}, day(2026, 4, 1))
	if sub.Expired(day(2026, 4, 1)) {
		t.Error("subscription ending now is not yet expired")
	}
	if !sub.Expired(day(2026, 4, 2)) {
		t.Error("subscription past its end date is expired")
	}
}
