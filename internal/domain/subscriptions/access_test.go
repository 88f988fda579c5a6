package subscriptions

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"campus-portal/internal/domain/weeks"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeWeekSource struct {
	weeks []weeks.Week
}

func (f fakeWeekSource) WeekContaining(date time.Time) (*weeks.Week, error) {
	for i := range f.weeks {
		w := f.weeks[i]
		if !date.Before(w.StartDate) && !date.After(w.EndDate) {
			return &w, nil
		}
	}
	return nil, nil
}

func (f fakeWeekSource) WeeksInMonth(month int, year int) ([]weeks.Week, error) {
	var out []weeks.Week
	for _, w := range f.weeks {
		if w.Month == month && w.Year == year {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f fakeWeekSource) WeeksInRange(start time.Time, end time.Time) ([]weeks.Week, error) {
	var out []weeks.Week
	for _, w := range f.weeks {
		if !w.EndDate.Before(start) && !w.StartDate.After(end) {
			out = append(out, w)
		}
	}
	return out, nil
}

func week(id uint, start, end time.Time) weeks.Week {
	return weeks.Week{
		ID:        id,
		StartDate: start,
		EndDate:   end,
		Month:     int(start.Month()),
		Year:      start.Year(),
	}
}

func TestCalculateAccessWeekly(t *testing.T) {
	src := fakeWeekSource{weeks: []weeks.Week{
		week(1, day(2026, 3, 1), day(2026, 3, 7)),
	}}

	access, err := CalculateAccess(src, PlanWeekly, day(2026, 3, 3))
	if err != nil {
		t.Fatalf("CalculateAccess returned error: %v", err)
	}

	if !access.EndDate.Equal(day(2026, 3, 10)) {
		t.Errorf("expected end date 2026-03-10, got %v", access.EndDate)
	}
	if !reflect.DeepEqual(access.WeekIDs, []uint{1}) {
		t.Errorf("expected week ids [1], got %v", access.WeekIDs)
	}
}

func TestCalculateAccessWeeklyBoundary(t *testing.T) {
	src := fakeWeekSource{weeks: []weeks.Week{
		week(1, day(2026, 3, 1), day(2026, 3, 7)),
	}}

	// Start exactly on the week's end date: inclusive, the week counts.
	access, err := CalculateAccess(src, PlanWeekly, day(2026, 3, 7))
	if err != nil {
		t.Fatalf("CalculateAccess returned error: %v", err)
	}
	if !reflect.DeepEqual(access.WeekIDs, []uint{1}) {
		t.Errorf("start on end_date should include the week, got %v", access.WeekIDs)
	}

	// One day later: outside every configured week, empty entitlement.
	access, err = CalculateAccess(src, PlanWeekly, day(2026, 3, 8))
	if err != nil {
		t.Fatalf("CalculateAccess returned error: %v", err)
	}
	if len(access.WeekIDs) != 0 {
		t.Errorf("start after end_date should grant no weeks, got %v", access.WeekIDs)
	}
	if !access.EndDate.Equal(day(2026, 3, 15)) {
		t.Errorf("end date must still be start+7d, got %v", access.EndDate)
	}
}

func TestCalculateAccessMonthly(t *testing.T) {
	src := fakeWeekSource{weeks: []weeks.Week{
		week(1, day(2026, 3, 2), day(2026, 3, 8)),
		week(2, day(2026, 3, 9), day(2026, 3, 15)),
		week(3, day(2026, 3, 16), day(2026, 3, 22)),
		week(4, day(2026, 3, 23), day(2026, 3, 29)),
		week(5, day(2026, 4, 6), day(2026, 4, 12)),
	}}

	access, err := CalculateAccess(src, PlanMonthly, day(2026, 3, 15))
	if err != nil {
		t.Fatalf("CalculateAccess returned error: %v", err)
	}

	if !access.EndDate.Equal(day(2026, 4, 15)) {
		t.Errorf("expected end date 2026-04-15, got %v", access.EndDate)
	}
	if !reflect.DeepEqual(access.WeekIDs, []uint{1, 2, 3, 4}) {
		t.Errorf("expected March weeks [1 2 3 4], got %v", access.WeekIDs)
	}
	for _, id := range access.WeekIDs {
		if id == 5 {
			t.Error("April week must not be included in a March monthly window")
		}
	}
}

func TestCalculateAccessMonthlyLateStart(t *testing.T) {
	// Starting on the last day of the month still means "this calendar
	// month's weeks" — almost nothing left. Intentional policy.
	src := fakeWeekSource{weeks: []weeks.Week{
		week(1, day(2026, 3, 2), day(2026, 3, 8)),
		week(2, day(2026, 4, 6), day(2026, 4, 12)),
	}}

	access, err := CalculateAccess(src, PlanMonthly, day(2026, 3, 31))
	if err != nil {
		t.Fatalf("CalculateAccess returned error: %v", err)
	}
	if !reflect.DeepEqual(access.WeekIDs, []uint{1}) {
		t.Errorf("expected only March weeks, got %v", access.WeekIDs)
	}
}

func TestCalculateAccessSemester(t *testing.T) {
	src := fakeWeekSource{weeks: []weeks.Week{
		week(1, day(2026, 1, 19), day(2026, 1, 25)), // entirely before
		week(2, day(2026, 1, 26), day(2026, 2, 1)),  // spans the start boundary
		week(3, day(2026, 3, 2), day(2026, 3, 8)),   // inside
		week(4, day(2026, 6, 8), day(2026, 6, 14)),  // entirely after
	}}

	access, err := CalculateAccess(src, PlanSemester, day(2026, 2, 1))
	if err != nil {
		t.Fatalf("CalculateAccess returned error: %v", err)
	}

	if !access.EndDate.Equal(day(2026, 6, 1)) {
		t.Errorf("expected end date 2026-06-01, got %v", access.EndDate)
	}
	if !reflect.DeepEqual(access.WeekIDs, []uint{2, 3}) {
		t.Errorf("expected weeks [2 3], got %v", access.WeekIDs)
	}
}

func TestCalculateAccessIdempotent(t *testing.T) {
	src := fakeWeekSource{weeks: []weeks.Week{
		week(1, day(2026, 3, 2), day(2026, 3, 8)),
		week(2, day(2026, 3, 9), day(2026, 3, 15)),
	}}

	first, err := CalculateAccess(src, PlanMonthly, day(2026, 3, 5))
	if err != nil {
		t.Fatalf("CalculateAccess returned error: %v", err)
	}
	second, err := CalculateAccess(src, PlanMonthly, day(2026, 3, 5))
	if err != nil {
		t.Fatalf("CalculateAccess returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same inputs must yield the same access window: %v vs %v", first, second)
	}
}

func TestCalculateAccessRejectsUnknownPlan(t *testing.T) {
	src := fakeWeekSource{}
	_, err := CalculateAccess(src, Plan("annual"), day(2026, 3, 1))
	if !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}
}

func TestCalculateAccessNormalizesStartToDate(t *testing.T) {
	src := fakeWeekSource{weeks: []weeks.Week{
		week(1, day(2026, 3, 1), day(2026, 3, 7)),
	}}

	noon := time.Date(2026, 3, 3, 12, 30, 0, 0, time.UTC)
	access, err := CalculateAccess(src, PlanWeekly, noon)
	if err != nil {
		t.Fatalf("CalculateAccess returned error: %v", err)
	}
	if !access.StartDate.Equal(day(2026, 3, 3)) {
		t.Errorf("start date should be truncated to midnight UTC, got %v", access.StartDate)
	}
}
