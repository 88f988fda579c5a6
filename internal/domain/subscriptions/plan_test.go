package subscriptions

import (
	"errors"
	"testing"
)

func TestParsePlan(t *testing.T) {
	cases := []struct {
		in   string
		want Plan
	}{
		{"weekly", PlanWeekly},
		{"monthly", PlanMonthly},
		{"semester", PlanSemester},
		{" Weekly ", PlanWeekly},
		{"SEMESTER", PlanSemester},
	}
	for _, tc := range cases {
		got, err := ParsePlan(tc.in)
		if err != nil {
			t.Errorf("ParsePlan(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePlan(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParsePlanRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "annual", "week", "yearly"} {
		if _, err := ParsePlan(in); !errors.Is(err, ErrInvalidPlan) {
			t.Errorf("ParsePlan(%q) should fail with ErrInvalidPlan, got %v", in, err)
		}
	}
}
