package subscriptions

import (
	"errors"
	"fmt"
	"strings"
)

// Plan is the purchased subscription tier. The three values below are the
// only ones that may reach the access calculator; ParsePlan rejects
// everything else so a legacy or mistyped value fails loudly instead of
// falling through with an empty access window.
type Plan string

const (
	PlanWeekly   Plan = "weekly"
	PlanMonthly  Plan = "monthly"
	PlanSemester Plan = "semester"
)

var ErrInvalidPlan = errors.New("invalid subscription plan")

func ParsePlan(s string) (Plan, error) {
	switch Plan(strings.ToLower(strings.TrimSpace(s))) {
	case PlanWeekly:
		return PlanWeekly, nil
	case PlanMonthly:
		return PlanMonthly, nil
	case PlanSemester:
		return PlanSemester, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPlan, s)
}
