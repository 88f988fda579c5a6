package subscriptions

import (
	"time"

	"campus-portal/internal/domain/weeks"
)

// semesterDays is the fixed paid-through window of the semester plan.
const semesterDays = 120

// Access is the computed entitlement window of one subscription: when it
// runs out and which academic weeks it unlocks. It is recomputed fresh on
// every purchase and never mutated.
type Access struct {
	StartDate time.Time
	EndDate   time.Time
	WeekIDs   []uint
}

// WeekSource is the lookup surface the calculator needs. weeks.Store is the
// gorm-backed implementation; tests supply fixtures.
type WeekSource interface {
	WeekContaining(date time.Time) (*weeks.Week, error)
	WeeksInMonth(month int, year int) ([]weeks.Week, error)
	WeeksInRange(start time.Time, end time.Time) ([]weeks.Week, error)
}

// CalculateAccess maps (plan, startDate) to an access window:
//
//	weekly   -> +7 days, the single week containing startDate (or none)
//	monthly  -> +1 calendar month, every week of startDate's calendar month
//	semester -> +120 days, every week overlapping that range
//
// An empty WeekIDs result is a legitimate outcome, not an error: it means no
// content is scheduled inside the window. The caller decides whether to
// surface that to the user. Deterministic for a fixed startDate and an
// unchanged week table.
func CalculateAccess(src WeekSource, plan Plan, startDate time.Time) (Access, error) {
	start := weeks.DateOnly(startDate)

	switch plan {
	case PlanWeekly:
		week, err := src.WeekContaining(start)
		if err != nil {
			return Access{}, err
		}
		access := Access{
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 7),
			WeekIDs:   []uint{},
		}
		if week != nil {
			access.WeekIDs = []uint{week.ID}
		}
		return access, nil

	case PlanMonthly:
		// Entitlement is "this calendar month's weeks", not the next 30
		// days. AddDate clamps day-of-month on overflow (Jan 31 -> Mar 3
		// style normalization is accepted).
		found, err := src.WeeksInMonth(int(start.Month()), start.Year())
		if err != nil {
			return Access{}, err
		}
		return Access{
			StartDate: start,
			EndDate:   start.AddDate(0, 1, 0),
			WeekIDs:   weekIDs(found),
		}, nil

	case PlanSemester:
		end := start.AddDate(0, 0, semesterDays)
		found, err := src.WeeksInRange(start, end)
		if err != nil {
			return Access{}, err
		}
		return Access{
			StartDate: start,
			EndDate:   end,
			WeekIDs:   weekIDs(found),
		}, nil
	}

	return Access{}, ErrInvalidPlan
}

func weekIDs(ws []weeks.Week) []uint {
	ids := make([]uint, 0, len(ws))
	for _, w := range ws {
		ids = append(ids, w.ID)
	}
	return ids
}
