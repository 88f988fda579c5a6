package subscriptions

import (
	"time"

	"campus-portal/internal/domain/materials"

	"gorm.io/gorm"
)

// CanAccessWeek is the pure half of the material guard: deny when there is
// no subscription, when it has expired (regardless of is_active), or when
// the week is not part of the paid window.
func CanAccessWeek(sub *Subscription, weekID uint, now time.Time) bool {
	if sub == nil {
		return false
	}
	if sub.Expired(now) {
		return false
	}
	return sub.AllowsWeek(weekID)
}

// CanAccessMaterial decides whether the user may open the material right
// now. Missing material denies; no side effects, no caching — recomputed on
// every call.
func CanAccessMaterial(db *gorm.DB, userID uint, materialID uint, now time.Time) (bool, error) {
	var material materials.Material
	if err := db.Select("id", "week_id").First(&material, materialID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}

	sub, err := ActiveSubscription(db, userID)
	if err != nil {
		return false, err
	}
	return CanAccessWeek(sub, material.WeekID, now), nil
}
