package plans

type Plan struct {
	ID            uint `gorm:"primaryKey"`
	Name          string
	PriceEUR      float64
	StripePriceID string `gorm:"column:stripe_price_id;not null;uniqueIndex:idx_plans_stripe_price_id"`
	// Tag is the subscription plan this catalog row sells:
	// "weekly" | "monthly" | "semester".
	Tag string `gorm:"column:tag"`
	// ESP Trust task delegation is bundled with some tiers.
	IncludesESP bool `gorm:"column:includes_esp"`
}
