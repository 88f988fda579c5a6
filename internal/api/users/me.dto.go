package users

import (
	"time"

	billingapi "campus-portal/internal/api/billing"
)

type MeResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Lastname      string  `json:"lastname"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	IsVerified    bool    `json:"is_verified"`
	AuthProvider  string  `json:"auth_provider"`
	StudentNumber *string `json:"student_number,omitempty"`
	Faculty       string  `json:"faculty,omitempty"`
	StudyGroup    string  `json:"study_group,omitempty"`

	Subscription *billingapi.SubscriptionDTO `json:"subscription"`

	CreatedAt time.Time `json:"created_at"`
}
