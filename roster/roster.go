// Package roster holds the student and subscription model consumed by
// the dashboard, plus the expiry filter that ranks soon-to-expire pro
// subscriptions by urgency.
package roster

import "time"

// Plan identifies a subscription tier.
type Plan string

const (
	// PlanBasic is the free tier; it never expires.
	PlanBasic Plan = "basic"
	// PlanPro is the paid tier with an end date.
	PlanPro Plan = "pro"
)

// Subscription is a student's current plan. EndDate may be nil, which
// means no expiry; an expiry is only meaningful on a pro plan with an
// end date in the future.
type Subscription struct {
	Plan        Plan       `json:"plan"`
	LessonsUsed int        `json:"lessons_used"`
	QuizzesUsed int        `json:"quizzes_used"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Active      bool       `json:"active"`
}

// Student is a learner record. At most one current subscription is
// attached; the roster is supplied read-only by the caller's data
// layer.
type Student struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Class        string        `json:"class"`
	Photo        string        `json:"photo,omitempty"`
	Subscription *Subscription `json:"subscription,omitempty"`
}
