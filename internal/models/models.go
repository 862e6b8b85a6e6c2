package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

const (
	CreationTypeArticle = "article"
	CreationTypeImage   = "image"
)

// Creation is one stored piece of generated content. Rows are returned to the
// client as-is, so json tags follow the column names.
type Creation struct {
	ID        int64          `json:"id" db:"id"`
	UserID    string         `json:"user_id" db:"user_id"`
	Prompt    string         `json:"prompt" db:"prompt"`
	Content   string         `json:"content" db:"content"`
	Type      string         `json:"type" db:"type"`
	Publish   bool           `json:"publish" db:"publish"`
	Likes     pq.StringArray `json:"likes" db:"likes"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// Identity is the authenticated caller as reported by the identity provider.
type Identity struct {
	UserID string
	Plan   string
}

// IsPremium reports whether the caller has an active paid plan.
func (i Identity) IsPremium() bool {
	return i.Plan == PlanPremium
}

// PlanOrDefault returns the caller's plan, or "free" when the provider did not set one.
func (i Identity) PlanOrDefault() string {
	if i.Plan == "" {
		return PlanFree
	}
	return i.Plan
}
