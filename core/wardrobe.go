package core

import (
	"fmt"
	"time"
)

// Subscription tiers.
const (
	TierFree    = "free"
	TierPremium = "premium"
)

// QuotaPolicy maps a subscription tier to the number of clothing items a user may own.
type QuotaPolicy struct {
	Free    int
	Premium int
}

// DefaultQuota is 10 uploads on the free tier and 100 on anything else.
var DefaultQuota = QuotaPolicy{Free: 10, Premium: 100}

// LimitFor returns the upload limit for tier. Unknown tiers get the premium limit.
func (q QuotaPolicy) LimitFor(tier string) int {
	if tier == TierFree {
		return q.Free
	}
	return q.Premium
}

// Categories is the fixed clothing category enumeration, in display order.
var Categories = []string{"tops", "bottoms", "shoes", "accessories", "outerwear"}

// IsCategory reports whether s is one of Categories.
func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// DateLayout is the calendar key format. Lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

// ParseDate validates a calendar date and returns it in canonical form.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	return t.Format(DateLayout), nil
}

// Classification is what an image classifier suggests for a new upload.
type Classification struct {
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}
