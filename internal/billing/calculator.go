// Package billing computes prorated per-seat monthly charges.
//
// A subscription's monthly price is charged once for every day a user was active
// within the billing month. Days are counted inclusively on both ends and the
// price is never divided by the length of the month.
package billing

import (
	"errors"
	"fmt"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"seatbill/internal/models"
)

// ErrNegativePrice is returned for subscriptions priced below zero.
var ErrNegativePrice = errors.New("monthly price cannot be negative")

// Line is one user's contribution to a monthly statement.
type Line struct {
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	From        civil.Date `json:"from"`
	To          civil.Date `json:"to"`
	ActiveDays  int        `json:"active_days"`
	AmountCents int64      `json:"amount_cents"`
}

// Statement breaks a monthly charge down per user.
type Statement struct {
	Month          Month     `json:"month"`
	CustomerID     uuid.UUID `json:"customer_id"`
	SubscriptionID uuid.UUID `json:"subscription_id"`
	PriceCents     int64     `json:"price_cents"`
	Lines          []Line    `json:"lines"`
	TotalCents     int64     `json:"total_cents"`
}

// BilledUsers is the number of users with at least one active day.
func (s *Statement) BilledUsers() int {
	return len(s.Lines)
}

// MonthlyCharge returns the total charge in cents for month ("YYYY-MM").
// A nil subscription or an empty user list is charged nothing and the month is
// not parsed at all.
func MonthlyCharge(month string, sub *models.Subscription, users []models.User) (int64, error) {
	if len(users) == 0 || sub == nil {
		return 0, nil
	}
	m, err := ParseMonth(month)
	if err != nil {
		return 0, err
	}
	return MonthlyChargeFor(m, sub, users)
}

// MonthlyChargeFor is MonthlyCharge for an already resolved month.
func MonthlyChargeFor(m Month, sub *models.Subscription, users []models.User) (int64, error) {
	st, err := BuildStatement(m, sub, users)
	if err != nil {
		return 0, err
	}
	return st.TotalCents, nil
}

// BuildStatement computes the per-user lines and total for month m.
func BuildStatement(m Month, sub *models.Subscription, users []models.User) (*Statement, error) {
	st := &Statement{Month: m, Lines: []Line{}}
	if sub == nil || len(users) == 0 {
		return st, nil
	}
	if sub.MonthlyPriceInCents < 0 {
		return nil, fmt.Errorf("subscription %s: %w", sub.ID, ErrNegativePrice)
	}
	st.CustomerID = sub.CustomerID
	st.SubscriptionID = sub.ID
	st.PriceCents = sub.MonthlyPriceInCents

	monthStart, monthEnd := m.Start(), m.End()
	for _, u := range users {
		if !activeDuring(u, monthStart, monthEnd) {
			continue
		}
		from, to := activeWindow(u, monthStart, monthEnd)
		days := InclusiveDays(from, to)
		if days == 0 {
			continue
		}
		amount := int64(days) * sub.MonthlyPriceInCents
		st.Lines = append(st.Lines, Line{
			UserID:      u.ID,
			Name:        u.Name,
			From:        from,
			To:          to,
			ActiveDays:  days,
			AmountCents: amount,
		})
		st.TotalCents += amount
	}
	return st, nil
}

func activeDuring(u models.User, monthStart, monthEnd civil.Date) bool {
	if u.ActivatedOn.After(monthEnd) {
		return false
	}
	return u.DeactivatedOn == nil || !u.DeactivatedOn.Before(monthStart)
}

// activeWindow clamps the user's access period to the month.
func activeWindow(u models.User, monthStart, monthEnd civil.Date) (civil.Date, civil.Date) {
	from := laterOf(u.ActivatedOn, monthStart)
	to := monthEnd
	if u.DeactivatedOn != nil {
		to = earlierOf(*u.DeactivatedOn, monthEnd)
	}
	return from, to
}
