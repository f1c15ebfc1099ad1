package domain_test

import (
	"testing"
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveInvoiceStatus(t *testing.T) {
	testCases := []struct {
		name      string
		paid      decimal.Decimal
		remaining decimal.Decimal
		expected  domain.InvoiceStatus
	}{
		{"nothing paid", decimal.Zero, decimal.NewFromInt(100), domain.InvoicePending},
		{"partially paid", decimal.NewFromInt(40), decimal.NewFromInt(60), domain.InvoicePartial},
		{"fully paid", decimal.NewFromInt(100), decimal.Zero, domain.InvoicePaid},
		{"overpaid", decimal.NewFromInt(120), decimal.NewFromInt(-20), domain.InvoicePaid},
		{"zero remaining with zero paid", decimal.Zero, decimal.Zero, domain.InvoicePaid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.DeriveInvoiceStatus(tc.paid, tc.remaining))
		})
	}
}

func TestInvoiceIsOverdue(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	pastDue := domain.Invoice{Status: domain.InvoicePending, DueDate: now.AddDate(0, 0, -3)}
	assert.True(t, pastDue.IsOverdue(now))

	paidPastDue := domain.Invoice{Status: domain.InvoicePaid, DueDate: now.AddDate(0, 0, -3)}
	assert.False(t, paidPastDue.IsOverdue(now), "a paid invoice is never overdue")

	futureDue := domain.Invoice{Status: domain.InvoicePending, DueDate: now.AddDate(0, 0, 3)}
	assert.False(t, futureDue.IsOverdue(now))

	partialPastDue := domain.Invoice{Status: domain.InvoicePartial, DueDate: now.AddDate(0, 0, -1)}
	assert.True(t, partialPastDue.IsOverdue(now))
}

func TestDaysOverdue(t *testing.T) {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		now      time.Time
		expected int
	}{
		{"same day", time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC), 0},
		{"one day later", time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC), 1},
		{"seven days later", time.Date(2025, 3, 17, 8, 0, 0, 0, time.UTC), 7},
		{"before due date", time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC), -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.DaysOverdue(due, tc.now))
		})
	}
}

func TestDaysOverdue_TimeOfDayIgnored(t *testing.T) {
	// Calendar days are compared, not 24h periods: an invoice due late in the
	// evening is one day overdue the next morning.
	due := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, domain.DaysOverdue(due, now))
}
