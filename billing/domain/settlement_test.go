package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backoffice.app/billing/model"
)

func TestSettle(t *testing.T) {
	testCases := []struct {
		name     string
		amount   model.Money
		paid     model.Money
		expected Settlement
		ok       bool
	}{
		{
			name:     "nothing_paid",
			amount:   50000,
			expected: Settlement{Paid: 0, Pending: 50000, Status: model.BillStatusPending},
			ok:       true,
		},
		{
			name:     "partly_paid",
			amount:   50000,
			paid:     20000,
			expected: Settlement{Paid: 20000, Pending: 30000, Status: model.BillStatusPending},
			ok:       true,
		},
		{
			name:     "fully_paid",
			amount:   50000,
			paid:     50000,
			expected: Settlement{Paid: 50000, Pending: 0, Status: model.BillStatusCompleted},
			ok:       true,
		},
		{
			name:     "zero_amount_settles",
			expected: Settlement{Status: model.BillStatusCompleted},
			ok:       true,
		},
		{
			name:   "overpaid",
			amount: 50000,
			paid:   50001,
		},
		{
			name:   "negative_paid",
			amount: 50000,
			paid:   -1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Settle(tc.amount, tc.paid)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestOpening(t *testing.T) {
	assert.Equal(t, Settlement{Pending: 0, Status: model.BillStatusPending}, Opening(0))
	assert.Equal(t, Settlement{Pending: 1250, Status: model.BillStatusPending}, Opening(1250))
}
