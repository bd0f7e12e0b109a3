package domain

import (
	"backoffice.app/billing/model"
)

// Settlement is the derived payment state of a bill.
type Settlement struct {
	Paid    model.Money
	Pending model.Money
	Status  model.BillStatus
}

// Settle derives pending and status from amount and paid.
// It reports false when paid falls outside [0, amount].
func Settle(amount, paid model.Money) (Settlement, bool) {
	if amount < 0 || paid < 0 || paid > amount {
		return Settlement{}, false
	}
	pending := amount - paid
	return Settlement{
		Paid:    paid,
		Pending: pending,
		Status:  StatusFor(pending),
	}, true
}

// StatusFor is the whole state machine: Completed iff nothing is pending.
// There is no terminal state; a later settlement may move a bill back.
func StatusFor(pending model.Money) model.BillStatus {
	if pending == 0 {
		return model.BillStatusCompleted
	}
	return model.BillStatusPending
}

// Opening is the settlement of a freshly created bill.
func Opening(amount model.Money) Settlement {
	return Settlement{
		Paid:    0,
		Pending: amount,
		Status:  model.BillStatusPending,
	}
}
