package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"backoffice.app/billing/model"
	"backoffice.app/billing/repository/bills"
)

// GetBill returns one bill with its dealer and branch names.
func (b *business) GetBill(ctx context.Context, id int32) (*model.Bill, error) {
	dbBill, err := b.loadBill(ctx, id)
	if err != nil {
		return nil, err
	}

	bill := convertDBBillToModel(dbBill)
	b.resolveNames(ctx, bill)

	return bill, nil
}

func (b *business) loadBill(ctx context.Context, id int32) (bills.Bill, error) {
	dbBill, err := b.billRepo.GetBill(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bills.Bill{}, model.NewError(model.ReasonNotFound, "", "bill not found")
		}
		return bills.Bill{}, model.WrapError(model.ReasonStorageError, "", "failed to get bill", err)
	}
	return dbBill, nil
}
