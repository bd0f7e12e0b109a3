package directory

import (
	"context"

	"encore.dev/beta/errs"

	"backoffice.app/billing/model"
)

func (b *business) ListDealers(ctx context.Context) ([]model.Dealer, error) {
	rows, err := b.directoryRepo.ListDealers(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list dealers"}
	}

	dealers := make([]model.Dealer, len(rows))
	for i, row := range rows {
		dealers[i] = model.Dealer{ID: row.ID, Name: row.DealerName}
	}
	return dealers, nil
}

func (b *business) ListBranches(ctx context.Context) ([]model.Branch, error) {
	rows, err := b.directoryRepo.ListBranches(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list branches"}
	}

	branches := make([]model.Branch, len(rows))
	for i, row := range rows {
		branches[i] = model.Branch{ID: row.ID, Name: row.Name}
	}
	return branches, nil
}
