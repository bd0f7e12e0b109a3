package bill

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"backoffice.app/billing/model"
	"backoffice.app/billing/repository/bills"
)

// ListBills returns one page of bills matching filter and the total number
// of matches.
func (b *business) ListBills(ctx context.Context, filter model.BillFilter, limit, offset int32) ([]*model.Bill, int64, error) {
	list, err := b.listPage(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := b.billRepo.CountBills(ctx, countParams(filter))
	if err != nil {
		return nil, 0, model.WrapError(model.ReasonStorageError, "", "failed to count bills", err)
	}

	b.resolveNames(ctx, list...)

	return list, total, nil
}

func (b *business) listPage(ctx context.Context, filter model.BillFilter, limit, offset int32) ([]*model.Bill, error) {
	p := countParams(filter)
	dbBills, err := b.billRepo.ListBills(ctx, bills.ListBillsParams{
		Status:   p.Status,
		DealerID: p.DealerID,
		BranchID: p.BranchID,
		Search:   p.Search,
		DateFrom: p.DateFrom,
		DateTo:   p.DateTo,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, model.WrapError(model.ReasonStorageError, "", "failed to get bills", err)
	}

	list := make([]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		list[i] = convertDBBillToModel(dbBill)
	}
	return list, nil
}

func countParams(filter model.BillFilter) bills.CountBillsParams {
	p := bills.CountBillsParams{
		Status:   optionalText(string(filter.Status)),
		DealerID: optionalText(filter.DealerID),
		BranchID: optionalText(filter.BranchID),
		Search:   optionalText(escapeLike(filter.Search)),
	}
	if filter.From != nil {
		p.DateFrom = pgtype.Timestamptz{Time: filter.From.UTC(), Valid: true}
	}
	if filter.To != nil {
		p.DateTo = pgtype.Timestamptz{Time: filter.To.UTC(), Valid: true}
	}
	return p
}

// likeEscaper makes a search term match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func optionalText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
