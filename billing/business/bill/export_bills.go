package bill

import (
	"context"

	"backoffice.app/billing/model"
)

const exportPageSize = 500

// ExportBills returns every bill matching filter in list order.
func (b *business) ExportBills(ctx context.Context, filter model.BillFilter) ([]*model.Bill, error) {
	var all []*model.Bill
	for offset := int32(0); ; offset += exportPageSize {
		page, err := b.listPage(ctx, filter, exportPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	b.resolveNames(ctx, all...)

	return all, nil
}
