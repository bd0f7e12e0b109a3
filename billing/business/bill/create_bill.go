package bill

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"backoffice.app/billing/domain"
	"backoffice.app/billing/model"
	"backoffice.app/billing/repository/bills"
)

// CreateBill stores the attachment and inserts the bill that references it.
// A bill row never points at a file that failed to store, and a stored file
// is removed again when the insert fails.
func (b *business) CreateBill(ctx context.Context, form *model.BillForm, file *multipart.FileHeader) (*model.Bill, error) {
	if err := b.attachments.Validate(file); err != nil {
		return nil, err
	}

	fields, err := b.parseForm(form)
	if err != nil {
		return nil, err
	}

	imagePath, err := b.attachments.Save(file)
	if err != nil {
		return nil, err
	}

	settlement := domain.Opening(fields.amount)
	dbBill, err := b.billRepo.CreateBill(ctx, bills.CreateBillParams{
		DealerID:     fields.dealer,
		BranchID:     fields.branch,
		BillNumber:   fields.billNumber,
		BillDate:     pgtype.Timestamptz{Time: fields.billDate, Valid: true},
		AmountCents:  fields.amount.Cents(),
		PaidCents:    settlement.Paid.Cents(),
		PendingCents: settlement.Pending.Cents(),
		Status:       string(settlement.Status),
		BillImage:    pgtype.Text{String: imagePath, Valid: true},
	})
	if err != nil {
		b.discard(ctx, imagePath)
		return nil, commitError(err, "failed to create bill")
	}

	bill := convertDBBillToModel(dbBill)
	b.resolveNames(ctx, bill)

	return bill, nil
}

// commitError maps a failed insert or update onto the bill error taxonomy.
func commitError(err error, msg string) error {
	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
		return model.WrapError(model.ReasonDuplicateBillNumber, "billNumber", "bill number must be unique", err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WrapError(model.ReasonNotFound, "", "bill not found", err)
	}
	return model.WrapError(model.ReasonStorageError, "", msg, err)
}

// discard removes a file no bill references. When that fails the cleanup
// workflow takes over.
func (b *business) discard(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := b.attachments.Remove(path); err != nil {
		rlog.Warn("failed to remove orphaned bill image", "path", path, "error", err)
		b.janitor.ScheduleCleanup(ctx, []string{path})
	}
}

// resolveNames fills in display names. The bill is already stored, so a
// lookup failure only costs the names.
func (b *business) resolveNames(ctx context.Context, list ...*model.Bill) {
	if len(list) == 0 {
		return
	}
	if err := b.directory.ResolveNames(ctx, list); err != nil {
		rlog.Warn("failed to resolve dealer and branch names", "error", err)
	}
}

// convertDBBillToModel converts a database Bill to a domain model Bill
func convertDBBillToModel(dbBill bills.Bill) *model.Bill {
	bill := &model.Bill{
		ID:         dbBill.ID,
		DealerID:   dbBill.DealerID,
		BranchID:   dbBill.BranchID,
		BillNumber: dbBill.BillNumber,
		BillDate:   dbBill.BillDate.Time,
		Amount:     model.Money(dbBill.AmountCents),
		Paid:       model.Money(dbBill.PaidCents),
		Pending:    model.Money(dbBill.PendingCents),
		Status:     model.BillStatus(dbBill.Status),
		CreatedAt:  dbBill.CreatedAt.Time,
		UpdatedAt:  dbBill.UpdatedAt.Time,
	}

	if dbBill.BillImage.Valid {
		bill.BillImage = &dbBill.BillImage.String
	}

	return bill
}
