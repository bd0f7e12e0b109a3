package bill

import (
	"context"
	"mime/multipart"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"backoffice.app/billing/attachment"
	"backoffice.app/billing/domain"
	"backoffice.app/billing/model"
	"backoffice.app/billing/repository/bills"
)

// UpdateBill rewrites a bill and optionally replaces or removes its image.
// Everything is validated before any file is touched. The previous image is
// moved aside until the row is committed, then purged; a failed commit puts
// it back and drops the new file.
func (b *business) UpdateBill(ctx context.Context, id int32, form *model.BillUpdateForm, file *multipart.FileHeader) (*model.Bill, error) {
	if file != nil {
		if err := b.attachments.Validate(file); err != nil {
			return nil, err
		}
	}

	fields, err := b.parseForm(&form.BillForm)
	if err != nil {
		return nil, err
	}

	current, err := b.loadBill(ctx, id)
	if err != nil {
		return nil, err
	}

	paid := model.Money(current.PaidCents)
	if form.Paid != nil {
		if paid, err = parsePaid(*form.Paid); err != nil {
			return nil, err
		}
	}
	settlement, ok := domain.Settle(fields.amount, paid)
	if !ok {
		return nil, errInvalidPaid()
	}

	image := current.BillImage
	var (
		saved    string
		detached *attachment.Detached
	)
	switch {
	case form.RemoveImage:
		if detached, err = b.attachments.Detach(current.BillImage.String); err != nil {
			return nil, err
		}
		image = pgtype.Text{}
	case file != nil:
		if saved, err = b.attachments.Save(file); err != nil {
			return nil, err
		}
		if detached, err = b.attachments.Detach(current.BillImage.String); err != nil {
			b.discard(ctx, saved)
			return nil, err
		}
		image = pgtype.Text{String: saved, Valid: true}
	}

	dbBill, err := b.billRepo.UpdateBill(ctx, bills.UpdateBillParams{
		ID:           id,
		DealerID:     fields.dealer,
		BranchID:     fields.branch,
		BillNumber:   fields.billNumber,
		BillDate:     pgtype.Timestamptz{Time: fields.billDate, Valid: true},
		AmountCents:  fields.amount.Cents(),
		PaidCents:    settlement.Paid.Cents(),
		PendingCents: settlement.Pending.Cents(),
		Status:       string(settlement.Status),
		BillImage:    image,
	})
	if err != nil {
		b.rollback(ctx, detached, saved)
		return nil, commitError(err, "failed to update bill")
	}

	b.purge(ctx, detached)

	if prev := model.BillStatus(current.Status); prev != settlement.Status {
		rlog.Info("bill status changed", "bill_id", id, "from", prev, "to", settlement.Status)
	}

	bill := convertDBBillToModel(dbBill)
	b.resolveNames(ctx, bill)

	return bill, nil
}

func (b *business) rollback(ctx context.Context, detached *attachment.Detached, saved string) {
	if detached.Staged() {
		if err := detached.Restore(); err != nil {
			// The row still points at original; the file waits under staged.
			rlog.Error("failed to restore bill image",
				"original", detached.OriginalPath(), "staged", detached.StagedPath(), "error", err)
		}
	}
	b.discard(ctx, saved)
}

func (b *business) purge(ctx context.Context, detached *attachment.Detached) {
	if !detached.Staged() {
		return
	}
	staged := detached.StagedPath()
	if err := detached.Purge(); err != nil {
		rlog.Warn("failed to remove replaced bill image", "path", staged, "error", err)
		b.janitor.ScheduleCleanup(ctx, []string{staged})
	}
}
