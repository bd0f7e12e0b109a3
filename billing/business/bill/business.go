package bill

import (
	"context"
	"mime/multipart"

	"github.com/facebookgo/clock"

	"backoffice.app/billing/attachment"
	"backoffice.app/billing/business/directory"
	"backoffice.app/billing/model"
	"backoffice.app/billing/repository/bills"
)

type Business interface {
	CreateBill(ctx context.Context, form *model.BillForm, file *multipart.FileHeader) (*model.Bill, error)
	UpdateBill(ctx context.Context, id int32, form *model.BillUpdateForm, file *multipart.FileHeader) (*model.Bill, error)
	GetBill(ctx context.Context, id int32) (*model.Bill, error)
	ListBills(ctx context.Context, filter model.BillFilter, limit, offset int32) ([]*model.Bill, int64, error)
	ExportBills(ctx context.Context, filter model.BillFilter) ([]*model.Bill, error)
}

// Attachments is the slice of the attachment store the bill lifecycle uses.
type Attachments interface {
	Validate(fh *multipart.FileHeader) error
	Save(fh *multipart.FileHeader) (string, error)
	Remove(path string) error
	Detach(path string) (*attachment.Detached, error)
}

// Janitor takes over stored files that could not be removed inline.
type Janitor interface {
	ScheduleCleanup(ctx context.Context, paths []string)
}

// business handles the bill lifecycle and keeps each bill consistent with
// its stored attachment.
type business struct {
	billRepo    bills.Querier
	directory   directory.Business
	attachments Attachments
	janitor     Janitor
	clock       clock.Clock
}

// NewBillBusiness creates the bill business layer
func NewBillBusiness(
	billRepo bills.Querier,
	directory directory.Business,
	attachments Attachments,
	janitor Janitor,
	clk clock.Clock,
) Business {
	return &business{
		billRepo:    billRepo,
		directory:   directory,
		attachments: attachments,
		janitor:     janitor,
		clock:       clk,
	}
}
