package bill

import (
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice.app/billing/attachment"
	"backoffice.app/billing/attachment/attachmenttest"
	"backoffice.app/billing/mocks/business/bill_business"
	"backoffice.app/billing/mocks/business/directory_business"
	"backoffice.app/billing/mocks/repository/bill_repo"
	"backoffice.app/billing/model"
	"backoffice.app/billing/repository/bills"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testClock() clock.Clock {
	m := clock.NewMock()
	m.Add(testNow.Sub(m.Now()))
	return m
}

type fixture struct {
	repo      *bill_repo.MockQuerier
	directory *directory_business.MockBusiness
	janitor   *bill_business.MockJanitor
	store     *attachment.Store
	dir       string
	business  *business
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	policy := attachment.DefaultPolicy()
	policy.Dir = dir

	f := &fixture{
		repo:      bill_repo.NewMockQuerier(ctrl),
		directory: directory_business.NewMockBusiness(ctrl),
		janitor:   bill_business.NewMockJanitor(ctrl),
		store:     attachment.NewStore(policy),
		dir:       dir,
	}
	f.business = &business{
		billRepo:    f.repo,
		directory:   f.directory,
		attachments: f.store,
		janitor:     f.janitor,
		clock:       testClock(),
	}

	f.directory.EXPECT().
		ResolveNames(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, list []*model.Bill) error {
			for _, b := range list {
				dealer, branch := "Dealer "+b.DealerID, "Branch "+b.BranchID
				b.DealerName, b.BranchName = &dealer, &branch
			}
			return nil
		}).
		AnyTimes()

	return f
}

// files lists what is currently stored in the content directory.
func (f *fixture) files(t *testing.T) []string {
	t.Helper()

	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// saveImage stores an existing attachment as if an earlier request had.
func (f *fixture) saveImage(t *testing.T) string {
	t.Helper()

	path, err := f.store.Save(pngFile(t))
	require.NoError(t, err)
	return path
}

func pngFile(t *testing.T) *multipart.FileHeader {
	return attachmenttest.FileHeader(t, "bill.png", "image/png", attachmenttest.PNG)
}

func pdfFile(t *testing.T) *multipart.FileHeader {
	return attachmenttest.FileHeader(t, "bill.pdf", "application/pdf", attachmenttest.PDF)
}

func validForm() *model.BillForm {
	return &model.BillForm{
		Dealer:     "D-1",
		Branch:     "BR-1",
		BillNumber: "B-100",
		BillDate:   "2024-01-15",
		Amount:     "500.00",
	}
}

func createdRow(id int32, arg bills.CreateBillParams) bills.Bill {
	return bills.Bill{
		ID:           id,
		DealerID:     arg.DealerID,
		BranchID:     arg.BranchID,
		BillNumber:   arg.BillNumber,
		BillDate:     arg.BillDate,
		AmountCents:  arg.AmountCents,
		PaidCents:    arg.PaidCents,
		PendingCents: arg.PendingCents,
		Status:       arg.Status,
		BillImage:    arg.BillImage,
	}
}

func updatedRow(arg bills.UpdateBillParams) bills.Bill {
	return bills.Bill{
		ID:           arg.ID,
		DealerID:     arg.DealerID,
		BranchID:     arg.BranchID,
		BillNumber:   arg.BillNumber,
		BillDate:     arg.BillDate,
		AmountCents:  arg.AmountCents,
		PaidCents:    arg.PaidCents,
		PendingCents: arg.PendingCents,
		Status:       arg.Status,
		BillImage:    arg.BillImage,
	}
}

func fileName(path string) string {
	return filepath.Base(filepath.FromSlash(path))
}
