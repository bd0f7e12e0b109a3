package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice.app/billing/attachment"
	"backoffice.app/billing/attachment/attachmenttest"
	"backoffice.app/billing/mocks/business/bill_business"
	"backoffice.app/billing/mocks/business/directory_business"
	"backoffice.app/billing/model"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

var testNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *bill_business.MockBusiness, *directory_business.MockBusiness) {
	ctrl := gomock.NewController(t)
	mockBusiness := bill_business.NewMockBusiness(ctrl)
	mockDirectory := directory_business.NewMockBusiness(ctrl)

	clk := clock.NewMock()
	clk.Add(testNow.Sub(clk.Now()))

	policy := attachment.DefaultPolicy()
	policy.Dir = t.TempDir()

	return &Service{
		business:  mockBusiness,
		directory: mockDirectory,
		policy:    policy,
		clock:     clk,
	}, mockBusiness, mockDirectory
}

// runSync makes background work run inline for the duration of a test and
// collects what it returns.
func runSync(t *testing.T) *[]error {
	var results []error
	prev := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) {
		results = append(results, fn(context.Background()))
	}
	t.Cleanup(func() { runAsync = prev })
	return &results
}

func withPathID(t *testing.T, id string) {
	prev := pathParam
	pathParam = func(*http.Request, string) string { return id }
	t.Cleanup(func() { pathParam = prev })
}

func billFields() map[string]string {
	return map[string]string{
		"dealer":     "D-1",
		"branch":     "BR-1",
		"billNumber": "B-100",
		"billDate":   "2024-01-15",
		"amount":     "500.00",
	}
}

func pngUpload() attachmenttest.File {
	return attachmenttest.File{Field: attachment.FormField, Filename: "bill.png", ContentType: "image/png", Body: attachmenttest.PNG}
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...attachmenttest.File) *http.Request {
	body, contentType := attachmenttest.Body(t, fields, files...)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func sampleBill() *model.Bill {
	image := "uploads/dealerbills/bill_1.png"
	return &model.Bill{
		ID:         1,
		DealerID:   "D-1",
		BranchID:   "BR-1",
		BillNumber: "B-100",
		BillDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:     50000,
		Pending:    50000,
		Status:     model.BillStatusPending,
		BillImage:  &image,
	}
}

type errorBody struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Details model.ErrorDetails `json:"details"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&body), rec.Body.String())
	return body
}
