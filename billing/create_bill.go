package billing

import (
	"net/http"

	"encore.dev/rlog"

	"backoffice.app/billing/middleware/idempotency"
)

// CreateBill accepts a multipart bill form with its image and stores both.
//
//encore:api public raw method=POST path=/v1/bills
func (s *Service) CreateBill(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	file, err := s.readMultipart(w, req)
	if err != nil {
		writeError(w, err)
		return
	}
	defer req.MultipartForm.RemoveAll()

	ticket, replay, err := idempotency.Begin(ctx, req.URL.Path, req.Header, fingerprint(req.MultipartForm))
	if err != nil {
		writeError(w, err)
		return
	}
	if replay != nil {
		writeBody(w, replay.StatusCode, replay.Body)
		return
	}

	form := billForm(req.MultipartForm)
	result, err := s.business.CreateBill(ctx, &form, file)
	if err != nil {
		ticket.Abandon(ctx)
		rlog.Error("failed to create bill", "error", err, "bill_number", form.BillNumber)
		writeError(w, err)
		return
	}

	body := writeJSON(w, http.StatusCreated, &BillResponse{
		Message: "Bill entry created successfully",
		Bill:    *result,
	})
	if body == nil {
		ticket.Abandon(ctx)
		return
	}
	ticket.Complete(ctx, http.StatusCreated, body)
}
