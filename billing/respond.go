package billing

import (
	"encoding/json"
	"net/http"
	"strconv"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"backoffice.app/billing/model"
)

type BillResponse struct {
	Message string     `json:"message,omitempty"`
	Bill    model.Bill `json:"bill"`
}

// pathParam is an indirection over Encore's request metadata so raw
// handlers can be exercised with httptest.
var pathParam = func(req *http.Request, name string) string {
	return encore.CurrentRequest().PathParams.Get(name)
}

func parseBillID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}
	return int32(id), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) []byte {
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to encode response", "error", err)
		writeError(w, &errs.Error{Code: errs.Internal, Message: "failed to encode response"})
		return nil
	}
	writeBody(w, status, body)
	return body
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		rlog.Warn("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	errs.HTTPError(w, err)
}
