package billing

import (
	"net/http"

	"encore.dev/rlog"
)

// UpdateBill rewrites a bill's fields and payment, and optionally replaces
// or removes its image.
//
//encore:api public raw method=PUT path=/v1/bills/:id
func (s *Service) UpdateBill(w http.ResponseWriter, req *http.Request) {
	id, err := parseBillID(pathParam(req, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	file, err := s.readMultipart(w, req)
	if err != nil {
		writeError(w, err)
		return
	}
	defer req.MultipartForm.RemoveAll()

	form := billUpdateForm(req.MultipartForm)
	result, err := s.business.UpdateBill(req.Context(), id, &form, file)
	if err != nil {
		rlog.Error("failed to update bill", "error", err, "id", id)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &BillResponse{
		Message: "Bill updated successfully",
		Bill:    *result,
	})
}
