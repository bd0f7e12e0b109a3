package billing

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"backoffice.app/billing/export"
)

// ExportBills downloads every bill matching the list filters as CSV or XLSX.
//
//encore:api public raw method=GET path=/v1/exports/bills
func (s *Service) ExportBills(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()

	format := export.Format(strings.ToLower(q.Get("format")))
	if format == "" {
		format = export.FormatCSV
	}
	if !format.Valid() {
		writeError(w, &errs.Error{Code: errs.InvalidArgument, Message: "format must be csv or xlsx"})
		return
	}

	params, err := filterParamsFromQuery(q)
	if err != nil {
		writeError(w, err)
		return
	}
	filter, err := params.Filter()
	if err != nil {
		writeError(w, err)
		return
	}

	bills, err := s.business.ExportBills(req.Context(), filter)
	if err != nil {
		rlog.Error("failed to export bills", "error", err)
		writeError(w, err)
		return
	}

	// Render fully first so a failure can still be reported as an error.
	var buf bytes.Buffer
	if err := export.Write(&buf, format, bills); err != nil {
		rlog.Error("failed to render bill export", "format", format, "error", err)
		writeError(w, &errs.Error{Code: errs.Internal, Message: "failed to render export"})
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName(s.clock.Now())))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		rlog.Warn("failed to write bill export", "error", err)
	}
}
