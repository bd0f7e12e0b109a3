package billing

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"

	"encore.dev/beta/errs"

	"backoffice.app/billing/attachment"
	"backoffice.app/billing/model"
)

// formMemory bounds the non-file part of a bill form. It is also the slack
// allowed on top of the image size limit for multipart framing.
const formMemory = 1 << 20

// readMultipart parses a bill form and returns its single attachment, or nil
// when none was sent. The caller must call req.MultipartForm.RemoveAll.
func (s *Service) readMultipart(w http.ResponseWriter, req *http.Request) (*multipart.FileHeader, error) {
	req.Body = http.MaxBytesReader(w, req.Body, s.policy.MaxBytes+formMemory)
	if err := req.ParseMultipartForm(formMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, s.policy.ErrTooLarge()
		}
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "request must be multipart/form-data"}
		}
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "malformed multipart form"}
	}

	files := req.MultipartForm.File[attachment.FormField]
	switch len(files) {
	case 0:
		return nil, nil
	case 1:
		return files[0], nil
	default:
		return nil, model.NewError(model.ReasonInvalidAttachment, attachment.FormField, "only one bill image may be attached")
	}
}

func formValue(form *multipart.Form, name string) string {
	if v := form.Value[name]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func billForm(form *multipart.Form) model.BillForm {
	return model.BillForm{
		Dealer:     formValue(form, "dealer"),
		Branch:     formValue(form, "branch"),
		BillNumber: formValue(form, "billNumber"),
		BillDate:   formValue(form, "billDate"),
		Amount:     formValue(form, "amount"),
	}
}

func billUpdateForm(form *multipart.Form) model.BillUpdateForm {
	update := model.BillUpdateForm{
		BillForm:    billForm(form),
		RemoveImage: strings.EqualFold(strings.TrimSpace(formValue(form, "removeImage")), "true"),
	}
	if paid := formValue(form, "paid"); strings.TrimSpace(paid) != "" {
		update.Paid = &paid
	}
	return update
}

// fingerprint identifies a submitted form by its values and file metadata.
func fingerprint(form *multipart.Form) []byte {
	var b strings.Builder

	names := make([]string, 0, len(form.Value))
	for name := range form.Value {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, v := range form.Value[name] {
			fmt.Fprintf(&b, "%s=%s\n", name, v)
		}
	}

	fields := make([]string, 0, len(form.File))
	for field := range form.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		for _, fh := range form.File[field] {
			fmt.Fprintf(&b, "%s=%s:%d\n", field, fh.Filename, fh.Size)
		}
	}

	return []byte(b.String())
}
