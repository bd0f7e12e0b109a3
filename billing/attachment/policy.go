package attachment

import (
	"fmt"
	"slices"
	"strings"

	"backoffice.app/billing/model"
)

const (
	DefaultDir      = "uploads/dealerbills"
	DefaultMaxBytes = 5 << 20
)

// Policy is the upload policy for bill attachments. It is built once from
// service configuration and handed to NewStore.
type Policy struct {
	Dir          string
	MaxBytes     int64
	Extensions   []string
	ContentTypes []string
}

func DefaultPolicy() Policy {
	return Policy{
		Dir:          DefaultDir,
		MaxBytes:     DefaultMaxBytes,
		Extensions:   []string{".jpeg", ".jpg", ".png", ".pdf"},
		ContentTypes: []string{"image/jpeg", "image/jpg", "image/png", "application/pdf"},
	}
}

func (p Policy) allowsExtension(ext string) bool {
	return slices.Contains(p.Extensions, strings.ToLower(ext))
}

func (p Policy) allowsContentType(ct string) bool {
	return slices.Contains(p.ContentTypes, strings.ToLower(ct))
}

// ErrTooLarge is the error for an upload over MaxBytes.
func (p Policy) ErrTooLarge() error {
	return model.NewError(model.ReasonInvalidAttachment, FormField,
		fmt.Sprintf("bill image exceeds the %s limit", p.sizeLimitLabel()))
}

func (p Policy) sizeLimitLabel() string {
	if p.MaxBytes%(1<<20) == 0 {
		return fmt.Sprintf("%d MiB", p.MaxBytes>>20)
	}
	return fmt.Sprintf("%d bytes", p.MaxBytes)
}
