package model

import (
	"errors"

	"encore.dev/beta/errs"
)

// Reason identifies which rule a request broke so clients can map the
// failure back to a form field.
type Reason string

const (
	ReasonMissingAttachment   Reason = "MissingAttachment"
	ReasonInvalidAttachment   Reason = "InvalidAttachment"
	ReasonMissingField        Reason = "MissingField"
	ReasonInvalidDate         Reason = "InvalidDate"
	ReasonFutureDate          Reason = "FutureDate"
	ReasonNegativeAmount      Reason = "NegativeAmount"
	ReasonInvalidPaidAmount   Reason = "InvalidPaidAmount"
	ReasonDuplicateBillNumber Reason = "DuplicateBillNumber"
	ReasonNotFound            Reason = "NotFound"
	ReasonStorageUnavailable  Reason = "StorageUnavailable"
	ReasonStorageError        Reason = "StorageError"
)

var reasonCodes = map[Reason]errs.ErrCode{
	ReasonMissingAttachment:   errs.InvalidArgument,
	ReasonInvalidAttachment:   errs.InvalidArgument,
	ReasonMissingField:        errs.InvalidArgument,
	ReasonInvalidDate:         errs.InvalidArgument,
	ReasonFutureDate:          errs.InvalidArgument,
	ReasonNegativeAmount:      errs.InvalidArgument,
	ReasonInvalidPaidAmount:   errs.InvalidArgument,
	ReasonDuplicateBillNumber: errs.AlreadyExists,
	ReasonNotFound:            errs.NotFound,
	ReasonStorageUnavailable:  errs.Unavailable,
	ReasonStorageError:        errs.Internal,
}

// ErrorDetails is attached to every bill error as errs.Error.Details.
type ErrorDetails struct {
	Reason Reason `json:"reason"`
	Field  string `json:"field,omitempty"`
}

func (ErrorDetails) ErrDetails() {}

// NewError builds an *errs.Error whose code follows from the reason.
func NewError(reason Reason, field, message string) *errs.Error {
	code, ok := reasonCodes[reason]
	if !ok {
		code = errs.Internal
	}
	return &errs.Error{
		Code:    code,
		Message: message,
		Details: ErrorDetails{Reason: reason, Field: field},
	}
}

// WrapError is NewError that keeps cause as the underlying error.
func WrapError(reason Reason, field, message string, cause error) error {
	e := NewError(reason, field, message)
	return errs.B().Code(e.Code).Msg(e.Message).Details(e.Details).Cause(cause).Err()
}

// ReasonOf returns the reason carried by err, or "" if it carries none.
func ReasonOf(err error) Reason {
	var e *errs.Error
	if !errors.As(err, &e) {
		return ""
	}
	if d, ok := e.Details.(ErrorDetails); ok {
		return d.Reason
	}
	return ""
}

// FieldOf returns the form field named by err, if any.
func FieldOf(err error) string {
	var e *errs.Error
	if !errors.As(err, &e) {
		return ""
	}
	if d, ok := e.Details.(ErrorDetails); ok {
		return d.Field
	}
	return ""
}
