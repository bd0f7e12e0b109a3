package bill

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"backoffice.app/billing/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// fieldLabels are the names used in messages; the form matches on them.
var fieldLabels = map[string]string{
	"dealer":     "dealer",
	"branch":     "branch",
	"billNumber": "bill number",
	"billDate":   "bill date",
	"amount":     "amount",
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// billFields is a BillForm that passed validation.
type billFields struct {
	dealer     string
	branch     string
	billNumber string
	billDate   time.Time
	amount     model.Money
}

// parseForm checks the shared bill fields in order: presence, date format,
// date not in the future, amount not negative.
func (b *business) parseForm(form *model.BillForm) (*billFields, error) {
	trimmed := model.BillForm{
		Dealer:     strings.TrimSpace(form.Dealer),
		Branch:     strings.TrimSpace(form.Branch),
		BillNumber: strings.TrimSpace(form.BillNumber),
		BillDate:   strings.TrimSpace(form.BillDate),
		Amount:     strings.TrimSpace(form.Amount),
	}

	if err := validate.Struct(&trimmed); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0].Field()
			return nil, model.NewError(model.ReasonMissingField, field, fieldLabels[field]+" is required")
		}
		return nil, model.NewError(model.ReasonMissingField, "", err.Error())
	}

	billDate, ok := parseBillDate(trimmed.BillDate)
	if !ok {
		return nil, model.NewError(model.ReasonInvalidDate, "billDate", "invalid bill date format")
	}
	if billDate.After(b.clock.Now()) {
		return nil, model.NewError(model.ReasonFutureDate, "billDate", "bill date cannot be in the future")
	}

	amount, err := model.ParseMoney(trimmed.Amount)
	if err != nil || amount < 0 {
		return nil, model.NewError(model.ReasonNegativeAmount, "amount", "amount must be a non-negative number")
	}

	return &billFields{
		dealer:     trimmed.Dealer,
		branch:     trimmed.Branch,
		billNumber: trimmed.BillNumber,
		billDate:   billDate,
		amount:     amount,
	}, nil
}

// parseBillDate accepts a calendar date or a timestamp. Values without a
// zone are read as UTC.
func parseBillDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parsePaid(raw string) (model.Money, error) {
	paid, err := model.ParseMoney(raw)
	if err != nil || paid < 0 {
		return 0, errInvalidPaid()
	}
	return paid, nil
}

func errInvalidPaid() error {
	return model.NewError(model.ReasonInvalidPaidAmount, "paid", "paid amount must be between 0 and the bill amount")
}
