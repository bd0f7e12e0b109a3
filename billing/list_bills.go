package billing

import (
	"context"
	"net/url"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"backoffice.app/billing/model"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// BillFilterParams are the list and export filters as submitted.
type BillFilterParams struct {
	Status string `validate:"omitempty,oneof=Pending Completed"`
	Dealer string `validate:"max=64"`
	Branch string `validate:"max=64"`
	Search string `validate:"max=100"`
	// From and To bound the bill date, inclusive. A bare date in To covers
	// that whole day.
	From string
	To   string
}

type GetBillsRequest struct {
	Limit  int    `query:"limit" validate:"gte=0"`
	Offset int    `query:"offset" validate:"gte=0,lte=2147483647"`
	Status string `query:"status" validate:"omitempty,oneof=Pending Completed"`
	Dealer string `query:"dealer" validate:"max=64"`
	Branch string `query:"branch" validate:"max=64"`
	Search string `query:"search" validate:"max=100"`
	From   string `query:"from"`
	To     string `query:"to"`
}

type GetBillsResponse struct {
	Bills      []model.Bill `json:"bills"`
	TotalCount int64        `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

//encore:api public path=/v1/bills method=GET
func (s *Service) ListBills(ctx context.Context, req *GetBillsRequest) (*GetBillsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	if req.Limit > maxLimit {
		req.Limit = maxLimit
	}

	filter, err := req.filterParams().Filter()
	if err != nil {
		return nil, err
	}

	bills, totalCount, err := s.business.ListBills(ctx, filter, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to get bills", "error", err)
		return nil, err
	}

	response := &GetBillsResponse{
		Bills:      make([]model.Bill, len(bills)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	for i, bill := range bills {
		response.Bills[i] = *bill
	}

	return response, nil
}

// Validate implements validation for GetBillsRequest using go-playground/validator
func (r *GetBillsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	_, err := r.filterParams().Filter()
	return err
}

func (r *GetBillsRequest) filterParams() *BillFilterParams {
	return &BillFilterParams{
		Status: r.Status,
		Dealer: r.Dealer,
		Branch: r.Branch,
		Search: r.Search,
		From:   r.From,
		To:     r.To,
	}
}

// Filter converts the query parameters into a model.BillFilter.
func (p *BillFilterParams) Filter() (model.BillFilter, error) {
	filter := model.BillFilter{
		Status:   model.BillStatus(p.Status),
		DealerID: strings.TrimSpace(p.Dealer),
		BranchID: strings.TrimSpace(p.Branch),
		Search:   strings.TrimSpace(p.Search),
	}

	if p.From != "" {
		from, _, err := parseDateBound(p.From)
		if err != nil {
			return model.BillFilter{}, &errs.Error{Code: errs.InvalidArgument, Message: "invalid from date"}
		}
		filter.From = &from
	}
	if p.To != "" {
		to, dateOnly, err := parseDateBound(p.To)
		if err != nil {
			return model.BillFilter{}, &errs.Error{Code: errs.InvalidArgument, Message: "invalid to date"}
		}
		if dateOnly {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return model.BillFilter{}, &errs.Error{Code: errs.InvalidArgument, Message: "to date must not be before from date"}
	}

	return filter, nil
}

func parseDateBound(s string) (time.Time, bool, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, false, err
}

// filterParamsFromQuery reads BillFilterParams from a raw request's query.
func filterParamsFromQuery(q url.Values) (*BillFilterParams, error) {
	p := &BillFilterParams{
		Status: q.Get("status"),
		Dealer: q.Get("dealer"),
		Branch: q.Get("branch"),
		Search: q.Get("search"),
		From:   q.Get("from"),
		To:     q.Get("to"),
	}
	if err := validate.Struct(p); err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return p, nil
}
