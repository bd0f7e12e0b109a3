package billing

import (
	"context"

	"encore.dev/rlog"

	"backoffice.app/billing/model"
)

type ListDealersResponse struct {
	Dealers []model.Dealer `json:"dealers"`
}

type ListBranchesResponse struct {
	Branches []model.Branch `json:"branches"`
}

//encore:api public path=/v1/dealers method=GET
func (s *Service) ListDealers(ctx context.Context) (*ListDealersResponse, error) {
	dealers, err := s.directory.ListDealers(ctx)
	if err != nil {
		rlog.Error("failed to list dealers", "error", err)
		return nil, err
	}
	return &ListDealersResponse{Dealers: dealers}, nil
}

//encore:api public path=/v1/branches method=GET
func (s *Service) ListBranches(ctx context.Context) (*ListBranchesResponse, error) {
	branches, err := s.directory.ListBranches(ctx)
	if err != nil {
		rlog.Error("failed to list branches", "error", err)
		return nil, err
	}
	return &ListBranchesResponse{Branches: branches}, nil
}
