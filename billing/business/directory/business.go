package directory

import (
	"context"

	"backoffice.app/billing/model"
	dirrepo "backoffice.app/billing/repository/directory"
)

// Business exposes the dealer and branch directories. Bills only hold ids;
// names are joined in at read time through ResolveNames.
type Business interface {
	ListDealers(ctx context.Context) ([]model.Dealer, error)
	ListBranches(ctx context.Context) ([]model.Branch, error)
	ResolveNames(ctx context.Context, bills []*model.Bill) error
}

type business struct {
	directoryRepo dirrepo.Querier
}

func NewDirectoryBusiness(directoryRepo dirrepo.Querier) Business {
	return &business{
		directoryRepo: directoryRepo,
	}
}
