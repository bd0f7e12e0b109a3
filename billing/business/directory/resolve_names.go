package directory

import (
	"context"

	"encore.dev/beta/errs"

	"backoffice.app/billing/model"
)

// ResolveNames fills DealerName and BranchName on each bill. Ids the
// directory does not know are left without a name.
func (b *business) ResolveNames(ctx context.Context, bills []*model.Bill) error {
	if len(bills) == 0 {
		return nil
	}

	dealerIDs := make([]string, 0, len(bills))
	branchIDs := make([]string, 0, len(bills))
	seenDealers := make(map[string]bool, len(bills))
	seenBranches := make(map[string]bool, len(bills))
	for _, bill := range bills {
		if !seenDealers[bill.DealerID] {
			seenDealers[bill.DealerID] = true
			dealerIDs = append(dealerIDs, bill.DealerID)
		}
		if !seenBranches[bill.BranchID] {
			seenBranches[bill.BranchID] = true
			branchIDs = append(branchIDs, bill.BranchID)
		}
	}

	dealers, err := b.directoryRepo.GetDealersByIDs(ctx, dealerIDs)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to resolve dealers"}
	}
	branches, err := b.directoryRepo.GetBranchesByIDs(ctx, branchIDs)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to resolve branches"}
	}

	dealerNames := make(map[string]string, len(dealers))
	for _, d := range dealers {
		dealerNames[d.ID] = d.DealerName
	}
	branchNames := make(map[string]string, len(branches))
	for _, br := range branches {
		branchNames[br.ID] = br.Name
	}

	for _, bill := range bills {
		if name, ok := dealerNames[bill.DealerID]; ok {
			bill.DealerName = &name
		}
		if name, ok := branchNames[bill.BranchID]; ok {
			bill.BranchName = &name
		}
	}
	return nil
}
