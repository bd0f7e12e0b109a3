package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice.app/billing/model"
)

func TestListDealers(t *testing.T) {
	service, _, mockDirectory := newTestService(t)
	mockDirectory.EXPECT().
		ListDealers(gomock.Any()).
		Return([]model.Dealer{{ID: "D-1", Name: "Acme Flour"}}, nil)

	result, err := service.ListDealers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.Dealer{{ID: "D-1", Name: "Acme Flour"}}, result.Dealers)
}

func TestListBranches(t *testing.T) {
	t.Run("happy_case", func(t *testing.T) {
		service, _, mockDirectory := newTestService(t)
		mockDirectory.EXPECT().
			ListBranches(gomock.Any()).
			Return([]model.Branch{{ID: "BR-1", Name: "Downtown"}}, nil)

		result, err := service.ListBranches(context.Background())

		require.NoError(t, err)
		assert.Len(t, result.Branches, 1)
	})

	t.Run("directory_error", func(t *testing.T) {
		service, _, mockDirectory := newTestService(t)
		mockDirectory.EXPECT().
			ListBranches(gomock.Any()).
			Return(nil, assert.AnError)

		result, err := service.ListBranches(context.Background())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
