package donor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"papertrail/internal/storage"
	dErrors "papertrail/pkg/domain-errors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	data := storage.NewDataset()
	data.AddDonor(storage.DonorRow{Name: "Zeta Holdings", DonorType: "Corporation", State: storage.Ptr("NY")})
	data.AddDonor(storage.DonorRow{Name: "Acme Holdings PAC", DonorType: "PAC", Industry: storage.Ptr("Finance")})
	data.AddDonor(storage.DonorRow{Name: "Jo Citizen", DonorType: "Individual", Employer: storage.Ptr("Self")})

	svc, err := NewService(NewInMemory(data))
	require.NoError(t, err)
	return svc
}

func TestSearch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("substring match ordered by name", func(t *testing.T) {
		got, err := svc.Search(ctx, "HOLD")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Acme Holdings PAC", got[0].Name)
		assert.Equal(t, "Zeta Holdings", got[1].Name)
	})

	t.Run("fewer than three characters returns nothing", func(t *testing.T) {
		got, err := svc.Search(ctx, "Jo")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("underscore is literal", func(t *testing.T) {
		got, err := svc.Search(ctx, "Jo_")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	got, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Jo Citizen", got.Name)
	require.NotNil(t, got.Employer)
	assert.Equal(t, "Self", *got.Employer)
	assert.Nil(t, got.State)

	_, err = svc.Get(ctx, 42)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}
