package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopify-sync/internal/adapters/shopify"
	"shopify-sync/internal/domain/model"
)

func TestResolveLocationOverrideSkipsRemoteLookup(t *testing.T) {
	fake := &fakeShopify{}
	resolver, err := NewLocationResolver(fake, "987654", nil)
	require.NoError(t, err)

	id, err := resolver.ResolveLocation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(987654), id)
	assert.Zero(t, fake.listLocationCalls)
}

func TestNewLocationResolverRejectsBadOverride(t *testing.T) {
	_, err := NewLocationResolver(&fakeShopify{}, "not-a-number", nil)
	assert.Error(t, err)
}

func TestResolveLocationCachesFirstLocation(t *testing.T) {
	fake := &fakeShopify{
		locations: []shopify.Location{
			{ID: 555, Name: "Main", Active: true},
			{ID: 777, Name: "Backup", Active: true},
		},
	}
	resolver, err := NewLocationResolver(fake, "", nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		id, err := resolver.ResolveLocation(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(555), id)
	}

	assert.Equal(t, 1, fake.listLocationCalls)
}

func TestResolveLocationEmptyListIsUpstreamError(t *testing.T) {
	resolver, err := NewLocationResolver(&fakeShopify{}, "", nil)
	require.NoError(t, err)

	_, err = resolver.ResolveLocation(context.Background())

	assert.True(t, model.IsUpstream(err))
}
