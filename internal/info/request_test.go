package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestContextDefaults(t *testing.T) {
	rc, err := NewRequestContext(Params{GatherSubset: []string{"nodes"}})
	require.NoError(t, err)

	assert.Equal(t, DefaultAccessZone, rc.AccessZone())
	assert.Equal(t, ScopeEffective, rc.Scope())
	assert.False(t, rc.IncludeAllAccessZones())
	assert.True(t, rc.Requested(CategoryNodes))
	assert.False(t, rc.Requested(CategoryUsers))
}

func TestNewRequestContextEmptySubset(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{name: "nil subset", params: Params{}},
		{name: "empty subset", params: Params{GatherSubset: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, err := NewRequestContext(tt.params)
			assert.Nil(t, rc)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestNewRequestContextZoneExclusivity(t *testing.T) {
	// Explicit non-default zone together with all-zones is contradictory.
	rc, err := NewRequestContext(Params{
		GatherSubset:          []string{"network_pools"},
		AccessZone:            "zone-1",
		IncludeAllAccessZones: true,
	})
	assert.Nil(t, rc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	// The default zone spelled out explicitly is still compatible.
	rc, err = NewRequestContext(Params{
		GatherSubset:          []string{"network_pools"},
		AccessZone:            DefaultAccessZone,
		IncludeAllAccessZones: true,
	})
	require.NoError(t, err)
	assert.True(t, rc.IncludeAllAccessZones())
}

func TestNewRequestContextUnknownCategory(t *testing.T) {
	rc, err := NewRequestContext(Params{GatherSubset: []string{"nodes", "flux_capacitors"}})
	assert.Nil(t, rc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "flux_capacitors")
}

func TestNewRequestContextRejectsPrefixNames(t *testing.T) {
	// Membership is exact: a prefix of a valid category is not a category.
	for _, name := range []string{"nfs", "nfs_", "synciq", "network"} {
		rc, err := NewRequestContext(Params{GatherSubset: []string{name}})
		assert.Nil(t, rc, "name %q must be rejected", name)
		assert.Error(t, err)
	}
}

func TestNewRequestContextScope(t *testing.T) {
	for _, scope := range []string{ScopeEffective, ScopeUser, ScopeDefault} {
		rc, err := NewRequestContext(Params{GatherSubset: []string{"ldap"}, Scope: scope})
		require.NoError(t, err)
		assert.Equal(t, scope, rc.Scope())
	}

	rc, err := NewRequestContext(Params{GatherSubset: []string{"ldap"}, Scope: "everything"})
	assert.Nil(t, rc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestRequestedCategoriesRegistryOrder(t *testing.T) {
	// Caller order must not matter: dispatch follows registry order.
	rc, err := NewRequestContext(Params{
		GatherSubset: []string{"ldap", "nodes", "smb_shares", "attributes"},
	})
	require.NoError(t, err)

	assert.Equal(t, []Category{
		CategoryAttributes,
		CategoryNodes,
		CategorySmbShares,
		CategoryLdap,
	}, rc.RequestedCategories())
}

func TestNewRequestContextDuplicatesCollapse(t *testing.T) {
	rc, err := NewRequestContext(Params{GatherSubset: []string{"nodes", "nodes"}})
	require.NoError(t, err)
	assert.Equal(t, []Category{CategoryNodes}, rc.RequestedCategories())
}
