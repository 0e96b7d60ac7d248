package info

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-powerscale/internal/info/infotest"
	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

// mustRequestContext builds a validated request context for handler tests.
func mustRequestContext(t *testing.T, params Params) *RequestContext {
	t.Helper()
	rc, err := NewRequestContext(params)
	require.NoError(t, err)
	return rc
}

func TestFetchUserMappingRulesApplyOrder(t *testing.T) {
	mock := infotest.NewMockClient()
	resp := &onefs.UserMappingRulesResponse{}
	resp.Rules.Rules = []map[string]any{
		{"operator": "append", "user1": map[string]any{"user": "alice"}},
		{"operator": "insert"},
		{"operator": "replace"},
	}
	mock.Responses[infotest.OpUserMappingRules] = resp
	rc := mustRequestContext(t, Params{GatherSubset: []string{"user_mapping_rules"}})

	value, err := fetchUserMappingRules(context.Background(), mock, rc)
	require.NoError(t, err)

	rules, ok := value.([]map[string]any)
	require.True(t, ok)
	require.Len(t, rules, 3)
	for i, rule := range rules {
		assert.Equal(t, i+1, rule["apply_order"], "apply_order is 1-based source position")
	}
	assert.Equal(t, "append", rules[0]["operator"])

	// The source elements must not be mutated by the annotation.
	assert.NotContains(t, resp.Rules.Rules[0], "apply_order")
}

func TestFetchLdapProvidersScopeAndNilList(t *testing.T) {
	mock := infotest.NewMockClient()
	rc := mustRequestContext(t, Params{GatherSubset: []string{"ldap"}, Scope: ScopeDefault})

	value, err := fetchLdapProviders(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, ScopeDefault, mock.ScopeArg)
	assert.Equal(t, []any{}, value, "missing ldap sub-list yields the empty default")
}

func TestFetchRoles(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpAuthRoles] = &onefs.AuthRolesResponse{
		Roles: []map[string]any{{"id": "AuditAdmin", "name": "AuditAdmin"}},
	}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"roles"}, AccessZone: "tenant-b"})

	value, err := fetchRoles(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"id": "AuditAdmin", "name": "AuditAdmin"}}, value)
	assert.Equal(t, "tenant-b", mock.Zones[infotest.OpAuthRoles])
}

func TestFetchUsersWrapsFetchError(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.HostName = "isilon.example.com"
	cause := errors.New("403 forbidden")
	mock.Errors[infotest.OpAuthUsers] = cause
	rc := mustRequestContext(t, Params{GatherSubset: []string{"users"}})

	value, err := fetchUsers(context.Background(), mock, rc)
	assert.Nil(t, value)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, CategoryUsers, fetchErr.Category)
	assert.Equal(t, "isilon.example.com", fetchErr.Host)
	assert.ErrorIs(t, err, cause)
}
