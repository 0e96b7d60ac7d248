package info

import (
	"context"

	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

func fetchProviders(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	providers, err := client.GetProvidersSummary(ctx, rc.AccessZone())
	if err != nil {
		return nil, newFetchError(CategoryProviders, client.Host(), err)
	}
	return providers, nil
}

func fetchUsers(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	users, err := client.ListAuthUsers(ctx, rc.AccessZone())
	if err != nil {
		return nil, newFetchError(CategoryUsers, client.Host(), err)
	}
	return users, nil
}

func fetchGroups(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	groups, err := client.ListAuthGroups(ctx, rc.AccessZone())
	if err != nil {
		return nil, newFetchError(CategoryGroups, client.Host(), err)
	}
	return groups, nil
}

// fetchUserMappingRules enumerates mapping rules in source order and
// annotates each with its 1-based apply_order, which is how OneFS actually
// applies them.
func fetchUserMappingRules(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	resp, err := client.ListUserMappingRules(ctx, rc.AccessZone())
	if err != nil {
		return nil, newFetchError(CategoryUserMappingRules, client.Host(), err)
	}
	rules := make([]map[string]any, 0, len(resp.Rules.Rules))
	for i, rule := range resp.Rules.Rules {
		annotated := make(map[string]any, len(rule)+1)
		for k, v := range rule {
			annotated[k] = v
		}
		annotated["apply_order"] = i + 1
		rules = append(rules, annotated)
	}
	return rules, nil
}

func fetchLdapProviders(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	resp, err := client.ListLdapProviders(ctx, rc.Scope())
	if err != nil {
		return nil, newFetchError(CategoryLdap, client.Host(), err)
	}
	if resp.Ldap == nil {
		return emptyList(), nil
	}
	return resp.Ldap, nil
}

func fetchRoles(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	resp, err := client.ListAuthRoles(ctx, rc.AccessZone())
	if err != nil {
		return nil, newFetchError(CategoryRoles, client.Host(), err)
	}
	if resp.Roles == nil {
		return emptyList(), nil
	}
	return resp.Roles, nil
}
