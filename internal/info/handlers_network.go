package info

import (
	"context"

	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

// projectNetworkObjects reduces named network topology elements to their
// stable identifying fields, preserving the source order.
func projectNetworkObjects(objects []onefs.NetworkObject) []map[string]any {
	projected := make([]map[string]any, 0, len(objects))
	for _, object := range objects {
		projected = append(projected, map[string]any{
			"id":   object.ID,
			"name": object.Name,
		})
	}
	return projected
}

func fetchNetworkGroupnets(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.ListNetworkGroupnets(ctx)
	if err != nil {
		return nil, newFetchError(CategoryNetworkGroupnets, client.Host(), err)
	}
	return projectNetworkObjects(resp.Groupnets), nil
}

// fetchNetworkPools lists pools for the resolved zone, or for every zone
// when the caller asked for all access zones.
func fetchNetworkPools(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	resp, err := client.ListNetworkPools(ctx, rc.AccessZone(), rc.IncludeAllAccessZones())
	if err != nil {
		return nil, newFetchError(CategoryNetworkPools, client.Host(), err)
	}
	return projectNetworkObjects(resp.Pools), nil
}

func fetchNetworkRules(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.ListNetworkRules(ctx)
	if err != nil {
		return nil, newFetchError(CategoryNetworkRules, client.Host(), err)
	}
	return projectNetworkObjects(resp.Rules), nil
}

func fetchNetworkInterfaces(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.ListNetworkInterfaces(ctx)
	if err != nil {
		return nil, newFetchError(CategoryNetworkInterfaces, client.Host(), err)
	}
	if resp.Interfaces == nil {
		return emptyList(), nil
	}
	return resp.Interfaces, nil
}

func fetchNetworkSubnets(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.ListNetworkSubnets(ctx)
	if err != nil {
		return nil, newFetchError(CategoryNetworkSubnets, client.Host(), err)
	}
	return projectNetworkObjects(resp.Subnets), nil
}
