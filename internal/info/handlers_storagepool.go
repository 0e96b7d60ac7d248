package info

import (
	"context"

	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

func fetchNodePools(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.ListNodePools(ctx)
	if err != nil {
		return nil, newFetchError(CategoryNodePools, client.Host(), err)
	}
	if resp.NodePools == nil {
		return emptyList(), nil
	}
	return resp.NodePools, nil
}

func fetchStoragepoolTiers(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.ListStoragepoolTiers(ctx)
	if err != nil {
		return nil, newFetchError(CategoryStoragepoolTiers, client.Host(), err)
	}
	if resp.Tiers == nil {
		return emptyList(), nil
	}
	return resp.Tiers, nil
}
