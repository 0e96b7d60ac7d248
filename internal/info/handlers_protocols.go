package info

import (
	"context"

	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

// fetchSmbShares projects the zone's SMB shares onto their stable
// identifying fields.
func fetchSmbShares(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	resp, err := client.ListSmbShares(ctx, rc.AccessZone())
	if err != nil {
		return nil, newFetchError(CategorySmbShares, client.Host(), err)
	}
	shares := make([]map[string]any, 0, len(resp.Shares))
	for _, share := range resp.Shares {
		shares = append(shares, map[string]any{
			"id":   share.ID,
			"name": share.Name,
		})
	}
	return shares, nil
}

func fetchSmbOpenFiles(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.ListSmbOpenFiles(ctx)
	if err != nil {
		return nil, newFetchError(CategorySmbFiles, client.Host(), err)
	}
	if resp.OpenFiles == nil {
		return emptyList(), nil
	}
	return resp.OpenFiles, nil
}

func fetchSmbGlobalSettings(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	settings, err := client.GetSmbGlobalSettings(ctx)
	if err != nil {
		return nil, newFetchError(CategorySmbGlobalSettings, client.Host(), err)
	}
	return settings, nil
}

func fetchNfsExports(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	resp, err := client.ListNfsExports(ctx, rc.AccessZone())
	if err != nil {
		return nil, newFetchError(CategoryNfsExports, client.Host(), err)
	}
	exports := make([]map[string]any, 0, len(resp.Exports))
	for _, export := range resp.Exports {
		exports = append(exports, map[string]any{
			"id":    export.ID,
			"paths": export.Paths,
		})
	}
	return exports, nil
}

func fetchNfsAliases(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	resp, err := client.ListNfsAliases(ctx, rc.AccessZone())
	if err != nil {
		return nil, newFetchError(CategoryNfsAliases, client.Host(), err)
	}
	if resp.Aliases == nil {
		return emptyList(), nil
	}
	return resp.Aliases, nil
}

// fetchNfsZoneSettings returns the zone-scoped NFS settings with the
// resolved zone injected, so the caller can tell which zone was read.
func fetchNfsZoneSettings(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	settings, err := client.GetNfsZoneSettings(ctx, rc.AccessZone())
	if err != nil {
		return nil, newFetchError(CategoryNfsZoneSettings, client.Host(), err)
	}
	return withZone(settings, rc.AccessZone()), nil
}

func fetchNfsDefaultSettings(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error) {
	settings, err := client.GetNfsDefaultSettings(ctx, rc.AccessZone())
	if err != nil {
		return nil, newFetchError(CategoryNfsDefaultSettings, client.Host(), err)
	}
	return withZone(settings, rc.AccessZone()), nil
}

func fetchNfsGlobalSettings(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	settings, err := client.GetNfsGlobalSettings(ctx)
	if err != nil {
		return nil, newFetchError(CategoryNfsGlobalSettings, client.Host(), err)
	}
	return settings, nil
}

func fetchS3Buckets(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	buckets, err := client.ListS3Buckets(ctx)
	if err != nil {
		return nil, newFetchError(CategoryS3Buckets, client.Host(), err)
	}
	return buckets, nil
}

func fetchNtpServers(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	servers, err := client.ListNtpServers(ctx)
	if err != nil {
		return nil, newFetchError(CategoryNtpServers, client.Host(), err)
	}
	return servers, nil
}

func fetchSnmpSettings(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	settings, err := client.GetSnmpSettings(ctx)
	if err != nil {
		return nil, newFetchError(CategorySnmpSettings, client.Host(), err)
	}
	return settings, nil
}

func fetchSupportAssistSettings(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	settings, err := client.GetSupportAssistSettings(ctx)
	if err != nil {
		return nil, newFetchError(CategorySupportAssistSettings, client.Host(), err)
	}
	return settings, nil
}

// withZone copies a settings object and injects the resolved access zone.
func withZone(settings map[string]any, zone string) map[string]any {
	out := make(map[string]any, len(settings)+1)
	for k, v := range settings {
		out[k] = v
	}
	out["zone"] = zone
	return out
}
