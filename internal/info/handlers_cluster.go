package info

import (
	"context"
	"strings"

	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

// fetchAttributes assembles the cluster attribute bundle from five cluster
// API calls: configuration, external IPs, identity, owner and version.
func fetchAttributes(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	config, err := client.GetClusterConfig(ctx)
	if err != nil {
		return nil, newFetchError(CategoryAttributes, client.Host(), err)
	}
	ips, err := client.GetClusterExternalIPs(ctx)
	if err != nil {
		return nil, newFetchError(CategoryAttributes, client.Host(), err)
	}
	identity, err := client.GetClusterIdentity(ctx)
	if err != nil {
		return nil, newFetchError(CategoryAttributes, client.Host(), err)
	}
	owner, err := client.GetClusterOwner(ctx)
	if err != nil {
		return nil, newFetchError(CategoryAttributes, client.Host(), err)
	}
	version, err := client.GetClusterVersion(ctx)
	if err != nil {
		return nil, newFetchError(CategoryAttributes, client.Host(), err)
	}

	return map[string]any{
		"Config":          config,
		"Contact_Info":    owner,
		"External_IP":     map[string]any{"External IPs": strings.Join(ips, ",")},
		"Logon_msg":       identity,
		"Cluster_Version": version,
	}, nil
}

func fetchAccessZones(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	zones, err := client.ListAccessZones(ctx)
	if err != nil {
		return nil, newFetchError(CategoryAccessZones, client.Host(), err)
	}
	return zones, nil
}

func fetchNodes(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	nodes, err := client.GetClusterNodes(ctx)
	if err != nil {
		return nil, newFetchError(CategoryNodes, client.Host(), err)
	}
	return nodes, nil
}

// fetchClients lists active client connections from the statistics summary,
// projecting each entry onto stable field names.
func fetchClients(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	summary, err := client.GetSummaryClients(ctx)
	if err != nil {
		return nil, newFetchError(CategoryClients, client.Host(), err)
	}
	clients := make([]map[string]any, 0, len(summary.Clients))
	for _, entry := range summary.Clients {
		clients = append(clients, map[string]any{
			"local_address":  entry.LocalAddr,
			"local_name":     entry.LocalName,
			"remote_address": entry.RemoteAddr,
			"remote_name":    entry.RemoteName,
			"node":           entry.Node,
			"protocol":       entry.Protocol,
		})
	}
	return clients, nil
}

func fetchEmailSettings(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	settings, err := client.GetClusterEmailSettings(ctx)
	if err != nil {
		return nil, newFetchError(CategoryEmailSettings, client.Host(), err)
	}
	return settings, nil
}

func fetchClusterIdentity(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	identity, err := client.GetClusterIdentity(ctx)
	if err != nil {
		return nil, newFetchError(CategoryClusterIdentity, client.Host(), err)
	}
	return identity, nil
}

func fetchClusterOwner(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	owner, err := client.GetClusterOwner(ctx)
	if err != nil {
		return nil, newFetchError(CategoryClusterOwner, client.Host(), err)
	}
	return owner, nil
}
