package onefs

import "context"

// Client defines the interface for read-only OneFS platform API operations.
// It composes one interface per API area, mirroring the platform API's own
// split, with one method per fetch operation. The info engine consumes this
// interface only; the REST implementation and test doubles both satisfy it.
type Client interface {
	ClusterAPI
	ZonesAPI
	AuthAPI
	ProtocolsAPI
	StatisticsAPI
	SyncAPI
	NetworkAPI
	StoragepoolAPI
	CertificateAPI
	SupportAssistAPI

	// Host returns the configured cluster host, used to identify the target
	// cluster in logs and failure messages.
	Host() string
}

// ClusterAPI covers cluster-wide configuration and identity operations.
type ClusterAPI interface {
	// GetClusterConfig returns the cluster configuration object.
	GetClusterConfig(ctx context.Context) (map[string]any, error)

	// GetClusterExternalIPs returns the cluster's external IP addresses.
	GetClusterExternalIPs(ctx context.Context) ([]string, error)

	// GetClusterIdentity returns the cluster identity (name, description,
	// logon banner).
	GetClusterIdentity(ctx context.Context) (map[string]any, error)

	// GetClusterOwner returns the cluster owner contact information.
	GetClusterOwner(ctx context.Context) (map[string]any, error)

	// GetClusterVersion returns the OneFS version details per node.
	GetClusterVersion(ctx context.Context) (map[string]any, error)

	// GetClusterNodes returns the cluster node inventory.
	GetClusterNodes(ctx context.Context) (map[string]any, error)

	// GetClusterEmailSettings returns the cluster email notification settings.
	GetClusterEmailSettings(ctx context.Context) (map[string]any, error)
}

// ZonesAPI covers access zone operations.
type ZonesAPI interface {
	// ListAccessZones returns every access zone configured on the cluster.
	ListAccessZones(ctx context.Context) (map[string]any, error)
}

// AuthAPI covers authentication providers, principals and mapping rules.
type AuthAPI interface {
	// GetProvidersSummary returns the authentication provider summary for an
	// access zone.
	GetProvidersSummary(ctx context.Context, zone string) (map[string]any, error)

	// ListAuthUsers returns the users of an access zone.
	ListAuthUsers(ctx context.Context, zone string) (map[string]any, error)

	// ListAuthGroups returns the groups of an access zone.
	ListAuthGroups(ctx context.Context, zone string) (map[string]any, error)

	// ListAuthRoles returns the RBAC roles of an access zone.
	ListAuthRoles(ctx context.Context, zone string) (*AuthRolesResponse, error)

	// ListUserMappingRules returns the user mapping rules of an access zone.
	ListUserMappingRules(ctx context.Context, zone string) (*UserMappingRulesResponse, error)

	// ListLdapProviders returns the LDAP providers at the given scope.
	ListLdapProviders(ctx context.Context, scope string) (*LdapProvidersResponse, error)
}

// ProtocolsAPI covers SMB, NFS, S3, NTP and SNMP protocol operations.
type ProtocolsAPI interface {
	// ListSmbShares returns the SMB shares of an access zone.
	ListSmbShares(ctx context.Context, zone string) (*SmbSharesResponse, error)

	// ListSmbOpenFiles returns the files currently opened over SMB.
	ListSmbOpenFiles(ctx context.Context) (*SmbOpenFilesResponse, error)

	// GetSmbGlobalSettings returns the cluster-wide SMB settings.
	GetSmbGlobalSettings(ctx context.Context) (map[string]any, error)

	// ListNfsExports returns the NFS exports of an access zone.
	ListNfsExports(ctx context.Context, zone string) (*NfsExportsResponse, error)

	// ListNfsAliases returns the NFS aliases of an access zone, with alias
	// health checks included.
	ListNfsAliases(ctx context.Context, zone string) (*NfsAliasesResponse, error)

	// GetNfsZoneSettings returns the zone-scoped NFS settings.
	GetNfsZoneSettings(ctx context.Context, zone string) (map[string]any, error)

	// GetNfsDefaultSettings returns the zone-scoped NFS export default
	// settings.
	GetNfsDefaultSettings(ctx context.Context, zone string) (map[string]any, error)

	// GetNfsGlobalSettings returns the cluster-wide NFS settings.
	GetNfsGlobalSettings(ctx context.Context) (map[string]any, error)

	// ListS3Buckets returns the S3 buckets configured on the cluster.
	ListS3Buckets(ctx context.Context) (map[string]any, error)

	// ListNtpServers returns the configured NTP servers.
	ListNtpServers(ctx context.Context) (map[string]any, error)

	// GetSnmpSettings returns the SNMP settings.
	GetSnmpSettings(ctx context.Context) (map[string]any, error)
}

// StatisticsAPI covers live statistics summaries.
type StatisticsAPI interface {
	// GetSummaryClients returns the active client connection summary.
	GetSummaryClients(ctx context.Context) (*ClientSummaryResponse, error)
}

// SyncAPI covers SyncIQ replication operations.
type SyncAPI interface {
	// GetSyncReports returns SyncIQ replication reports.
	GetSyncReports(ctx context.Context) (*SyncReportsResponse, error)

	// GetSyncTargetReports returns SyncIQ target-side replication reports.
	GetSyncTargetReports(ctx context.Context) (*SyncReportsResponse, error)

	// ListSyncPolicies returns SyncIQ replication policies.
	ListSyncPolicies(ctx context.Context) (*SyncPoliciesResponse, error)

	// ListPeerCertificates returns SyncIQ target cluster certificates.
	ListPeerCertificates(ctx context.Context) (*SyncCertificatesResponse, error)

	// ListSyncRules returns SyncIQ performance rules.
	ListSyncRules(ctx context.Context) (*SyncRulesResponse, error)

	// GetSyncGlobalSettings returns the cluster-wide SyncIQ settings.
	GetSyncGlobalSettings(ctx context.Context) (map[string]any, error)
}

// NetworkAPI covers network topology operations.
type NetworkAPI interface {
	// ListNetworkGroupnets returns the network groupnets.
	ListNetworkGroupnets(ctx context.Context) (*NetworkGroupnetsResponse, error)

	// ListNetworkPools returns the network pools of an access zone, or of
	// every zone when allZones is set.
	ListNetworkPools(ctx context.Context, zone string, allZones bool) (*NetworkPoolsResponse, error)

	// ListNetworkRules returns the network provisioning rules.
	ListNetworkRules(ctx context.Context) (*NetworkRulesResponse, error)

	// ListNetworkInterfaces returns the network interfaces of every node.
	ListNetworkInterfaces(ctx context.Context) (*NetworkInterfacesResponse, error)

	// ListNetworkSubnets returns the network subnets.
	ListNetworkSubnets(ctx context.Context) (*NetworkSubnetsResponse, error)
}

// StoragepoolAPI covers storage pool and tier operations.
type StoragepoolAPI interface {
	// ListNodePools returns the storage pool node pools.
	ListNodePools(ctx context.Context) (*NodePoolsResponse, error)

	// ListStoragepoolTiers returns the storage pool tiers.
	ListStoragepoolTiers(ctx context.Context) (*StoragepoolTiersResponse, error)
}

// CertificateAPI covers TLS server certificate operations.
type CertificateAPI interface {
	// ListServerCertificates returns the installed server certificates.
	ListServerCertificates(ctx context.Context) (*ServerCertificatesResponse, error)

	// GetCertificateSettings returns the certificate settings, including the
	// default HTTPS certificate id.
	GetCertificateSettings(ctx context.Context) (map[string]any, error)
}

// SupportAssistAPI covers SupportAssist (remote support) operations.
type SupportAssistAPI interface {
	// GetSupportAssistSettings returns the SupportAssist settings.
	GetSupportAssistSettings(ctx context.Context) (map[string]any, error)
}
