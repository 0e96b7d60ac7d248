package info

import (
	"context"

	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

// Category identifies one gatherable resource category. The enumeration is
// closed: lookups use exact membership in the registry, never substring
// matching, so sibling names can never shadow each other.
type Category string

// The supported categories, in registry (dispatch) order.
const (
	CategoryAttributes                      Category = "attributes"
	CategoryAccessZones                     Category = "access_zones"
	CategoryNodes                           Category = "nodes"
	CategoryProviders                       Category = "providers"
	CategoryUsers                           Category = "users"
	CategoryGroups                          Category = "groups"
	CategorySmbShares                       Category = "smb_shares"
	CategoryClients                         Category = "clients"
	CategoryNfsExports                      Category = "nfs_exports"
	CategoryNfsAliases                      Category = "nfs_aliases"
	CategorySynciqReports                   Category = "synciq_reports"
	CategorySynciqTargetReports             Category = "synciq_target_reports"
	CategorySynciqPolicies                  Category = "synciq_policies"
	CategorySynciqTargetClusterCertificates Category = "synciq_target_cluster_certificates"
	CategorySynciqPerformanceRules          Category = "synciq_performance_rules"
	CategoryNetworkGroupnets                Category = "network_groupnets"
	CategoryNetworkPools                    Category = "network_pools"
	CategoryNetworkRules                    Category = "network_rules"
	CategoryNetworkInterfaces               Category = "network_interfaces"
	CategoryNetworkSubnets                  Category = "network_subnets"
	CategoryNodePools                       Category = "node_pools"
	CategoryStoragepoolTiers                Category = "storagepool_tiers"
	CategorySmbFiles                        Category = "smb_files"
	CategoryUserMappingRules                Category = "user_mapping_rules"
	CategoryLdap                            Category = "ldap"
	CategoryNfsZoneSettings                 Category = "nfs_zone_settings"
	CategoryNfsDefaultSettings              Category = "nfs_default_settings"
	CategoryNfsGlobalSettings               Category = "nfs_global_settings"
	CategorySynciqGlobalSettings            Category = "synciq_global_settings"
	CategoryS3Buckets                       Category = "s3_buckets"
	CategorySmbGlobalSettings               Category = "smb_global_settings"
	CategoryNtpServers                      Category = "ntp_servers"
	CategoryEmailSettings                   Category = "email_settings"
	CategoryClusterIdentity                 Category = "cluster_identity"
	CategoryClusterOwner                    Category = "cluster_owner"
	CategorySnmpSettings                    Category = "snmp_settings"
	CategoryServerCertificate               Category = "server_certificate"
	CategoryRoles                           Category = "roles"
	CategorySupportAssistSettings           Category = "support_assist_settings"
)

// fetchFunc fetches one category from the cluster and normalizes the raw
// response into the category's canonical shape.
type fetchFunc func(ctx context.Context, client onefs.Client, rc *RequestContext) (any, error)

// descriptor ties a category to its fixed output key, its empty default and
// its fetch-and-normalize operation.
type descriptor struct {
	id Category

	// resultKey is the fixed top-level key in the report. Several keys are
	// irregular (s3Buckets, roles, NTPServers, ...); they are preserved
	// exactly as the module has always emitted them.
	resultKey string

	// defaultValue builds the value emitted when the category was not
	// requested: an empty list or an empty mapping, fresh per report.
	defaultValue func() any

	fetch fetchFunc
}

func emptyList() any {
	return []any{}
}

func emptyMap() any {
	return map[string]any{}
}

// registry is the closed mapping from category to descriptor, built once at
// process start and never mutated. Slice order is dispatch order.
var registry = []descriptor{
	{CategoryAttributes, "Attributes", emptyList, fetchAttributes},
	{CategoryAccessZones, "AccessZones", emptyList, fetchAccessZones},
	{CategoryNodes, "Nodes", emptyList, fetchNodes},
	{CategoryProviders, "Providers", emptyList, fetchProviders},
	{CategoryUsers, "Users", emptyList, fetchUsers},
	{CategoryGroups, "Groups", emptyList, fetchGroups},
	{CategorySmbShares, "SmbShares", emptyList, fetchSmbShares},
	{CategoryClients, "Clients", emptyList, fetchClients},
	{CategoryNfsExports, "NfsExports", emptyList, fetchNfsExports},
	{CategoryNfsAliases, "NfsAliases", emptyList, fetchNfsAliases},
	{CategorySynciqReports, "SynciqReports", emptyList, fetchSynciqReports},
	{CategorySynciqTargetReports, "SynciqTargetReports", emptyList, fetchSynciqTargetReports},
	{CategorySynciqPolicies, "SynciqPolicies", emptyList, fetchSynciqPolicies},
	{CategorySynciqTargetClusterCertificates, "SynciqTargetClusterCertificate", emptyList, fetchSynciqTargetClusterCertificates},
	{CategorySynciqPerformanceRules, "SynciqPerformanceRules", emptyList, fetchSynciqPerformanceRules},
	{CategoryNetworkGroupnets, "NetworkGroupnets", emptyList, fetchNetworkGroupnets},
	{CategoryNetworkPools, "NetworkPools", emptyList, fetchNetworkPools},
	{CategoryNetworkRules, "NetworkRules", emptyList, fetchNetworkRules},
	{CategoryNetworkInterfaces, "NetworkInterfaces", emptyList, fetchNetworkInterfaces},
	{CategoryNetworkSubnets, "NetworkSubnets", emptyList, fetchNetworkSubnets},
	{CategoryNodePools, "NodePools", emptyList, fetchNodePools},
	{CategoryStoragepoolTiers, "StoragePoolTiers", emptyList, fetchStoragepoolTiers},
	{CategorySmbFiles, "SmbOpenFiles", emptyList, fetchSmbOpenFiles},
	{CategoryUserMappingRules, "UserMappingRules", emptyList, fetchUserMappingRules},
	{CategoryLdap, "LdapProviders", emptyList, fetchLdapProviders},
	{CategoryNfsZoneSettings, "NfsZoneSettings", emptyMap, fetchNfsZoneSettings},
	{CategoryNfsDefaultSettings, "NfsDefaultSettings", emptyMap, fetchNfsDefaultSettings},
	{CategoryNfsGlobalSettings, "NfsGlobalSettings", emptyMap, fetchNfsGlobalSettings},
	{CategorySynciqGlobalSettings, "SynciqGlobalSettings", emptyMap, fetchSynciqGlobalSettings},
	{CategoryS3Buckets, "s3Buckets", emptyMap, fetchS3Buckets},
	{CategorySmbGlobalSettings, "SmbGlobalSettings", emptyMap, fetchSmbGlobalSettings},
	{CategoryNtpServers, "NTPServers", emptyMap, fetchNtpServers},
	{CategoryEmailSettings, "EmailSettings", emptyMap, fetchEmailSettings},
	{CategoryClusterIdentity, "ClusterIdentity", emptyMap, fetchClusterIdentity},
	{CategoryClusterOwner, "ClusterOwner", emptyMap, fetchClusterOwner},
	{CategorySnmpSettings, "SnmpSettings", emptyMap, fetchSnmpSettings},
	{CategoryServerCertificate, "ServerCertificate", emptyList, fetchServerCertificate},
	{CategoryRoles, "roles", emptyMap, fetchRoles},
	{CategorySupportAssistSettings, "support_assist_settings", emptyMap, fetchSupportAssistSettings},
}

// registryIndex and registryOrder are derived lookup tables over registry.
var (
	registryIndex = make(map[Category]*descriptor, len(registry))
	registryOrder = make(map[Category]int, len(registry))
)

func init() {
	for i := range registry {
		registryIndex[registry[i].id] = &registry[i]
		registryOrder[registry[i].id] = i
	}
}

// Valid reports whether the category belongs to the closed enumeration.
func (c Category) Valid() bool {
	_, ok := registryIndex[c]
	return ok
}

// String returns the category identifier.
func (c Category) String() string {
	return string(c)
}

// AllCategories returns every supported category in registry order.
func AllCategories() []Category {
	categories := make([]Category, len(registry))
	for i := range registry {
		categories[i] = registry[i].id
	}
	return categories
}

// lookup returns the descriptor for a category, or nil when the category is
// outside the enumeration.
func lookup(category Category) *descriptor {
	return registryIndex[category]
}
