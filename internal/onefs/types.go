package onefs

// Response types for the listing operations the info engine projects into
// stable shapes. Categories whose output is a raw passthrough keep
// map[string]any and are not modelled here. Fields beyond the ones the
// engine projects are deliberately absorbed into the element maps so an API
// schema addition never breaks decoding.

// SmbShare is a single SMB share element.
type SmbShare struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SmbSharesResponse is the share listing for one access zone.
type SmbSharesResponse struct {
	Shares []SmbShare `json:"shares"`
}

// SmbOpenFilesResponse is the list of files currently open over SMB.
type SmbOpenFilesResponse struct {
	OpenFiles []map[string]any `json:"openfiles"`
}

// NfsExport is a single NFS export element.
type NfsExport struct {
	ID    int      `json:"id"`
	Paths []string `json:"paths"`
}

// NfsExportsResponse is the export listing for one access zone.
type NfsExportsResponse struct {
	Exports []NfsExport `json:"exports"`
}

// NfsAliasesResponse is the alias listing for one access zone.
type NfsAliasesResponse struct {
	Aliases []map[string]any `json:"aliases"`
}

// ClientSummaryEntry is one active client connection from the statistics
// summary.
type ClientSummaryEntry struct {
	LocalAddr  string  `json:"local_addr"`
	LocalName  string  `json:"local_name"`
	RemoteAddr string  `json:"remote_addr"`
	RemoteName string  `json:"remote_name"`
	Node       float64 `json:"node"`
	Protocol   string  `json:"protocol"`
}

// ClientSummaryResponse is the active client connection summary.
type ClientSummaryResponse struct {
	Clients []ClientSummaryEntry `json:"client"`
}

// SyncReport is a single SyncIQ report element.
type SyncReport struct {
	ID         string `json:"id"`
	PolicyName string `json:"policy_name"`
}

// SyncReportsResponse is a SyncIQ report listing, local or target side.
type SyncReportsResponse struct {
	Total   int          `json:"total"`
	Reports []SyncReport `json:"reports"`
}

// SyncPolicy is a single SyncIQ policy element.
type SyncPolicy struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SourceRootPath string `json:"source_root_path"`
	TargetPath     string `json:"target_path"`
	Action         string `json:"action"`
	Schedule       string `json:"schedule"`
	Enabled        bool   `json:"enabled"`
}

// SyncPoliciesResponse is the SyncIQ policy listing.
type SyncPoliciesResponse struct {
	Policies []SyncPolicy `json:"policies"`
}

// SyncCertificate is a single SyncIQ peer certificate element.
type SyncCertificate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SyncCertificatesResponse is the SyncIQ peer certificate listing.
type SyncCertificatesResponse struct {
	Certificates []SyncCertificate `json:"certificates"`
}

// SyncRuleType enumerates SyncIQ performance rule types.
type SyncRuleType string

// SyncIQ performance rule types as reported by the API.
const (
	SyncRuleBandwidth SyncRuleType = "bandwidth"
	SyncRuleCPU       SyncRuleType = "cpu"
	SyncRuleFileCount SyncRuleType = "file_count"
	SyncRuleWorker    SyncRuleType = "worker"
)

// SyncRule is a single SyncIQ performance rule element.
type SyncRule struct {
	ID       string       `json:"id"`
	Schedule any          `json:"schedule"`
	Enabled  bool         `json:"enabled"`
	Type     SyncRuleType `json:"type"`
	Limit    int64        `json:"limit"`
}

// SyncRulesResponse is the SyncIQ performance rule listing.
type SyncRulesResponse struct {
	Rules []SyncRule `json:"rules"`
}

// NetworkObject is a named network topology element (groupnet, pool, rule or
// subnet); the engine projects only the stable identifying fields.
type NetworkObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NetworkGroupnetsResponse is the groupnet listing.
type NetworkGroupnetsResponse struct {
	Groupnets []NetworkObject `json:"groupnets"`
}

// NetworkPoolsResponse is the pool listing.
type NetworkPoolsResponse struct {
	Pools []NetworkObject `json:"pools"`
}

// NetworkRulesResponse is the provisioning rule listing.
type NetworkRulesResponse struct {
	Rules []NetworkObject `json:"rules"`
}

// NetworkInterfacesResponse is the per-node interface listing.
type NetworkInterfacesResponse struct {
	Interfaces []map[string]any `json:"interfaces"`
}

// NetworkSubnetsResponse is the subnet listing.
type NetworkSubnetsResponse struct {
	Subnets []NetworkObject `json:"subnets"`
}

// NodePoolsResponse is the storage pool node pool listing.
type NodePoolsResponse struct {
	NodePools []map[string]any `json:"nodepools"`
}

// StoragepoolTiersResponse is the storage pool tier listing.
type StoragepoolTiersResponse struct {
	Tiers []map[string]any `json:"tiers"`
}

// UserMappingRulesResponse is the user mapping rule listing. The platform
// API nests the rule list one level deeper than the other listings.
type UserMappingRulesResponse struct {
	Rules struct {
		Rules []map[string]any `json:"rules"`
	} `json:"rules"`
}

// LdapProvidersResponse is the LDAP provider listing.
type LdapProvidersResponse struct {
	Ldap []map[string]any `json:"ldap"`
}

// AuthRolesResponse is the RBAC role listing for one access zone.
type AuthRolesResponse struct {
	Roles []map[string]any `json:"roles"`
}

// ServerCertificatesResponse is the TLS server certificate listing.
type ServerCertificatesResponse struct {
	Certificates []map[string]any `json:"certificates"`
}
