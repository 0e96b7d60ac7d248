// Package infotest provides a mock OneFS client for info engine tests.
package infotest

import (
	"context"
	"sync"

	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

// Operation names used to key canned responses, injected errors and call
// counts. One per onefs.Client fetch operation.
const (
	OpClusterConfig        = "GetClusterConfig"
	OpClusterExternalIPs   = "GetClusterExternalIPs"
	OpClusterIdentity      = "GetClusterIdentity"
	OpClusterOwner         = "GetClusterOwner"
	OpClusterVersion       = "GetClusterVersion"
	OpClusterNodes         = "GetClusterNodes"
	OpClusterEmail         = "GetClusterEmailSettings"
	OpAccessZones          = "ListAccessZones"
	OpProvidersSummary     = "GetProvidersSummary"
	OpAuthUsers            = "ListAuthUsers"
	OpAuthGroups           = "ListAuthGroups"
	OpAuthRoles            = "ListAuthRoles"
	OpUserMappingRules     = "ListUserMappingRules"
	OpLdapProviders        = "ListLdapProviders"
	OpSmbShares            = "ListSmbShares"
	OpSmbOpenFiles         = "ListSmbOpenFiles"
	OpSmbGlobalSettings    = "GetSmbGlobalSettings"
	OpNfsExports           = "ListNfsExports"
	OpNfsAliases           = "ListNfsAliases"
	OpNfsZoneSettings      = "GetNfsZoneSettings"
	OpNfsDefaultSettings   = "GetNfsDefaultSettings"
	OpNfsGlobalSettings    = "GetNfsGlobalSettings"
	OpS3Buckets            = "ListS3Buckets"
	OpNtpServers           = "ListNtpServers"
	OpSnmpSettings         = "GetSnmpSettings"
	OpSummaryClients       = "GetSummaryClients"
	OpSyncReports          = "GetSyncReports"
	OpSyncTargetReports    = "GetSyncTargetReports"
	OpSyncPolicies         = "ListSyncPolicies"
	OpPeerCertificates     = "ListPeerCertificates"
	OpSyncRules            = "ListSyncRules"
	OpSyncGlobalSettings   = "GetSyncGlobalSettings"
	OpNetworkGroupnets     = "ListNetworkGroupnets"
	OpNetworkPools         = "ListNetworkPools"
	OpNetworkRules         = "ListNetworkRules"
	OpNetworkInterfaces    = "ListNetworkInterfaces"
	OpNetworkSubnets       = "ListNetworkSubnets"
	OpNodePools            = "ListNodePools"
	OpStoragepoolTiers     = "ListStoragepoolTiers"
	OpServerCertificates   = "ListServerCertificates"
	OpCertificateSettings  = "GetCertificateSettings"
	OpSupportAssist        = "GetSupportAssistSettings"
)

// MockClient is a canned-response onefs.Client. Responses and Errors are
// keyed by the Op* constants; every call is counted so tests can assert
// which operations ran.
type MockClient struct {
	mu sync.Mutex

	// HostName is returned from Host(). Defaults to "mock-cluster".
	HostName string

	// Responses holds the canned response per operation. Missing entries
	// yield the operation's zero-value response.
	Responses map[string]any

	// Errors holds an injected failure per operation.
	Errors map[string]error

	// Zones records the zone argument of the last zone-scoped call per
	// operation; ScopeArg records the last LDAP scope; AllZones records the
	// last allZones argument to ListNetworkPools.
	Zones    map[string]string
	ScopeArg string
	AllZones bool

	calls map[string]int
}

// NewMockClient returns an empty mock with no canned responses.
func NewMockClient() *MockClient {
	return &MockClient{
		HostName:  "mock-cluster",
		Responses: map[string]any{},
		Errors:    map[string]error{},
		Zones:     map[string]string{},
	}
}

// CallCount returns how many times the operation ran.
func (m *MockClient) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// TotalCalls returns the number of remote operations issued overall.
func (m *MockClient) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *MockClient) record(op string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[op]++
	return m.Errors[op]
}

func (m *MockClient) recordZone(op, zone string) error {
	err := m.record(op)
	m.mu.Lock()
	m.Zones[op] = zone
	m.mu.Unlock()
	return err
}

func (m *MockClient) Host() string {
	if m.HostName == "" {
		return "mock-cluster"
	}
	return m.HostName
}

func rawResponse(m *MockClient, op string) map[string]any {
	if resp, ok := m.Responses[op].(map[string]any); ok {
		return resp
	}
	return map[string]any{}
}

func typedResponse[T any](m *MockClient, op string) *T {
	if resp, ok := m.Responses[op].(*T); ok {
		return resp
	}
	return new(T)
}

func (m *MockClient) GetClusterConfig(context.Context) (map[string]any, error) {
	if err := m.record(OpClusterConfig); err != nil {
		return nil, err
	}
	return rawResponse(m, OpClusterConfig), nil
}

func (m *MockClient) GetClusterExternalIPs(context.Context) ([]string, error) {
	if err := m.record(OpClusterExternalIPs); err != nil {
		return nil, err
	}
	ips, _ := m.Responses[OpClusterExternalIPs].([]string)
	return ips, nil
}

func (m *MockClient) GetClusterIdentity(context.Context) (map[string]any, error) {
	if err := m.record(OpClusterIdentity); err != nil {
		return nil, err
	}
	return rawResponse(m, OpClusterIdentity), nil
}

func (m *MockClient) GetClusterOwner(context.Context) (map[string]any, error) {
	if err := m.record(OpClusterOwner); err != nil {
		return nil, err
	}
	return rawResponse(m, OpClusterOwner), nil
}

func (m *MockClient) GetClusterVersion(context.Context) (map[string]any, error) {
	if err := m.record(OpClusterVersion); err != nil {
		return nil, err
	}
	return rawResponse(m, OpClusterVersion), nil
}

func (m *MockClient) GetClusterNodes(context.Context) (map[string]any, error) {
	if err := m.record(OpClusterNodes); err != nil {
		return nil, err
	}
	return rawResponse(m, OpClusterNodes), nil
}

func (m *MockClient) GetClusterEmailSettings(context.Context) (map[string]any, error) {
	if err := m.record(OpClusterEmail); err != nil {
		return nil, err
	}
	return rawResponse(m, OpClusterEmail), nil
}

func (m *MockClient) ListAccessZones(context.Context) (map[string]any, error) {
	if err := m.record(OpAccessZones); err != nil {
		return nil, err
	}
	return rawResponse(m, OpAccessZones), nil
}

func (m *MockClient) GetProvidersSummary(_ context.Context, zone string) (map[string]any, error) {
	if err := m.recordZone(OpProvidersSummary, zone); err != nil {
		return nil, err
	}
	return rawResponse(m, OpProvidersSummary), nil
}

func (m *MockClient) ListAuthUsers(_ context.Context, zone string) (map[string]any, error) {
	if err := m.recordZone(OpAuthUsers, zone); err != nil {
		return nil, err
	}
	return rawResponse(m, OpAuthUsers), nil
}

func (m *MockClient) ListAuthGroups(_ context.Context, zone string) (map[string]any, error) {
	if err := m.recordZone(OpAuthGroups, zone); err != nil {
		return nil, err
	}
	return rawResponse(m, OpAuthGroups), nil
}

func (m *MockClient) ListAuthRoles(_ context.Context, zone string) (*onefs.AuthRolesResponse, error) {
	if err := m.recordZone(OpAuthRoles, zone); err != nil {
		return nil, err
	}
	return typedResponse[onefs.AuthRolesResponse](m, OpAuthRoles), nil
}

func (m *MockClient) ListUserMappingRules(_ context.Context, zone string) (*onefs.UserMappingRulesResponse, error) {
	if err := m.recordZone(OpUserMappingRules, zone); err != nil {
		return nil, err
	}
	return typedResponse[onefs.UserMappingRulesResponse](m, OpUserMappingRules), nil
}

func (m *MockClient) ListLdapProviders(_ context.Context, scope string) (*onefs.LdapProvidersResponse, error) {
	if err := m.record(OpLdapProviders); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.ScopeArg = scope
	m.mu.Unlock()
	return typedResponse[onefs.LdapProvidersResponse](m, OpLdapProviders), nil
}

func (m *MockClient) ListSmbShares(_ context.Context, zone string) (*onefs.SmbSharesResponse, error) {
	if err := m.recordZone(OpSmbShares, zone); err != nil {
		return nil, err
	}
	return typedResponse[onefs.SmbSharesResponse](m, OpSmbShares), nil
}

func (m *MockClient) ListSmbOpenFiles(context.Context) (*onefs.SmbOpenFilesResponse, error) {
	if err := m.record(OpSmbOpenFiles); err != nil {
		return nil, err
	}
	return typedResponse[onefs.SmbOpenFilesResponse](m, OpSmbOpenFiles), nil
}

func (m *MockClient) GetSmbGlobalSettings(context.Context) (map[string]any, error) {
	if err := m.record(OpSmbGlobalSettings); err != nil {
		return nil, err
	}
	return rawResponse(m, OpSmbGlobalSettings), nil
}

func (m *MockClient) ListNfsExports(_ context.Context, zone string) (*onefs.NfsExportsResponse, error) {
	if err := m.recordZone(OpNfsExports, zone); err != nil {
		return nil, err
	}
	return typedResponse[onefs.NfsExportsResponse](m, OpNfsExports), nil
}

func (m *MockClient) ListNfsAliases(_ context.Context, zone string) (*onefs.NfsAliasesResponse, error) {
	if err := m.recordZone(OpNfsAliases, zone); err != nil {
		return nil, err
	}
	return typedResponse[onefs.NfsAliasesResponse](m, OpNfsAliases), nil
}

func (m *MockClient) GetNfsZoneSettings(_ context.Context, zone string) (map[string]any, error) {
	if err := m.recordZone(OpNfsZoneSettings, zone); err != nil {
		return nil, err
	}
	return rawResponse(m, OpNfsZoneSettings), nil
}

func (m *MockClient) GetNfsDefaultSettings(_ context.Context, zone string) (map[string]any, error) {
	if err := m.recordZone(OpNfsDefaultSettings, zone); err != nil {
		return nil, err
	}
	return rawResponse(m, OpNfsDefaultSettings), nil
}

func (m *MockClient) GetNfsGlobalSettings(context.Context) (map[string]any, error) {
	if err := m.record(OpNfsGlobalSettings); err != nil {
		return nil, err
	}
	return rawResponse(m, OpNfsGlobalSettings), nil
}

func (m *MockClient) ListS3Buckets(context.Context) (map[string]any, error) {
	if err := m.record(OpS3Buckets); err != nil {
		return nil, err
	}
	return rawResponse(m, OpS3Buckets), nil
}

func (m *MockClient) ListNtpServers(context.Context) (map[string]any, error) {
	if err := m.record(OpNtpServers); err != nil {
		return nil, err
	}
	return rawResponse(m, OpNtpServers), nil
}

func (m *MockClient) GetSnmpSettings(context.Context) (map[string]any, error) {
	if err := m.record(OpSnmpSettings); err != nil {
		return nil, err
	}
	return rawResponse(m, OpSnmpSettings), nil
}

func (m *MockClient) GetSummaryClients(context.Context) (*onefs.ClientSummaryResponse, error) {
	if err := m.record(OpSummaryClients); err != nil {
		return nil, err
	}
	return typedResponse[onefs.ClientSummaryResponse](m, OpSummaryClients), nil
}

func (m *MockClient) GetSyncReports(context.Context) (*onefs.SyncReportsResponse, error) {
	if err := m.record(OpSyncReports); err != nil {
		return nil, err
	}
	return typedResponse[onefs.SyncReportsResponse](m, OpSyncReports), nil
}

func (m *MockClient) GetSyncTargetReports(context.Context) (*onefs.SyncReportsResponse, error) {
	if err := m.record(OpSyncTargetReports); err != nil {
		return nil, err
	}
	return typedResponse[onefs.SyncReportsResponse](m, OpSyncTargetReports), nil
}

func (m *MockClient) ListSyncPolicies(context.Context) (*onefs.SyncPoliciesResponse, error) {
	if err := m.record(OpSyncPolicies); err != nil {
		return nil, err
	}
	return typedResponse[onefs.SyncPoliciesResponse](m, OpSyncPolicies), nil
}

func (m *MockClient) ListPeerCertificates(context.Context) (*onefs.SyncCertificatesResponse, error) {
	if err := m.record(OpPeerCertificates); err != nil {
		return nil, err
	}
	return typedResponse[onefs.SyncCertificatesResponse](m, OpPeerCertificates), nil
}

func (m *MockClient) ListSyncRules(context.Context) (*onefs.SyncRulesResponse, error) {
	if err := m.record(OpSyncRules); err != nil {
		return nil, err
	}
	return typedResponse[onefs.SyncRulesResponse](m, OpSyncRules), nil
}

func (m *MockClient) GetSyncGlobalSettings(context.Context) (map[string]any, error) {
	if err := m.record(OpSyncGlobalSettings); err != nil {
		return nil, err
	}
	return rawResponse(m, OpSyncGlobalSettings), nil
}

func (m *MockClient) ListNetworkGroupnets(context.Context) (*onefs.NetworkGroupnetsResponse, error) {
	if err := m.record(OpNetworkGroupnets); err != nil {
		return nil, err
	}
	return typedResponse[onefs.NetworkGroupnetsResponse](m, OpNetworkGroupnets), nil
}

func (m *MockClient) ListNetworkPools(_ context.Context, zone string, allZones bool) (*onefs.NetworkPoolsResponse, error) {
	if err := m.recordZone(OpNetworkPools, zone); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.AllZones = allZones
	m.mu.Unlock()
	return typedResponse[onefs.NetworkPoolsResponse](m, OpNetworkPools), nil
}

func (m *MockClient) ListNetworkRules(context.Context) (*onefs.NetworkRulesResponse, error) {
	if err := m.record(OpNetworkRules); err != nil {
		return nil, err
	}
	return typedResponse[onefs.NetworkRulesResponse](m, OpNetworkRules), nil
}

func (m *MockClient) ListNetworkInterfaces(context.Context) (*onefs.NetworkInterfacesResponse, error) {
	if err := m.record(OpNetworkInterfaces); err != nil {
		return nil, err
	}
	return typedResponse[onefs.NetworkInterfacesResponse](m, OpNetworkInterfaces), nil
}

func (m *MockClient) ListNetworkSubnets(context.Context) (*onefs.NetworkSubnetsResponse, error) {
	if err := m.record(OpNetworkSubnets); err != nil {
		return nil, err
	}
	return typedResponse[onefs.NetworkSubnetsResponse](m, OpNetworkSubnets), nil
}

func (m *MockClient) ListNodePools(context.Context) (*onefs.NodePoolsResponse, error) {
	if err := m.record(OpNodePools); err != nil {
		return nil, err
	}
	return typedResponse[onefs.NodePoolsResponse](m, OpNodePools), nil
}

func (m *MockClient) ListStoragepoolTiers(context.Context) (*onefs.StoragepoolTiersResponse, error) {
	if err := m.record(OpStoragepoolTiers); err != nil {
		return nil, err
	}
	return typedResponse[onefs.StoragepoolTiersResponse](m, OpStoragepoolTiers), nil
}

func (m *MockClient) ListServerCertificates(context.Context) (*onefs.ServerCertificatesResponse, error) {
	if err := m.record(OpServerCertificates); err != nil {
		return nil, err
	}
	return typedResponse[onefs.ServerCertificatesResponse](m, OpServerCertificates), nil
}

func (m *MockClient) GetCertificateSettings(context.Context) (map[string]any, error) {
	if err := m.record(OpCertificateSettings); err != nil {
		return nil, err
	}
	return rawResponse(m, OpCertificateSettings), nil
}

func (m *MockClient) GetSupportAssistSettings(context.Context) (map[string]any, error) {
	if err := m.record(OpSupportAssist); err != nil {
		return nil, err
	}
	return rawResponse(m, OpSupportAssist), nil
}

// Compile-time interface check.
var _ onefs.Client = (*MockClient)(nil)
