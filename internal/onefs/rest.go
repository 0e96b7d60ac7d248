package onefs

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// Defaults for the REST client configuration.
const (
	DefaultPort    = 8080
	DefaultTimeout = 120 * time.Second
)

// ClientConfig holds configuration for the OneFS REST client.
type ClientConfig struct {
	// Host is the cluster management host, with or without a scheme. A port
	// in the host wins over the Port field.
	Host string

	// Port is the platform API port. Defaults to 8080.
	Port int

	// Username and Password authenticate the API session.
	Username string
	Password string

	// VerifySSL controls TLS certificate verification. Clusters commonly run
	// self-signed management certificates, so this is an explicit choice.
	VerifySSL bool

	// Timeout bounds each HTTP request. Defaults to 120s.
	Timeout time.Duration

	// Logger receives client-level debug logging. Defaults to slog.Default.
	Logger *slog.Logger
}

// RESTClient implements Client over the OneFS platform REST API.
type RESTClient struct {
	baseURL  string
	host     string
	username string
	password string

	httpClient *http.Client
	logger     *slog.Logger

	session sessionState

	// sessionGroup collapses concurrent session establishment into a single
	// POST /session call.
	sessionGroup singleflight.Group
}

// NewRESTClient creates a OneFS REST client from the given configuration.
// No request is issued until the first operation; session establishment is
// lazy.
func NewRESTClient(config *ClientConfig) (*RESTClient, error) {
	if config == nil {
		return nil, fmt.Errorf("client configuration is required")
	}
	if config.Host == "" {
		return nil, fmt.Errorf("cluster host is required")
	}
	if config.Username == "" || config.Password == "" {
		return nil, fmt.Errorf("cluster credentials are required")
	}

	port := config.Port
	if port == 0 {
		port = DefaultPort
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	host := strings.TrimSuffix(config.Host, "/")
	host = strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://")
	baseURL := host
	if !strings.Contains(host, ":") || strings.Contains(host, "::") {
		// IPv6 literals need brackets before a port can be appended.
		if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
			baseURL = fmt.Sprintf("[%s]", host)
		}
		baseURL = fmt.Sprintf("%s:%d", baseURL, port)
	}
	baseURL = "https://" + baseURL

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !config.VerifySSL, //nolint:gosec // operator opt-out for self-signed management certs
		},
	}

	return &RESTClient{
		baseURL:  baseURL,
		host:     host,
		username: config.Username,
		password: config.Password,
		httpClient: &http.Client{
			Transport: transport,
			Jar:       jar,
			Timeout:   timeout,
		},
		logger: logger,
	}, nil
}

// Host returns the configured cluster host.
func (c *RESTClient) Host() string {
	return c.host
}

// APIError is a failure response from the platform API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("OneFS API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("OneFS API error: status %d: %s", e.StatusCode, e.Message)
}

// apiErrorBody is the error envelope the platform API returns.
type apiErrorBody struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// get issues an authenticated GET and decodes the JSON response into out.
// A 401 triggers exactly one session re-establishment and retry; any other
// failure is surfaced immediately, with no retries at this layer.
func (c *RESTClient) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	status, body, err := c.do(ctx, path, query)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		c.invalidateSession()
		if err := c.ensureSession(ctx); err != nil {
			return err
		}
		status, body, err = c.do(ctx, path, query)
		if err != nil {
			return err
		}
	}
	if status != http.StatusOK {
		return newAPIError(status, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *RESTClient) do(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	c.applySessionHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("calling %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading %s response: %w", path, err)
	}

	c.logger.Debug("platform API call",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)
	return resp.StatusCode, body, nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		apiErr.Message = parsed.Errors[0].Message
	}
	return apiErr
}

// settingsEnvelope is the {"settings": {...}} wrapper most settings
// endpoints use.
type settingsEnvelope struct {
	Settings map[string]any `json:"settings"`
}

// getSettings fetches a settings endpoint and unwraps its envelope.
func (c *RESTClient) getSettings(ctx context.Context, path string, query url.Values) (map[string]any, error) {
	var envelope settingsEnvelope
	if err := c.get(ctx, path, query, &envelope); err != nil {
		return nil, err
	}
	if envelope.Settings == nil {
		return map[string]any{}, nil
	}
	return envelope.Settings, nil
}

// getRaw fetches an endpoint whose whole response body is passed through.
func (c *RESTClient) getRaw(ctx context.Context, path string, query url.Values) (map[string]any, error) {
	raw := map[string]any{}
	if err := c.get(ctx, path, query, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func zoneQuery(zone string) url.Values {
	return url.Values{"zone": []string{zone}}
}

// --- ClusterAPI ---

func (c *RESTClient) GetClusterConfig(ctx context.Context) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/3/cluster/config", nil)
}

func (c *RESTClient) GetClusterExternalIPs(ctx context.Context) ([]string, error) {
	var ips []string
	if err := c.get(ctx, "/platform/1/cluster/external-ips", nil, &ips); err != nil {
		return nil, err
	}
	return ips, nil
}

func (c *RESTClient) GetClusterIdentity(ctx context.Context) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/3/cluster/identity", nil)
}

func (c *RESTClient) GetClusterOwner(ctx context.Context) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/1/cluster/owner", nil)
}

func (c *RESTClient) GetClusterVersion(ctx context.Context) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/3/cluster/version", nil)
}

func (c *RESTClient) GetClusterNodes(ctx context.Context) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/3/cluster/nodes", nil)
}

func (c *RESTClient) GetClusterEmailSettings(ctx context.Context) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/1/cluster/email", nil)
}

// --- ZonesAPI ---

func (c *RESTClient) ListAccessZones(ctx context.Context) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/1/zones", nil)
}

// --- AuthAPI ---

func (c *RESTClient) GetProvidersSummary(ctx context.Context, zone string) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/1/auth/providers/summary", zoneQuery(zone))
}

func (c *RESTClient) ListAuthUsers(ctx context.Context, zone string) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/1/auth/users", zoneQuery(zone))
}

func (c *RESTClient) ListAuthGroups(ctx context.Context, zone string) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/1/auth/groups", zoneQuery(zone))
}

func (c *RESTClient) ListAuthRoles(ctx context.Context, zone string) (*AuthRolesResponse, error) {
	resp := &AuthRolesResponse{}
	if err := c.get(ctx, "/platform/1/auth/roles", zoneQuery(zone), resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListUserMappingRules(ctx context.Context, zone string) (*UserMappingRulesResponse, error) {
	resp := &UserMappingRulesResponse{}
	if err := c.get(ctx, "/platform/1/auth/mapping/users/rules", zoneQuery(zone), resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListLdapProviders(ctx context.Context, scope string) (*LdapProvidersResponse, error) {
	resp := &LdapProvidersResponse{}
	query := url.Values{"scope": []string{scope}}
	if err := c.get(ctx, "/platform/1/auth/providers/ldap", query, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// --- ProtocolsAPI ---

func (c *RESTClient) ListSmbShares(ctx context.Context, zone string) (*SmbSharesResponse, error) {
	resp := &SmbSharesResponse{}
	if err := c.get(ctx, "/platform/1/protocols/smb/shares", zoneQuery(zone), resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListSmbOpenFiles(ctx context.Context) (*SmbOpenFilesResponse, error) {
	resp := &SmbOpenFilesResponse{}
	if err := c.get(ctx, "/platform/1/protocols/smb/openfiles", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) GetSmbGlobalSettings(ctx context.Context) (map[string]any, error) {
	return c.getSettings(ctx, "/platform/1/protocols/smb/settings/global", nil)
}

func (c *RESTClient) ListNfsExports(ctx context.Context, zone string) (*NfsExportsResponse, error) {
	resp := &NfsExportsResponse{}
	if err := c.get(ctx, "/platform/2/protocols/nfs/exports", zoneQuery(zone), resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListNfsAliases(ctx context.Context, zone string) (*NfsAliasesResponse, error) {
	resp := &NfsAliasesResponse{}
	query := zoneQuery(zone)
	query.Set("check", "true")
	if err := c.get(ctx, "/platform/2/protocols/nfs/aliases", query, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) GetNfsZoneSettings(ctx context.Context, zone string) (map[string]any, error) {
	return c.getSettings(ctx, "/platform/3/protocols/nfs/settings/zone", zoneQuery(zone))
}

func (c *RESTClient) GetNfsDefaultSettings(ctx context.Context, zone string) (map[string]any, error) {
	return c.getSettings(ctx, "/platform/2/protocols/nfs/settings/export", zoneQuery(zone))
}

func (c *RESTClient) GetNfsGlobalSettings(ctx context.Context) (map[string]any, error) {
	return c.getSettings(ctx, "/platform/3/protocols/nfs/settings/global", nil)
}

func (c *RESTClient) ListS3Buckets(ctx context.Context) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/10/protocols/s3/buckets", nil)
}

func (c *RESTClient) ListNtpServers(ctx context.Context) (map[string]any, error) {
	return c.getRaw(ctx, "/platform/3/protocols/ntp/servers", nil)
}

func (c *RESTClient) GetSnmpSettings(ctx context.Context) (map[string]any, error) {
	return c.getSettings(ctx, "/platform/11/protocols/snmp/settings", nil)
}

// --- StatisticsAPI ---

func (c *RESTClient) GetSummaryClients(ctx context.Context) (*ClientSummaryResponse, error) {
	resp := &ClientSummaryResponse{}
	if err := c.get(ctx, "/platform/1/statistics/summary/client", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// --- SyncAPI ---

func (c *RESTClient) GetSyncReports(ctx context.Context) (*SyncReportsResponse, error) {
	resp := &SyncReportsResponse{}
	if err := c.get(ctx, "/platform/1/sync/reports", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) GetSyncTargetReports(ctx context.Context) (*SyncReportsResponse, error) {
	resp := &SyncReportsResponse{}
	if err := c.get(ctx, "/platform/1/sync/target/reports", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListSyncPolicies(ctx context.Context) (*SyncPoliciesResponse, error) {
	resp := &SyncPoliciesResponse{}
	if err := c.get(ctx, "/platform/1/sync/policies", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListPeerCertificates(ctx context.Context) (*SyncCertificatesResponse, error) {
	resp := &SyncCertificatesResponse{}
	if err := c.get(ctx, "/platform/7/sync/certificates/peer", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListSyncRules(ctx context.Context) (*SyncRulesResponse, error) {
	resp := &SyncRulesResponse{}
	if err := c.get(ctx, "/platform/3/sync/rules", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) GetSyncGlobalSettings(ctx context.Context) (map[string]any, error) {
	return c.getSettings(ctx, "/platform/1/sync/settings", nil)
}

// --- NetworkAPI ---

func (c *RESTClient) ListNetworkGroupnets(ctx context.Context) (*NetworkGroupnetsResponse, error) {
	resp := &NetworkGroupnetsResponse{}
	if err := c.get(ctx, "/platform/3/network/groupnets", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListNetworkPools(ctx context.Context, zone string, allZones bool) (*NetworkPoolsResponse, error) {
	resp := &NetworkPoolsResponse{}
	var query url.Values
	if !allZones {
		query = url.Values{"access_zone": []string{zone}}
	}
	if err := c.get(ctx, "/platform/4/network/pools", query, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListNetworkRules(ctx context.Context) (*NetworkRulesResponse, error) {
	resp := &NetworkRulesResponse{}
	if err := c.get(ctx, "/platform/3/network/rules", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListNetworkInterfaces(ctx context.Context) (*NetworkInterfacesResponse, error) {
	resp := &NetworkInterfacesResponse{}
	if err := c.get(ctx, "/platform/3/network/interfaces", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListNetworkSubnets(ctx context.Context) (*NetworkSubnetsResponse, error) {
	resp := &NetworkSubnetsResponse{}
	if err := c.get(ctx, "/platform/3/network/subnets", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// --- StoragepoolAPI ---

func (c *RESTClient) ListNodePools(ctx context.Context) (*NodePoolsResponse, error) {
	resp := &NodePoolsResponse{}
	if err := c.get(ctx, "/platform/1/storagepool/nodepools", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListStoragepoolTiers(ctx context.Context) (*StoragepoolTiersResponse, error) {
	resp := &StoragepoolTiersResponse{}
	if err := c.get(ctx, "/platform/1/storagepool/tiers", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// --- CertificateAPI ---

func (c *RESTClient) ListServerCertificates(ctx context.Context) (*ServerCertificatesResponse, error) {
	resp := &ServerCertificatesResponse{}
	if err := c.get(ctx, "/platform/4/certificate/server", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) GetCertificateSettings(ctx context.Context) (map[string]any, error) {
	return c.getSettings(ctx, "/platform/4/certificate/settings", nil)
}

// --- SupportAssistAPI ---

func (c *RESTClient) GetSupportAssistSettings(ctx context.Context) (map[string]any, error) {
	return c.getSettings(ctx, "/platform/12/supportassist/settings", nil)
}

// Compile-time interface check.
var _ Client = (*RESTClient)(nil)
