package info

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-powerscale/internal/info/infotest"
	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

func TestFetchSmbSharesProjection(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpSmbShares] = &onefs.SmbSharesResponse{
		Shares: []onefs.SmbShare{
			{ID: "finance", Name: "finance"},
			{ID: "scratch", Name: "scratch"},
		},
	}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"smb_shares"}, AccessZone: "tenant-a"})

	value, err := fetchSmbShares(context.Background(), mock, rc)
	require.NoError(t, err)

	assert.Equal(t, []map[string]any{
		{"id": "finance", "name": "finance"},
		{"id": "scratch", "name": "scratch"},
	}, value)
	assert.Equal(t, "tenant-a", mock.Zones[infotest.OpSmbShares])
}

func TestFetchNfsExportsProjection(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpNfsExports] = &onefs.NfsExportsResponse{
		Exports: []onefs.NfsExport{
			{ID: 1, Paths: []string{"/ifs/data"}},
			{ID: 2, Paths: []string{"/ifs/home", "/ifs/projects"}},
		},
	}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"nfs_exports"}})

	value, err := fetchNfsExports(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{
		{"id": 1, "paths": []string{"/ifs/data"}},
		{"id": 2, "paths": []string{"/ifs/home", "/ifs/projects"}},
	}, value)
}

func TestFetchNfsAliasesNilListYieldsDefault(t *testing.T) {
	mock := infotest.NewMockClient()
	rc := mustRequestContext(t, Params{GatherSubset: []string{"nfs_aliases"}})

	value, err := fetchNfsAliases(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, []any{}, value)
}

func TestFetchNfsZoneSettingsInjectsZone(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpNfsZoneSettings] = map[string]any{
		"nfsv4_domain": "example.com",
	}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"nfs_zone_settings"}, AccessZone: "tenant-a"})

	value, err := fetchNfsZoneSettings(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"nfsv4_domain": "example.com",
		"zone":         "tenant-a",
	}, value)

	// The client's response map must stay untouched.
	assert.NotContains(t, mock.Responses[infotest.OpNfsZoneSettings], "zone")
}

func TestFetchNfsDefaultSettingsInjectsZone(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpNfsDefaultSettings] = map[string]any{
		"map_root": map[string]any{"enabled": true},
	}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"nfs_default_settings"}})

	value, err := fetchNfsDefaultSettings(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"map_root": map[string]any{"enabled": true},
		"zone":     DefaultAccessZone,
	}, value)
}

func TestFetchGlobalSettingsPassthrough(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpNfsGlobalSettings] = map[string]any{"service": true}
	mock.Responses[infotest.OpSmbGlobalSettings] = map[string]any{"service": false}
	mock.Responses[infotest.OpSnmpSettings] = map[string]any{"snmp_v3_access": true}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"nfs_global_settings"}})

	value, err := fetchNfsGlobalSettings(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"service": true}, value)

	value, err = fetchSmbGlobalSettings(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"service": false}, value)

	value, err = fetchSnmpSettings(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"snmp_v3_access": true}, value)
}

func TestFetchSmbOpenFilesPassthrough(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpSmbOpenFiles] = &onefs.SmbOpenFilesResponse{
		OpenFiles: []map[string]any{{"id": float64(42), "file": "C:\\ifs\\data\\report.xlsx"}},
	}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"smb_files"}})

	value, err := fetchSmbOpenFiles(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"id": float64(42), "file": "C:\\ifs\\data\\report.xlsx"}}, value)
}
