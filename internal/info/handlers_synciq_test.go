package info

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-powerscale/internal/info/infotest"
	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

func TestSyncRuleLimitWithUnit(t *testing.T) {
	tests := []struct {
		limit    int64
		ruleType onefs.SyncRuleType
		want     string
	}{
		{10, onefs.SyncRuleBandwidth, "10kb/s"},
		{5, onefs.SyncRuleCPU, "5%"},
		{3, onefs.SyncRuleFileCount, "3files/sec"},
		{8, onefs.SyncRuleWorker, "8%"},
	}

	for _, tt := range tests {
		t.Run(string(tt.ruleType), func(t *testing.T) {
			assert.Equal(t, tt.want, syncRuleLimitWithUnit(tt.limit, tt.ruleType))
		})
	}
}

func TestFetchSynciqPerformanceRules(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpSyncRules] = &onefs.SyncRulesResponse{
		Rules: []onefs.SyncRule{
			{ID: "bw-0", Schedule: map[string]any{"begin": "00:00"}, Enabled: true, Type: onefs.SyncRuleBandwidth, Limit: 10},
			{ID: "cpu-0", Enabled: false, Type: onefs.SyncRuleCPU, Limit: 5},
		},
	}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"synciq_performance_rules"}})

	value, err := fetchSynciqPerformanceRules(context.Background(), mock, rc)
	require.NoError(t, err)

	assert.Equal(t, []map[string]any{
		{
			"id":       "bw-0",
			"schedule": map[string]any{"begin": "00:00"},
			"enabled":  true,
			"type":     "bandwidth",
			"limit":    "10kb/s",
		},
		{
			"id":       "cpu-0",
			"schedule": nil,
			"enabled":  false,
			"type":     "cpu",
			"limit":    "5%",
		},
	}, value)
}

func TestFetchSynciqReportsProjection(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpSyncReports] = &onefs.SyncReportsResponse{
		Total: 2,
		Reports: []onefs.SyncReport{
			{ID: "r1", PolicyName: "mirror-a"},
			{ID: "r2", PolicyName: "mirror-b"},
		},
	}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"synciq_reports"}})

	value, err := fetchSynciqReports(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{
		{"id": "r1", "name": "mirror-a"},
		{"id": "r2", "name": "mirror-b"},
	}, value)
}

func TestFetchSynciqPoliciesProjection(t *testing.T) {
	mock := infotest.NewMockClient()
	mock.Responses[infotest.OpSyncPolicies] = &onefs.SyncPoliciesResponse{
		Policies: []onefs.SyncPolicy{{
			ID:             "p1",
			Name:           "nightly",
			SourceRootPath: "/ifs/data",
			TargetPath:     "/ifs/mirror",
			Action:         "sync",
			Schedule:       "every day at 01:00",
			Enabled:        true,
		}},
	}
	rc := mustRequestContext(t, Params{GatherSubset: []string{"synciq_policies"}})

	value, err := fetchSynciqPolicies(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{
		"id":               "p1",
		"name":             "nightly",
		"source_root_path": "/ifs/data",
		"target_path":      "/ifs/mirror",
		"action":           "sync",
		"schedule":         "every day at 01:00",
		"enabled":          true,
	}}, value)
}

func TestFetchSynciqEmptyListings(t *testing.T) {
	// A well-formed response with no elements yields the empty shape, not
	// an error.
	mock := infotest.NewMockClient()
	rc := mustRequestContext(t, Params{GatherSubset: []string{"synciq_target_cluster_certificates"}})

	value, err := fetchSynciqTargetClusterCertificates(context.Background(), mock, rc)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{}, value)
}
