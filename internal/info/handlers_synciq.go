package info

import (
	"context"
	"strconv"

	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

func fetchSynciqReports(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.GetSyncReports(ctx)
	if err != nil {
		return nil, newFetchError(CategorySynciqReports, client.Host(), err)
	}
	return projectSyncReports(resp), nil
}

func fetchSynciqTargetReports(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.GetSyncTargetReports(ctx)
	if err != nil {
		return nil, newFetchError(CategorySynciqTargetReports, client.Host(), err)
	}
	return projectSyncReports(resp), nil
}

// projectSyncReports reduces a report listing to id and policy name, keeping
// the source order.
func projectSyncReports(resp *onefs.SyncReportsResponse) []map[string]any {
	reports := make([]map[string]any, 0, len(resp.Reports))
	for _, report := range resp.Reports {
		reports = append(reports, map[string]any{
			"id":   report.ID,
			"name": report.PolicyName,
		})
	}
	return reports
}

func fetchSynciqPolicies(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.ListSyncPolicies(ctx)
	if err != nil {
		return nil, newFetchError(CategorySynciqPolicies, client.Host(), err)
	}
	policies := make([]map[string]any, 0, len(resp.Policies))
	for _, policy := range resp.Policies {
		policies = append(policies, map[string]any{
			"name":             policy.Name,
			"id":               policy.ID,
			"source_root_path": policy.SourceRootPath,
			"target_path":      policy.TargetPath,
			"action":           policy.Action,
			"schedule":         policy.Schedule,
			"enabled":          policy.Enabled,
		})
	}
	return policies, nil
}

func fetchSynciqTargetClusterCertificates(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.ListPeerCertificates(ctx)
	if err != nil {
		return nil, newFetchError(CategorySynciqTargetClusterCertificates, client.Host(), err)
	}
	certificates := make([]map[string]any, 0, len(resp.Certificates))
	for _, certificate := range resp.Certificates {
		certificates = append(certificates, map[string]any{
			"name": certificate.Name,
			"id":   certificate.ID,
		})
	}
	return certificates, nil
}

func fetchSynciqPerformanceRules(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	resp, err := client.ListSyncRules(ctx)
	if err != nil {
		return nil, newFetchError(CategorySynciqPerformanceRules, client.Host(), err)
	}
	rules := make([]map[string]any, 0, len(resp.Rules))
	for _, rule := range resp.Rules {
		rules = append(rules, map[string]any{
			"id":       rule.ID,
			"schedule": rule.Schedule,
			"enabled":  rule.Enabled,
			"type":     string(rule.Type),
			"limit":    syncRuleLimitWithUnit(rule.Limit, rule.Type),
		})
	}
	return rules, nil
}

func fetchSynciqGlobalSettings(ctx context.Context, client onefs.Client, _ *RequestContext) (any, error) {
	settings, err := client.GetSyncGlobalSettings(ctx)
	if err != nil {
		return nil, newFetchError(CategorySynciqGlobalSettings, client.Host(), err)
	}
	return settings, nil
}

// syncRuleLimitWithUnit renders a performance rule limit with the unit its
// rule type implies: bandwidth in kb/s, cpu and worker as a percentage,
// file_count in files/sec.
func syncRuleLimitWithUnit(limit int64, ruleType onefs.SyncRuleType) string {
	var unit string
	switch ruleType {
	case onefs.SyncRuleBandwidth:
		unit = "kb/s"
	case onefs.SyncRuleCPU, onefs.SyncRuleWorker:
		unit = "%"
	case onefs.SyncRuleFileCount:
		unit = "files/sec"
	}
	return strconv.FormatInt(limit, 10) + unit
}
