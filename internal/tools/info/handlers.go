package infotools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/giantswarm/mcp-powerscale/internal/info"
	"github.com/giantswarm/mcp-powerscale/internal/server"
)

// handleGatherInfo handles powerscale_info invocations
func handleGatherInfo(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	subsetArg, ok := args["gatherSubset"].(string)
	if !ok || strings.TrimSpace(subsetArg) == "" {
		return mcp.NewToolResultError("gatherSubset is required"), nil
	}

	params := info.Params{
		GatherSubset: splitSubset(subsetArg),
	}
	if zone, ok := args["accessZone"].(string); ok {
		params.AccessZone = zone
	}
	if all, ok := args["includeAllAccessZones"].(bool); ok {
		params.IncludeAllAccessZones = all
	}
	if scope, ok := args["scope"].(string); ok {
		params.Scope = scope
	}

	report, err := sc.Engine().Gather(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(formatGatherError(err)), nil
	}

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal report: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleListCategories handles powerscale_info_categories invocations
func handleListCategories(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(categoryNames(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal categories: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// splitSubset parses the comma-separated gatherSubset argument.
func splitSubset(raw string) []string {
	parts := strings.Split(raw, ",")
	subset := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			subset = append(subset, trimmed)
		}
	}
	return subset
}

var titleCaser = cases.Title(language.English)

// formatGatherError renders engine errors for the MCP client. Fetch
// failures lead with a human-readable category name.
func formatGatherError(err error) string {
	var fetchErr *info.FetchError
	if errors.As(err, &fetchErr) {
		category := titleCaser.String(strings.ReplaceAll(fetchErr.Category.String(), "_", " "))
		return fmt.Sprintf("Gathering %s from cluster %s failed: %v",
			category, fetchErr.Host, fetchErr.Err)
	}

	var validationErr *info.ValidationError
	if errors.As(err, &validationErr) {
		return "Invalid request: " + validationErr.Msg
	}

	return fmt.Sprintf("Failed to gather info: %v", err)
}
