// Package infotools exposes the cluster information gathering engine as MCP tools.
package infotools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-powerscale/internal/info"
	"github.com/giantswarm/mcp-powerscale/internal/server"
	"github.com/giantswarm/mcp-powerscale/internal/tools"
)

// RegisterInfoTools registers the PowerScale info tools with the MCP server
func RegisterInfoTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// powerscale_info tool
	infoTool := mcp.NewTool("powerscale_info",
		mcp.WithDescription("Gather read-only configuration and state from a PowerScale cluster. "+
			"Returns one JSON document with every category key present; unrequested categories hold empty defaults."),
		mcp.WithString("gatherSubset",
			mcp.Required(),
			mcp.Description("Comma-separated list of categories to gather. Valid categories: "+
				strings.Join(categoryNames(), ", ")),
		),
		mcp.WithString("accessZone",
			mcp.Description("Access zone to scope zone-aware categories to (optional, default: System)"),
		),
		mcp.WithBoolean("includeAllAccessZones",
			mcp.Description("Gather network pools across all access zones (optional, mutually exclusive with a non-System accessZone)"),
		),
		mcp.WithString("scope",
			mcp.Description("Provider scope for LDAP queries: effective, user, or default (optional, default: effective)"),
		),
	)

	s.AddTool(infoTool, tools.WrapWithInstrumentation("powerscale_info", handleGatherInfo, sc))

	// powerscale_info_categories tool
	categoriesTool := mcp.NewTool("powerscale_info_categories",
		mcp.WithDescription("List the categories powerscale_info can gather"),
	)

	s.AddTool(categoriesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListCategories(ctx, request, sc)
	})

	return nil
}

// categoryNames returns all registry categories as strings.
func categoryNames() []string {
	categories := info.AllCategories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.String())
	}
	return names
}
