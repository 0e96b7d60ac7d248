package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/mcp-powerscale/internal/info"
	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

// newGatherCmd creates the Cobra command for one-shot info gathering.
func newGatherCmd() *cobra.Command {
	var (
		cluster               ClusterConfig
		gatherSubset          []string
		accessZone            string
		includeAllAccessZones bool
		scope                 string
		debug                 bool
	)

	cmd := &cobra.Command{
		Use:   "gather",
		Short: "Gather PowerScale cluster information once and print it as JSON",
		Long: `Gather the requested categories from a PowerScale cluster and print
the consolidated report as JSON on stdout.

Every category key is present in the report; categories that were not
requested hold their empty defaults. Examples:

  mcp-powerscale gather --gather-subset attributes,nodes
  mcp-powerscale gather --gather-subset smb_shares --access-zone tenant-a
  mcp-powerscale gather --gather-subset network_pools --include-all-access-zones`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(debug)

			serverConfig, err := buildServerConfig(cluster, rootCmd.Version)
			if err != nil {
				return err
			}

			clientConfig := serverConfig.ClientConfig()
			clientConfig.Logger = logger
			client, err := onefs.NewRESTClient(clientConfig)
			if err != nil {
				return fmt.Errorf("failed to create OneFS client: %w", err)
			}

			engine := info.NewEngine(client, info.WithLogger(logger))
			report, err := engine.Gather(cmd.Context(), info.Params{
				GatherSubset:          gatherSubset,
				AccessZone:            accessZone,
				IncludeAllAccessZones: includeAllAccessZones,
				Scope:                 scope,
			})
			if err != nil {
				return err
			}

			jsonData, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal report: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}

	// Cluster connection flags
	cmd.Flags().StringVar(&cluster.Host, "host", "", "PowerScale cluster hostname or IP (can also be set via ONEFS_HOST)")
	cmd.Flags().IntVar(&cluster.Port, "port", 0, fmt.Sprintf("PowerScale API port (default: %d, can also be set via ONEFS_PORT)", onefs.DefaultPort))
	cmd.Flags().StringVar(&cluster.Username, "username", "", "PowerScale API username (can also be set via ONEFS_USERNAME)")
	cmd.Flags().StringVar(&cluster.Password, "password", "", "PowerScale API password (can also be set via ONEFS_PASSWORD)")
	cmd.Flags().BoolVar(&cluster.VerifySSL, "verify-ssl", false, "Verify the cluster's TLS certificate (can also be set via ONEFS_VERIFY_SSL)")
	cmd.Flags().DurationVar(&cluster.Timeout, "timeout", 0, "PowerScale API request timeout (default: 120s)")
	cmd.Flags().StringVar(&cluster.ConfigFile, "config", "", "Path to a YAML config file with connection settings")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging (default: false)")

	// Gather flags
	cmd.Flags().StringSliceVar(&gatherSubset, "gather-subset", nil, "Categories to gather (required, repeatable or comma-separated)")
	cmd.Flags().StringVar(&accessZone, "access-zone", "", fmt.Sprintf("Access zone to scope zone-aware categories to (default: %s)", info.DefaultAccessZone))
	cmd.Flags().BoolVar(&includeAllAccessZones, "include-all-access-zones", false, "Gather network pools across all access zones")
	cmd.Flags().StringVar(&scope, "scope", "", "Provider scope for LDAP queries: effective, user, or default")

	_ = cmd.MarkFlagRequired("gather-subset")

	return cmd
}
