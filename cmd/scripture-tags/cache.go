// ABOUTME: cache command inspects or empties the configured passage cache
// ABOUTME: Most useful with --cache sqlite, where entries persist between runs

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCacheCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the passage cache",
		Long: `Works on the backend chosen with --cache and --cache-path.

Examples:
  scripture-tags --cache sqlite cache stats
  scripture-tags --cache sqlite --cache-path ~/.scripture.db cache clear`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, v)
			if err != nil {
				return err
			}
			defer client.Close()

			stats, err := client.CacheStats()
			if err != nil {
				return err
			}
			if stats == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no cache statistics available")
				return nil
			}

			keys := make([]string, 0, len(stats))
			for k := range stats {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", k, stats[k])
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached passage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, v)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.ClearCache(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "cache cleared")
			return nil
		},
	})

	return cmd
}
