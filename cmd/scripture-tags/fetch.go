// ABOUTME: fetch command looks up one reference and prints it as text, markup or JSON

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fetchFormats = []string{"plain", "inline", "block", "json"}

func newFetchCmd(v *viper.Viper) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fetch <reference>",
		Short: "Look up a single reference",
		Long: `Fetches one reference in the configured translation. Words are joined, so
quoting is optional.

Examples:
  scripture-tags fetch John 3:16
  scripture-tags fetch -t web "Psalm 23:1-3" --format json`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range fetchFormats {
				if f == format {
					return nil
				}
			}
			return fmt.Errorf("invalid format %q, expected one of: %s", format, strings.Join(fetchFormats, ", "))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd, v)
			if err != nil {
				return err
			}
			defer client.Close()

			ref := strings.Join(args, " ")
			translation := v.GetString(keyTranslation)

			if format == "json" {
				passages, err := client.Fetch(cmd.Context(), translation, ref)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(passages)
			}

			rendered, err := client.Render(cmd.Context(), translation, ref, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "plain", "output format: "+strings.Join(fetchFormats, ", "))
	return cmd
}
