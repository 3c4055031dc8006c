// ABOUTME: render command enriches an HTML file or stdin and writes the result
// ABOUTME: With --watch the file is re-rendered every time it changes on disk

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultWatchDelay = 200 * time.Millisecond

func newRenderCmd(v *viper.Viper) *cobra.Command {
	var (
		fragment   bool
		output     string
		quiet      bool
		watch      bool
		watchDelay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Inject scripture into tagged elements of an HTML document",
		Long: `Reads an HTML document from a file, or from stdin when no file or "-" is
given, fetches every tagged reference and writes the enriched document.

Examples:
  scripture-tags render page.html -o out.html
  scripture-tags render --fragment snippet.html
  scripture-tags render page.html -o out.html --watch
  cat page.html | scripture-tags render --class verse`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && (len(args) == 0 || args[0] == "-" || output == "") {
				return errors.New("--watch needs an input file and --output")
			}

			client, err := newClient(cmd, v)
			if err != nil {
				return err
			}
			defer client.Close()

			enrich := client.Enrich
			if fragment {
				enrich = client.EnrichFragment
			}

			renderOnce := func(ctx context.Context) error {
				input, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				result, err := enrich(ctx, input)
				if err != nil {
					return err
				}
				if err := writeOutput(cmd, output, result.HTML); err != nil {
					return err
				}
				if !quiet {
					fmt.Fprintf(cmd.ErrOrStderr(), "elements: %d, abandoned: %d, fetched: %d, skipped: %d\n",
						result.Elements, result.Abandoned, result.Fetched, result.Skipped)
				}
				return nil
			}

			if err := renderOnce(cmd.Context()); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			return watchFile(cmd.Context(), args[0], watchDelay, func(ctx context.Context) {
				if err := renderOnce(ctx); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "render failed: %v\n", err)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&fragment, "fragment", false, "treat input as a fragment and print only the body contents")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the summary line")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render whenever the input file changes")
	cmd.Flags().DurationVar(&watchDelay, "watch-delay", defaultWatchDelay, "quiet period before a change is rendered")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeOutput(cmd *cobra.Command, output, html string) error {
	if output == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), html)
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if _, err := io.WriteString(f, html); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
