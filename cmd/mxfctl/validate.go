package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Netflix/photon-sub001/pkg/mxf"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Parse files in parallel and report their diagnostics",
		Long: `The validate command runs every processing step on each file: random
index pack, partition packs, header metadata, reference resolution and index
table segments. Files are processed in parallel and independently; the
command fails if any file is fatally invalid.

Example:
  mxfctl validate video.mxf audio.mxf
  mxfctl validate *.mxf --concurrency 8 --strict
  mxfctl validate video.mxf --json --metrics-textfile /var/lib/node_exporter/mxf.prom`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args)
		},
	}
	return cmd
}

func runValidate(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results := mxf.ParseMany(ctx, args, options())

	invalid := 0
	for _, r := range results {
		if r.State != mxf.StateValid {
			invalid++
		}
	}

	if jsonOut {
		type row struct {
			mxf.Result
			Valid bool   `json:"valid"`
			Error string `json:"error,omitempty"`
		}
		rows := make([]row, len(results))
		for i, r := range results {
			rows[i] = row{Result: r, Valid: r.State == mxf.StateValid}
			if r.Err != nil {
				rows[i].Error = r.Err.Error()
			}
		}
		if err := printJSON(rows); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			mark := "✓"
			if r.State != mxf.StateValid {
				mark = "✗"
			}
			s := r.Report.Summary
			printInfo("%s %s: %s (fatal %d, non-fatal %d, warnings %d)\n",
				mark, r.Path, r.State, s.Fatal, s.NonFatal, s.Warnings)
			if r.Err != nil {
				printInfo("    %v\n", r.Err)
			}
			if verbose && len(r.Report.Diagnostics()) > 0 {
				printInfo("%s", r.Report.FormatTextCompact())
			}
		}
		printInfo("\n%d of %d files valid\n", len(results)-invalid, len(results))
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files are invalid", invalid, len(results))
	}
	return nil
}
