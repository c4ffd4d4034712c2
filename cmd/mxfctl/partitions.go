package main

import (
	"context"
	"slices"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPartitionsCmd())
}

func newPartitionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partitions <file>",
		Short: "List the partitions of a file",
		Long: `The partitions command lists every partition named by the random index
pack with its partition pack, whether an EssenceContainerData set references
it, and the number of index table segments it carries.

Example:
  mxfctl partitions video.mxf
  mxfctl partitions video.mxf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPartitions(cmd.Context(), args)
		},
	}
	return cmd
}

type partitionRow struct {
	Index           int    `json:"index"`
	Start           int64  `json:"start"`
	End             int64  `json:"end"`
	Kind            string `json:"kind"`
	Status          string `json:"status"`
	BodySID         uint32 `json:"body_sid"`
	IndexSID        uint32 `json:"index_sid"`
	HeaderByteCount uint64 `json:"header_byte_count"`
	IndexByteCount  uint64 `json:"index_byte_count"`
	Referenced      bool   `json:"referenced"`
	IndexSegments   int    `json:"index_segments"`
}

func runPartitions(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f, err := openFile(ctx, args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	layout, err := f.Layout(ctx)
	if err != nil {
		return err
	}
	packs, _ := f.PartitionPacks(ctx)
	// Referenced partitions need the resolved header; list what is known
	// even when it fails.
	referenced, herr := f.ReferencedPartitions(ctx)
	segs, _ := f.IndexSegments(ctx)

	rows := make([]partitionRow, 0, len(layout.Partitions))
	for _, part := range layout.Partitions {
		row := partitionRow{
			Index:      part.Index,
			Start:      part.Range.Start,
			End:        part.Range.End,
			BodySID:    part.BodySID,
			Kind:       "unreadable",
			Referenced: slices.Contains(referenced, part.Index),
		}
		if pack, ok := packs[part.Index]; ok {
			row.Kind = pack.Kind.String()
			row.Status = pack.Status.String()
			row.IndexSID = pack.IndexSID
			row.HeaderByteCount = pack.HeaderByteCount
			row.IndexByteCount = pack.IndexByteCount
		}
		for _, s := range segs {
			if s.Partition == part.Index {
				row.IndexSegments++
			}
		}
		rows = append(rows, row)
	}

	if jsonOut {
		if err := printJSON(map[string]interface{}{
			"file":                     f.Name(),
			"random_index_pack_offset": layout.RIPOffset,
			"partitions":               rows,
		}); err != nil {
			return err
		}
		return herr
	}

	printInfo("\nPartitions of %s (random index pack at %d):\n\n", f.Name(), layout.RIPOffset)
	printInfo("  %-3s  %-12s  %-12s  %-7s  %-16s  %-7s  %-8s  %-4s  %s\n",
		"#", "Start", "End", "Kind", "Status", "BodySID", "IndexSID", "Ref", "Segments")
	for _, r := range rows {
		ref := "-"
		if r.Referenced {
			ref = "yes"
		}
		printInfo("  %-3d  %-12d  %-12d  %-7s  %-16s  %-7d  %-8d  %-4s  %d\n",
			r.Index, r.Start, r.End, r.Kind, r.Status, r.BodySID, r.IndexSID, ref, r.IndexSegments)
	}
	if herr != nil {
		printError("header metadata: %v\n", herr)
	}
	return herr
}
