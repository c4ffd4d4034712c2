package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Netflix/photon-sub001/graph"
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/pkg/types"
)

func init() {
	rootCmd.AddCommand(newDescriptorsCmd())
}

func newDescriptorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "descriptors <file>",
		Short: "List the essence descriptors and their sub-descriptors",
		Long: `The descriptors command resolves the header metadata and lists the
essence descriptor of every source package, with the effective list of
sub-descriptors. Unresolved sub-descriptors appear as placeholders.

Example:
  mxfctl descriptors video.mxf
  mxfctl descriptors video.mxf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescriptors(cmd.Context(), args)
		},
	}
	return cmd
}

type nodeView struct {
	Kind        metadata.Kind   `json:"kind"`
	InstanceUID types.UID       `json:"instance_uid"`
	Key         types.UL        `json:"key"`
	Placeholder bool            `json:"placeholder,omitempty"`
	Record      metadata.Record `json:"record,omitempty"`
}

type descriptorView struct {
	Package        types.UMID `json:"package"`
	Descriptor     nodeView   `json:"descriptor"`
	SubDescriptors []nodeView `json:"sub_descriptors"`
}

func viewOf(n graph.Node) nodeView {
	v := nodeView{Kind: n.Kind(), InstanceUID: n.InstanceUID(), Key: n.Key()}
	switch n := n.(type) {
	case *graph.Placeholder:
		v.Placeholder = true
	case *graph.Descriptor:
		v.Record = n.Record
	case *graph.SubDescriptor:
		v.Record = n.Record
	}
	return v
}

func runDescriptors(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f, err := openFile(ctx, args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := f.Header(ctx)
	if err != nil {
		return err
	}

	var views []descriptorView
	for _, e := range g.EssenceDescriptors() {
		v := descriptorView{Package: e.Package.UMID(), Descriptor: viewOf(e.Descriptor)}
		for _, sub := range e.SubDescriptors {
			v.SubDescriptors = append(v.SubDescriptors, viewOf(sub))
		}
		views = append(views, v)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":        f.Name(),
			"descriptors": views,
		})
	}

	printInfo("\nEssence descriptors of %s:\n", f.Name())
	if len(views) == 0 {
		printInfo("  (none)\n")
	}
	for i, e := range g.EssenceDescriptors() {
		fd := e.Descriptor.Set().File()
		printInfo("\n[%d] %s %s\n", i, e.Descriptor.Kind(), e.Descriptor.InstanceUID())
		printInfo("  Package: %s\n", e.Package.UMID())
		printInfo("  Linked track: %d\n", fd.LinkedTrackID)
		printInfo("  Sample rate: %s\n", fd.SampleRate)
		printInfo("  Essence container: %s\n", fd.EssenceContainer)
		if len(e.SubDescriptors) == 0 {
			printInfo("  Sub-descriptors: (none)\n")
			continue
		}
		printInfo("  Sub-descriptors:\n")
		for _, sub := range e.SubDescriptors {
			if _, ok := sub.(*graph.Placeholder); ok {
				printInfo("    - (unresolved) %s\n", sub.InstanceUID())
				continue
			}
			printInfo("    - %s %s\n", sub.Kind(), sub.InstanceUID())
		}
	}
	return nil
}
