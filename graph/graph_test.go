package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Netflix/photon-sub001/graph"
	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/internal/testutil"
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/pkg/types"
)

const (
	mpUID uint32 = 1000 + iota
	mpTrackUID
	mpSequenceUID
	mpClipUID
	mpExternalClipUID
)

func parse(t *testing.T, b *testutil.Builder) *metadata.Table {
	t.Helper()
	table, err := metadata.ParseHeaderPartition(b.HeaderPartition(), nil)
	require.NoError(t, err)
	return table
}

func resolve(t *testing.T, b *testutil.Builder) (*graph.Graph, *types.DiagnosticReport) {
	t.Helper()
	report := types.NewDiagnosticReport()
	g, err := graph.Resolve(parse(t, b), report)
	require.NoError(t, err)
	return g, report
}

func requireFatal(t *testing.T, err error, code types.Code) *types.FatalError {
	t.Helper()
	var fe *types.FatalError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, code, fe.Diagnostic.Code)
	return fe
}

// withMaterialPackage adds a material package to Minimal whose clips point
// at the file package and at a package in another file, and lists it first
// in the content storage.
func withMaterialPackage(t *testing.T, descriptor ...testutil.Item) *metadata.Table {
	t.Helper()
	b := testutil.Minimal(descriptor...)
	b.Set(metadata.KindMaterialPackage, testutil.UID(mpUID),
		testutil.F(metadata.ElemPackageUID, testutil.UMIDValue(testutil.UMID(1))),
		testutil.F(metadata.ElemTracks, testutil.UIDs(testutil.UID(mpTrackUID))),
	)
	b.Set(metadata.KindTimelineTrack, testutil.UID(mpTrackUID),
		testutil.F(metadata.ElemTrackID, testutil.U32(1)),
		testutil.F(metadata.ElemTrackSequence, testutil.UIDValue(testutil.UID(mpSequenceUID))),
		testutil.F(metadata.ElemEditRate, testutil.Rational(24, 1)),
	)
	b.Set(metadata.KindSequence, testutil.UID(mpSequenceUID),
		testutil.F(metadata.ElemStructuralComponents,
			testutil.UIDs(testutil.UID(mpClipUID), testutil.UID(mpExternalClipUID))),
	)
	b.Set(metadata.KindSourceClip, testutil.UID(mpClipUID),
		testutil.F(metadata.ElemSourcePackageID, testutil.UMIDValue(testutil.FilePackageUMID)),
		testutil.F(metadata.ElemSourceTrackID, testutil.U32(1)),
	)
	b.Set(metadata.KindSourceClip, testutil.UID(mpExternalClipUID),
		testutil.F(metadata.ElemSourcePackageID, testutil.UMIDValue(testutil.UMID(999))),
		testutil.F(metadata.ElemSourceTrackID, testutil.U32(2)),
	)
	table := parse(t, b)
	cs, ok := table.Lookup(testutil.ContentStorageUID)
	require.True(t, ok)
	cs.(*metadata.ContentStorage).Packages = []types.UID{testutil.UID(mpUID), testutil.SourcePackageUID}
	return table
}

func resolveTable(t *testing.T, table *metadata.Table) (*graph.Graph, *types.DiagnosticReport) {
	t.Helper()
	report := types.NewDiagnosticReport()
	g, err := graph.Resolve(table, report)
	require.NoError(t, err)
	return g, report
}

func TestResolveMinimal(t *testing.T) {
	g, report := resolve(t, testutil.Minimal())
	require.Empty(t, report.Diagnostics())

	entries := g.EssenceDescriptors()
	require.Len(t, entries, 1)
	require.Equal(t, testutil.DescriptorUID, entries[0].Descriptor.InstanceUID())
	require.Equal(t, metadata.KindCDCIDescriptor, entries[0].Descriptor.Kind())
	require.Empty(t, entries[0].SubDescriptors)
	require.Equal(t, testutil.SourcePackageUID, entries[0].Package.InstanceUID())

	require.Equal(t, testutil.ContentStorageUID, g.ContentStorage().InstanceUID())
	require.Len(t, g.Packages(), 1)
	require.Nil(t, g.PrimaryPackage())

	ecds := g.EssenceContainerData()
	require.Len(t, ecds, 1)
	require.Same(t, g.Packages()[0], ecds[0].Package)

	track := g.Packages()[0].Tracks[0]
	require.Equal(t, testutil.SequenceUID, track.Sequence.InstanceUID())
	require.Len(t, track.Sequence.Components, 1)
	_, isClip := track.Sequence.Components[0].(*graph.SourceClip)
	require.True(t, isClip)
	require.Empty(t, g.ExternalSourceClips())

	n, ok := g.FindByInstanceUID(testutil.DescriptorUID)
	require.True(t, ok)
	require.Same(t, entries[0].Descriptor, n)
}

func TestResolvePlaceholderSubstitution(t *testing.T) {
	missing := testutil.UID(77)
	b := testutil.Minimal(testutil.F(metadata.ElemSubDescriptors,
		testutil.UIDs(testutil.UID(70), missing, testutil.UID(71))))
	b.Set(metadata.KindJPEG2000SubDescriptor, testutil.UID(70), testutil.F(metadata.ElemJ2KCsize, testutil.U16(3)))
	b.Set(metadata.KindContainerConstraintsSubDescriptor, testutil.UID(71))

	g, report := resolve(t, b)
	require.False(t, report.HasFatal())
	require.Len(t, report.BySeverity(types.SevNonFatal), 1)
	require.Len(t, report.Diagnostics(), 1)
	require.Equal(t, types.CodeUnresolvedReference, report.Diagnostics()[0].Code)

	subs := g.EssenceDescriptors()[0].SubDescriptors
	require.Len(t, subs, 3)
	require.IsType(t, &graph.SubDescriptor{}, subs[0])
	require.IsType(t, &graph.Placeholder{}, subs[1])
	require.IsType(t, &graph.SubDescriptor{}, subs[2])
	require.Equal(t, missing, subs[1].InstanceUID())
	require.Equal(t, metadata.KindUnknown, subs[1].Kind())

	n, ok := g.FindByInstanceUID(missing)
	require.True(t, ok)
	require.Same(t, subs[1], n)
}

func TestResolveADMHop(t *testing.T) {
	chna, m1, m2 := testutil.UID(80), testutil.UID(81), testutil.UID(82)
	add := func(b *testutil.Builder) {
		b.Set(metadata.KindADMCHNASubDescriptor, chna,
			testutil.F(metadata.ElemNumLocalChannels, testutil.U32(2)),
			testutil.F(metadata.ElemADMChannelMappingsArray, testutil.UIDs(m1, m2)),
		)
		b.Set(metadata.KindADMChannelMapping, m1, testutil.F(metadata.ElemLocalChannelID, testutil.U32(1)))
		b.Set(metadata.KindADMChannelMapping, m2, testutil.F(metadata.ElemLocalChannelID, testutil.U32(2)))
	}

	t.Run("mappings reached through the chna sub-descriptor", func(t *testing.T) {
		b := testutil.Minimal(testutil.F(metadata.ElemSubDescriptors, testutil.UIDs(chna)))
		add(b)
		g, report := resolve(t, b)
		require.Empty(t, report.Diagnostics())

		subs := g.EssenceDescriptors()[0].SubDescriptors
		require.Len(t, subs, 3)
		require.Equal(t, []types.UID{chna, m1, m2}, uids(subs))
	})

	t.Run("mapping also listed directly", func(t *testing.T) {
		b := testutil.Minimal(testutil.F(metadata.ElemSubDescriptors, testutil.UIDs(chna, m2)))
		add(b)
		g, report := resolve(t, b)
		require.Empty(t, report.Diagnostics())

		subs := g.EssenceDescriptors()[0].SubDescriptors
		require.Equal(t, []types.UID{chna, m2, m1}, uids(subs))
	})
}

func uids(nodes []graph.Node) []types.UID {
	out := make([]types.UID, len(nodes))
	for i, n := range nodes {
		out[i] = n.InstanceUID()
	}
	return out
}

func walkOrder(g *graph.Graph) []types.UID {
	var out []types.UID
	g.Walk(func(n graph.Node, _ int) bool {
		out = append(out, n.InstanceUID())
		return true
	})
	return out
}

func TestResolveDeterministic(t *testing.T) {
	table := withMaterialPackage(t, testutil.F(metadata.ElemSubDescriptors, testutil.UIDs(testutil.UID(70), testutil.UID(77))))

	g1, err := graph.Resolve(table, nil)
	require.NoError(t, err)
	g2, err := graph.Resolve(table, nil)
	require.NoError(t, err)
	require.Equal(t, g1.EssenceDescriptors(), g2.EssenceDescriptors())
	require.Equal(t, walkOrder(g1), walkOrder(g2))

	// Table order does not matter.
	reversed := make([]metadata.Record, table.Len())
	for i, r := range table.Records {
		reversed[len(reversed)-1-i] = r
	}
	g3, err := graph.Resolve(metadata.NewTable(table.Partition, table.Primer, reversed...), nil)
	require.NoError(t, err)
	require.Equal(t, walkOrder(g1), walkOrder(g3))
	require.Equal(t, g1.Len(), g3.Len())
}

func TestResolvePrimaryPackageAndExternalClips(t *testing.T) {
	g, report := resolveTable(t, withMaterialPackage(t))
	require.Empty(t, report.Diagnostics())

	require.Len(t, g.Packages(), 2)
	mp := g.PrimaryPackage()
	require.NotNil(t, mp)
	require.True(t, mp.IsMaterial())
	require.Equal(t, testutil.UID(mpUID), mp.InstanceUID())

	p, ok := g.PackageByUMID(testutil.FilePackageUMID)
	require.True(t, ok)
	require.Equal(t, testutil.SourcePackageUID, p.InstanceUID())

	ext := g.ExternalSourceClips()
	require.Len(t, ext, 1)
	require.Equal(t, testutil.UID(mpExternalClipUID), ext[0].InstanceUID())
	require.Equal(t, testutil.UMID(999), ext[0].Set().SourcePackageID)
}

func TestResolveBackboneFailures(t *testing.T) {
	t.Run("missing component", func(t *testing.T) {
		table := withMaterialPackage(t)
		// Point the material package sequence at a component that does not exist.
		seq, _ := table.Lookup(testutil.UID(mpSequenceUID))
		seq.(*metadata.Sequence).StructuralComponents = []types.UID{testutil.UID(4242)}

		report := types.NewDiagnosticReport()
		_, err := graph.Resolve(table, report)
		fe := requireFatal(t, err, types.CodeUnresolvedReference)
		require.Equal(t, "Sequence", fe.Diagnostic.Structure)
		require.Equal(t, report.Diagnostics(), fe.Diagnostics)
		require.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("descriptor of the wrong kind", func(t *testing.T) {
		b := testutil.New()
		b.Set(metadata.KindPreface, testutil.UID(1), testutil.F(metadata.ElemContentStorage, testutil.UIDValue(testutil.UID(2))))
		b.Set(metadata.KindContentStorage, testutil.UID(2), testutil.F(metadata.ElemPackages, testutil.UIDs(testutil.UID(3))))
		b.Set(metadata.KindSourcePackage, testutil.UID(3),
			testutil.F(metadata.ElemTracks, testutil.UIDs()),
			testutil.F(metadata.ElemDescriptor, testutil.UIDValue(testutil.UID(4))),
		)
		b.Set(metadata.KindJPEG2000SubDescriptor, testutil.UID(4))

		_, err := graph.Resolve(parse(t, b), nil)
		requireFatal(t, err, types.CodeUnresolvedReference)
	})

	t.Run("no preface", func(t *testing.T) {
		b := testutil.New()
		b.Set(metadata.KindContentStorage, testutil.UID(2))
		_, err := graph.Resolve(parse(t, b), nil)
		requireFatal(t, err, types.CodeStructure)
	})

	t.Run("two prefaces", func(t *testing.T) {
		b := testutil.Minimal()
		b.Set(metadata.KindPreface, testutil.UID(99), testutil.F(metadata.ElemContentStorage, testutil.UIDValue(testutil.ContentStorageUID)))
		_, err := graph.Resolve(parse(t, b), nil)
		requireFatal(t, err, types.CodeStructure)
	})

	t.Run("missing content storage", func(t *testing.T) {
		b := testutil.New()
		b.Set(metadata.KindPreface, testutil.UID(1), testutil.F(metadata.ElemContentStorage, testutil.UIDValue(testutil.UID(2))))
		_, err := graph.Resolve(parse(t, b), nil)
		fe := requireFatal(t, err, types.CodeUnresolvedReference)
		require.Equal(t, "Preface", fe.Diagnostic.Structure)
	})
}

func TestResolveCircularSequence(t *testing.T) {
	b := testutil.New()
	b.Set(metadata.KindPreface, testutil.UID(1), testutil.F(metadata.ElemContentStorage, testutil.UIDValue(testutil.UID(2))))
	b.Set(metadata.KindContentStorage, testutil.UID(2), testutil.F(metadata.ElemPackages, testutil.UIDs(testutil.UID(3))))
	b.Set(metadata.KindMaterialPackage, testutil.UID(3), testutil.F(metadata.ElemTracks, testutil.UIDs(testutil.UID(4))))
	b.Set(metadata.KindTimelineTrack, testutil.UID(4), testutil.F(metadata.ElemTrackSequence, testutil.UIDValue(testutil.UID(5))))
	b.Set(metadata.KindSequence, testutil.UID(5),
		testutil.F(metadata.ElemStructuralComponents, testutil.UIDs(testutil.UID(5), testutil.UID(6))))
	b.Set(metadata.KindFiller, testutil.UID(6), testutil.F(metadata.ElemDuration, testutil.I64(10)))

	g, report := resolve(t, b)
	require.Len(t, report.ByCode(types.CodeCircularReference), 1)
	require.Equal(t, types.SevNonFatal, report.Diagnostics()[0].Severity)

	seq := g.Packages()[0].Tracks[0].Sequence
	require.Len(t, seq.Components, 1)
	require.IsType(t, &graph.Component{}, seq.Components[0])
}

func TestResolveUnknownComponentKind(t *testing.T) {
	unknownKey := format.StructuralMetadataKey
	unknownKey[14] = 0xFE

	b := testutil.New()
	b.Set(metadata.KindPreface, testutil.UID(1), testutil.F(metadata.ElemContentStorage, testutil.UIDValue(testutil.UID(2))))
	b.Set(metadata.KindContentStorage, testutil.UID(2), testutil.F(metadata.ElemPackages, testutil.UIDs(testutil.UID(3))))
	b.Set(metadata.KindMaterialPackage, testutil.UID(3), testutil.F(metadata.ElemTracks, testutil.UIDs(testutil.UID(4))))
	b.Set(metadata.KindTimelineTrack, testutil.UID(4), testutil.F(metadata.ElemTrackSequence, testutil.UIDValue(testutil.UID(5))))
	b.Set(metadata.KindSequence, testutil.UID(5), testutil.F(metadata.ElemStructuralComponents, testutil.UIDs(testutil.UID(6))))
	b.RawSet(unknownKey, testutil.UID(6))

	g, report := resolve(t, b)
	require.Len(t, report.BySeverity(types.SevWarning), 1)
	require.False(t, report.HasErrors())

	comps := g.Packages()[0].Tracks[0].Sequence.Components
	require.Len(t, comps, 1)
	p, ok := comps[0].(*graph.Placeholder)
	require.True(t, ok)
	require.Equal(t, unknownKey, p.Key())
}

func TestResolveUnknownKindInTypedSlot(t *testing.T) {
	unknownKey := format.StructuralMetadataKey
	unknownKey[14] = 0x7E

	tests := []struct {
		name      string
		structure string
		build     func(b *testutil.Builder)
	}{
		{
			name:      "content storage",
			structure: "Preface",
			build: func(b *testutil.Builder) {
				b.Set(metadata.KindPreface, testutil.UID(1), testutil.F(metadata.ElemContentStorage, testutil.UIDValue(testutil.UID(77))))
				b.RawSet(unknownKey, testutil.UID(77))
			},
		},
		{
			name:      "track sequence",
			structure: "TimelineTrack",
			build: func(b *testutil.Builder) {
				b.Set(metadata.KindPreface, testutil.UID(1), testutil.F(metadata.ElemContentStorage, testutil.UIDValue(testutil.UID(2))))
				b.Set(metadata.KindContentStorage, testutil.UID(2), testutil.F(metadata.ElemPackages, testutil.UIDs(testutil.UID(3))))
				b.Set(metadata.KindMaterialPackage, testutil.UID(3), testutil.F(metadata.ElemTracks, testutil.UIDs(testutil.UID(4))))
				b.Set(metadata.KindTimelineTrack, testutil.UID(4), testutil.F(metadata.ElemTrackSequence, testutil.UIDValue(testutil.UID(77))))
				b.RawSet(unknownKey, testutil.UID(77))
			},
		},
		{
			name:      "source package descriptor",
			structure: "SourcePackage",
			build: func(b *testutil.Builder) {
				b.Set(metadata.KindPreface, testutil.UID(1), testutil.F(metadata.ElemContentStorage, testutil.UIDValue(testutil.UID(2))))
				b.Set(metadata.KindContentStorage, testutil.UID(2), testutil.F(metadata.ElemPackages, testutil.UIDs(testutil.UID(3))))
				b.Set(metadata.KindSourcePackage, testutil.UID(3),
					testutil.F(metadata.ElemTracks, testutil.UIDs()),
					testutil.F(metadata.ElemDescriptor, testutil.UIDValue(testutil.UID(77))),
				)
				b.RawSet(unknownKey, testutil.UID(77))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.New()
			tt.build(b)

			report := types.NewDiagnosticReport()
			var g *graph.Graph
			var err error
			require.NotPanics(t, func() { g, err = graph.Resolve(parse(t, b), report) })
			require.Nil(t, g)
			fe := requireFatal(t, err, types.CodeUnresolvedReference)
			require.Equal(t, tt.structure, fe.Diagnostic.Structure)
			require.Contains(t, fe.Diagnostic.Issue, "unmodelled")
			require.Empty(t, report.BySeverity(types.SevWarning))
		})
	}
}

func TestGraphAccessorsWithoutContentStorage(t *testing.T) {
	var g graph.Graph
	require.Nil(t, g.ContentStorage())
	require.Empty(t, g.Packages())
	require.Empty(t, g.EssenceContainerData())
	require.Empty(t, g.EssenceDescriptors())
	require.Empty(t, g.ExternalSourceClips())
	require.Empty(t, walkOrder(&g))
}

func TestResolveDescriptiveMarker(t *testing.T) {
	b := testutil.New()
	b.Set(metadata.KindPreface, testutil.UID(1), testutil.F(metadata.ElemContentStorage, testutil.UIDValue(testutil.UID(2))))
	b.Set(metadata.KindContentStorage, testutil.UID(2), testutil.F(metadata.ElemPackages, testutil.UIDs(testutil.UID(3))))
	b.Set(metadata.KindMaterialPackage, testutil.UID(3), testutil.F(metadata.ElemTracks, testutil.UIDs(testutil.UID(4))))
	b.Set(metadata.KindEventTrack, testutil.UID(4), testutil.F(metadata.ElemTrackSequence, testutil.UIDValue(testutil.UID(5))))
	b.Set(metadata.KindSequence, testutil.UID(5), testutil.F(metadata.ElemStructuralComponents, testutil.UIDs(testutil.UID(6), testutil.UID(7))))
	b.Set(metadata.KindDMSegment, testutil.UID(6), testutil.F(metadata.ElemDMFramework, testutil.UIDValue(testutil.UID(8))))
	b.Set(metadata.KindDMSegment, testutil.UID(7), testutil.F(metadata.ElemDMFramework, testutil.UIDValue(testutil.UID(10))))
	b.Set(metadata.KindTextBasedDMFramework, testutil.UID(8), testutil.F(metadata.ElemTextBasedObject, testutil.UIDValue(testutil.UID(9))))
	b.Set(metadata.KindTextBasedObject, testutil.UID(9), testutil.F(metadata.ElemTextMIMEMediaType, []byte("text/plain")))

	g, report := resolve(t, b)
	require.Len(t, report.BySeverity(types.SevNonFatal), 1, "framework 10 is missing")
	require.False(t, report.HasFatal())

	comps := g.Packages()[0].Tracks[0].Sequence.Components
	require.Len(t, comps, 2)
	m := comps[0].(*graph.DescriptiveMarker)
	f := m.Framework.(*graph.Framework)
	require.Equal(t, metadata.KindTextBasedDMFramework, f.Kind())
	require.Equal(t, testutil.UID(9), f.Object.InstanceUID())
	require.IsType(t, &graph.Placeholder{}, comps[1].(*graph.DescriptiveMarker).Framework)
}

func TestWalkVisitsOnce(t *testing.T) {
	g, _ := resolveTable(t, withMaterialPackage(t))
	order := walkOrder(g)
	seen := make(map[types.UID]bool)
	for _, uid := range order {
		require.False(t, seen[uid], "visited twice: %s", uid)
		seen[uid] = true
	}
	require.Equal(t, testutil.PrefaceUID, order[0])
	require.True(t, seen[testutil.DescriptorUID])

	depth := -1
	g.Walk(func(n graph.Node, d int) bool {
		if n.Kind() == metadata.KindContentStorage {
			depth = d
		}
		return n.Kind() != metadata.KindContentStorage
	})
	require.Equal(t, 1, depth)
}
