// Package format houses low-level decoders for the MXF (SMPTE ST 377-1)
// container format. The goal is to keep the parsing focused, allocation-free
// where possible, and independent from the public API so higher-level
// packages can orchestrate the data in a more ergonomic form.
//
// All multi-byte integers in MXF are big-endian.
package format

import "github.com/Netflix/photon-sub001/pkg/types"

// Key templates. Bytes a mask ignores are written as 00 in the template.
var (
	// PartitionPackKey matches header, body and footer partition packs:
	//   06.0e.2b.34.02.05.01.vv.0d.01.02.01.01.kk.ss.00
	// kk = 02 header, 03 body, 04 footer; ss = partition status.
	PartitionPackKey  = types.MustParseUL("06.0e.2b.34.02.05.01.01.0d.01.02.01.01.00.00.00")
	PartitionPackMask = types.ULMask{1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 0, 0, 1}

	// PrimerPackKey identifies the primer pack (local tag to UL table).
	PrimerPackKey  = types.MustParseUL("06.0e.2b.34.02.05.01.01.0d.01.02.01.01.05.01.00")
	PrimerPackMask = types.ULMask{1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1}

	// RandomIndexPackKey identifies the random index pack at the end of a file.
	RandomIndexPackKey  = types.MustParseUL("06.0e.2b.34.02.05.01.01.0d.01.02.01.01.11.01.00")
	RandomIndexPackMask = PrimerPackMask

	// FillItemKey identifies KLV fill. Both the version 1 and version 2
	// register entries occur in the wild.
	FillItemKey  = types.MustParseUL("06.0e.2b.34.01.01.01.01.03.01.02.10.01.00.00.00")
	FillItemMask = types.ULMask{1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1}

	// IndexTableSegmentKey identifies an index table segment local set.
	IndexTableSegmentKey  = types.MustParseUL("06.0e.2b.34.02.53.01.01.0d.01.02.01.01.10.01.00")
	IndexTableSegmentMask = types.ULMask{1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1}

	// StructuralMetadataKey is the generic structural metadata set template:
	//   06.0e.2b.34.02.dd.01.vv.0d.01.01.01.01.01.xx.00
	// dd is the local-set designator (0x53 or 0x13), vv the register version
	// and xx the set discriminator.
	StructuralMetadataKey  = types.MustParseUL("06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.00.00")
	StructuralMetadataMask = types.ULMask{1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1}

	// DescriptiveMetadataKey is the descriptive metadata set template:
	//   06.0e.2b.34.02.dd.01.vv.0d.01.04.01.xx.xx.xx.xx
	DescriptiveMetadataKey  = types.MustParseUL("06.0e.2b.34.02.53.01.01.0d.01.04.01.00.00.00.00")
	DescriptiveMetadataMask = types.ULMask{1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 0, 0, 0, 0}

	// PHDRMetadataTrackSubDescriptorKey does not follow the structural
	// template and is matched exactly.
	PHDRMetadataTrackSubDescriptorKey = types.MustParseUL("06.0e.2b.34.02.53.01.05.0e.09.06.07.01.01.01.03")
)

// SMPTEPrefix starts every SMPTE-registered key.
var SMPTEPrefix = []byte{0x06, 0x0e, 0x2b, 0x34}

const (
	// KeySize is the size of a KLV key.
	KeySize = types.ULSize

	// MaxBERLengthBytes bounds the long-form BER length field (1 + 8).
	MaxBERLengthBytes = 9

	// MaxKLVHeaderSize is the largest key + length encoding this package accepts.
	MaxKLVHeaderSize = KeySize + MaxBERLengthBytes

	// LocalTagSize is the size of a local set item tag.
	LocalTagSize = 2

	// ShortItemLengthSize is the item length size of 0x53-designator sets.
	ShortItemLengthSize = 2

	// BatchHeaderSize is the size of a batch/array header (count u32, size u32).
	BatchHeaderSize = 8

	// PrimerItemSize is the size of one primer entry (tag u16 + UL).
	PrimerItemSize = LocalTagSize + types.ULSize

	// PartitionPackFixedSize is the size of a partition pack value up to and
	// including the operational pattern UL.
	PartitionPackFixedSize = 80

	// PartitionPackMinSize adds the essence container batch header.
	PartitionPackMinSize = PartitionPackFixedSize + BatchHeaderSize

	// RIPEntrySize is the size of one random index pack entry (BodySID u32, offset u64).
	RIPEntrySize = 12

	// RIPTrailerSize is the size of the overall-length field closing the pack.
	RIPTrailerSize = 4

	// RIPLengthFieldSize is the BER length size assumed when bounding the pack.
	RIPLengthFieldSize = 4

	// MinRIPEntries is the minimum number of partitions a decodable file lists:
	// header, at least one body or footer, and footer.
	MinRIPEntries = 3

	// MinRandomIndexPackSize is the smallest acceptable overall pack length
	// (16 + 4 + 3*12 + 4 = 60 bytes).
	MinRandomIndexPackSize = KeySize + RIPLengthFieldSize + MinRIPEntries*RIPEntrySize + RIPTrailerSize

	// TimestampSize is the size of an MXF timestamp.
	TimestampSize = 8

	// RationalSize is the size of an MXF rational.
	RationalSize = 8
)

// Designator bytes at key offset 5 for local sets.
const (
	DesignatorLocalSetBER   = 0x13
	DesignatorLocalSetShort = 0x53
)

// IsSMPTEKey reports whether k starts with the SMPTE UL prefix.
func IsSMPTEKey(k types.UL) bool {
	return k[0] == SMPTEPrefix[0] && k[1] == SMPTEPrefix[1] && k[2] == SMPTEPrefix[2] && k[3] == SMPTEPrefix[3]
}

// IsFill reports whether k is a KLV fill key.
func IsFill(k types.UL) bool { return k.EqualMasked(FillItemKey, FillItemMask) }

// IsPrimerPack reports whether k is the primer pack key.
func IsPrimerPack(k types.UL) bool { return k.EqualMasked(PrimerPackKey, PrimerPackMask) }

// IsRandomIndexPack reports whether k is the random index pack key.
func IsRandomIndexPack(k types.UL) bool { return k.EqualMasked(RandomIndexPackKey, RandomIndexPackMask) }

// IsIndexTableSegment reports whether k is an index table segment key.
func IsIndexTableSegment(k types.UL) bool {
	return k.EqualMasked(IndexTableSegmentKey, IndexTableSegmentMask)
}

// IsStructuralMetadata reports whether k follows the structural metadata template.
func IsStructuralMetadata(k types.UL) bool {
	return k.EqualMasked(StructuralMetadataKey, StructuralMetadataMask)
}

// IsDescriptiveMetadata reports whether k follows the descriptive metadata template.
func IsDescriptiveMetadata(k types.UL) bool {
	return k.EqualMasked(DescriptiveMetadataKey, DescriptiveMetadataMask)
}

// IsLocalSet reports whether k is a group key using local set coding.
func IsLocalSet(k types.UL) bool {
	return IsSMPTEKey(k) && k[4] == 0x02 && LocalSetLengthKindOf(k) != LengthUnsupported
}
