package metadata

import (
	"fmt"

	"github.com/Netflix/photon-sub001/internal/buf"
	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// Field decoders. Fixed-size fields must match their declared size exactly.

func wantSize(v []byte, n int) error {
	if len(v) != n {
		return fmt.Errorf("value of %d bytes, want %d: %w", len(v), n, format.ErrSizeMismatch)
	}
	return nil
}

func decodeU8(v []byte, dst *uint8) error {
	if err := wantSize(v, 1); err != nil {
		return err
	}
	*dst = v[0]
	return nil
}

func decodeBool(v []byte, dst *bool) error {
	if err := wantSize(v, 1); err != nil {
		return err
	}
	*dst = v[0] != 0
	return nil
}

func decodeU16(v []byte, dst *uint16) error {
	if err := wantSize(v, 2); err != nil {
		return err
	}
	*dst = buf.U16BE(v)
	return nil
}

func decodeU32(v []byte, dst *uint32) error {
	if err := wantSize(v, 4); err != nil {
		return err
	}
	*dst = buf.U32BE(v)
	return nil
}

func decodeU64(v []byte, dst *uint64) error {
	if err := wantSize(v, 8); err != nil {
		return err
	}
	*dst = buf.U64BE(v)
	return nil
}

func decodeI64(v []byte, dst *int64) error {
	if err := wantSize(v, 8); err != nil {
		return err
	}
	*dst = buf.I64BE(v)
	return nil
}

func decodeRational(v []byte, dst *types.Rational) error {
	if err := wantSize(v, format.RationalSize); err != nil {
		return err
	}
	*dst = format.DecodeRational(v)
	return nil
}

func decodeTimestamp(v []byte, dst *types.Timestamp) error {
	if err := wantSize(v, format.TimestampSize); err != nil {
		return err
	}
	ts, err := format.DecodeTimestamp(v)
	*dst = ts
	return err
}

func decodeUL(v []byte, dst *types.UL) error {
	if err := wantSize(v, types.ULSize); err != nil {
		return err
	}
	copy(dst[:], v)
	return nil
}

func decodeUID(v []byte, dst *types.UID) error {
	if err := wantSize(v, 16); err != nil {
		return err
	}
	copy(dst[:], v)
	return nil
}

func decodeUMID(v []byte, dst *types.UMID) error {
	if err := wantSize(v, 32); err != nil {
		return err
	}
	copy(dst[:], v)
	return nil
}

func decodeUTF16(v []byte, dst *string) (err error) {
	*dst, err = format.DecodeUTF16String(v)
	return err
}

func decodeISO8859(v []byte, dst *string) (err error) {
	*dst, err = format.DecodeISO8859String(v)
	return err
}

func decodeASCII(v []byte, dst *string) (err error) {
	*dst, err = format.DecodeASCIIString(v)
	return err
}

func decodeBytes(v []byte, dst *[]byte) error {
	*dst = append([]byte(nil), v...)
	return nil
}

func decodeUIDs(v []byte, dst *[]types.UID) (err error) {
	*dst, err = format.ReadUIDBatch(v)
	return err
}

func decodeULs(v []byte, dst *[]types.UL) (err error) {
	*dst, err = format.ReadULBatch(v)
	return err
}

func decodeU32s(v []byte, dst *[]uint32) (err error) {
	*dst, err = format.ReadU32Batch(v)
	return err
}

func decodeI32s(v []byte, dst *[]int32) error {
	h, payload, err := format.ReadBatchFixed(v, 4)
	if err != nil {
		return err
	}
	out := make([]int32, h.Count)
	for i := range out {
		out[i] = buf.I32BE(payload[i*4:])
	}
	*dst = out
	return nil
}

func decodeU16s(v []byte, dst *[]uint16) error {
	h, payload, err := format.ReadBatchFixed(v, 2)
	if err != nil {
		return err
	}
	out := make([]uint16, h.Count)
	for i := range out {
		out[i] = buf.U16BE(payload[i*2:])
	}
	*dst = out
	return nil
}

// ProductVersion is the five-part version of an Identification set.
type ProductVersion struct {
	Major, Minor, Patch, Build, Release uint16
}

func (v ProductVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build, v.Release)
}

func decodeProductVersion(v []byte, dst *ProductVersion) error {
	if err := wantSize(v, 10); err != nil {
		return err
	}
	*dst = ProductVersion{
		Major:   buf.U16BE(v[0:]),
		Minor:   buf.U16BE(v[2:]),
		Patch:   buf.U16BE(v[4:]),
		Build:   buf.U16BE(v[6:]),
		Release: buf.U16BE(v[8:]),
	}
	return nil
}
