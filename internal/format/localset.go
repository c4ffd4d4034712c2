package format

import (
	"fmt"
	"io"

	"github.com/Netflix/photon-sub001/internal/buf"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// LengthKind is the item length encoding a local set uses.
type LengthKind uint8

const (
	LengthUnsupported LengthKind = iota
	LengthShort                  // 2-byte big-endian item length (designator 0x53)
	LengthBER                    // BER item length (designator 0x13)
)

func (k LengthKind) String() string {
	switch k {
	case LengthShort:
		return "short"
	case LengthBER:
		return "ber"
	default:
		return "unsupported"
	}
}

// LocalSetLengthKindOf inspects the designator byte of a set key. Each set
// carries its own designator; files may mix both encodings.
func LocalSetLengthKindOf(k types.UL) LengthKind {
	switch k[5] {
	case DesignatorLocalSetShort:
		return LengthShort
	case DesignatorLocalSetBER:
		return LengthBER
	default:
		return LengthUnsupported
	}
}

// Item is one local set item.
//
//	Offset  Size  Description
//	------  ----  -----------------------------------
//	 0x00     2   Local tag
//	 0x02   2|n   Length (short form, or BER)
//	 ....     L   Value (may be empty)
type Item struct {
	Tag    uint16
	Value  []byte // aliases the set value
	Offset int    // offset of the tag within the set value
	Size   int    // tag + length field + value
}

// ItemIterator walks the items of a local set value. The iterator accounts
// for every byte: a set whose items do not end exactly at the end of the
// value reports ErrSizeMismatch.
type ItemIterator struct {
	b        []byte
	kind     LengthKind
	next     int
	consumed int
	err      error
}

// NewItemIterator returns an iterator over value using the given length kind.
func NewItemIterator(value []byte, kind LengthKind) (*ItemIterator, error) {
	if kind == LengthUnsupported {
		return nil, fmt.Errorf("local set length encoding: %w", ErrUnsupported)
	}
	return &ItemIterator{b: value, kind: kind}, nil
}

// Consumed returns the number of bytes consumed by items returned so far.
func (it *ItemIterator) Consumed() int { return it.consumed }

// Next returns the next item, or io.EOF once the value is fully consumed.
func (it *ItemIterator) Next() (Item, error) {
	if it.err != nil {
		return Item{}, it.err
	}
	if it.next == len(it.b) {
		return Item{}, io.EOF
	}
	start := it.next
	rest := it.b[start:]
	if len(rest) < LocalTagSize {
		return Item{}, it.fail(fmt.Errorf("item at %d: %d trailing bytes: %w", start, len(rest), ErrSizeMismatch))
	}
	tag := buf.U16BE(rest)
	var (
		length uint64
		lenSz  int
	)
	switch it.kind {
	case LengthShort:
		if len(rest) < LocalTagSize+ShortItemLengthSize {
			return Item{}, it.fail(fmt.Errorf("item %04x at %d: length: %w", tag, start, ErrSizeMismatch))
		}
		length, lenSz = uint64(buf.U16BE(rest[LocalTagSize:])), ShortItemLengthSize
	case LengthBER:
		var err error
		length, lenSz, err = DecodeBERLength(rest[LocalTagSize:])
		if err != nil {
			return Item{}, it.fail(fmt.Errorf("item %04x at %d: %w", tag, start, err))
		}
	}
	hdr := LocalTagSize + lenSz
	n, ok := buf.Int64ToInt(int64(length))
	if !ok || length > uint64(len(rest)-hdr) {
		return Item{}, it.fail(fmt.Errorf("item %04x at %d: length %d exceeds remaining %d bytes: %w",
			tag, start, length, len(rest)-hdr, ErrSizeMismatch))
	}
	item := Item{Tag: tag, Value: rest[hdr : hdr+n], Offset: start, Size: hdr + n}
	it.next += item.Size
	it.consumed += item.Size
	return item, nil
}

func (it *ItemIterator) fail(err error) error {
	it.err = err
	return err
}

// AppendItem encodes one item in the given length kind. Used by writers and
// test builders.
func AppendItem(dst []byte, kind LengthKind, tag uint16, value []byte) []byte {
	dst = append(dst, byte(tag>>8), byte(tag))
	switch kind {
	case LengthBER:
		l, _ := EncodeBERLength(uint64(len(value)), 4)
		dst = append(dst, l...)
	default:
		dst = append(dst, byte(len(value)>>8), byte(len(value)))
	}
	return append(dst, value...)
}
