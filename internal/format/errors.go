package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrKeyMismatch indicates a KLV key other than the one a structure requires.
	ErrKeyMismatch = errors.New("format: unexpected key")
	// ErrBadLength indicates a malformed or unsupported BER length.
	ErrBadLength = errors.New("format: malformed KLV length")
	// ErrSizeMismatch indicates a declared size that disagrees with the bytes present.
	ErrSizeMismatch = errors.New("format: size mismatch")
	// ErrBadBatch indicates a batch/array header inconsistent with its value.
	ErrBadBatch = errors.New("format: malformed batch")
	// ErrUnsupported indicates the structure or feature is not supported.
	ErrUnsupported = errors.New("format: unsupported feature")
)
