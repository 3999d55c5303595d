package bdmv

import "errors"

// Decode errors are terminal for the scope they occur in: a failed record
// aborts its playlist, a failed playlist is dropped from the catalogue.
var (
	// ErrIO wraps short reads, reads past the end of the file and files
	// that cannot be opened.
	ErrIO = errors.New("i/o error")

	// ErrFormat marks input the decoder does not recognize: bad magic,
	// unsupported version, bad clip suffix, unknown stream entry type.
	ErrFormat = errors.New("unrecognized playlist format")

	// ErrStructure marks well-formed records that violate playlist
	// invariants: duplicate clip references, zero total duration,
	// missing required disc directories.
	ErrStructure = errors.New("invalid playlist structure")

	// ErrClipMissing is reported when clip verification is enabled and a
	// referenced media file does not exist on disk.
	ErrClipMissing = errors.New("referenced clip file missing")
)
