package bdmv

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// PlaylistItem is one clip reference inside a playlist: the resolved media
// file plus the presentation range played from it. StartTime is the
// position of the item on the playlist timeline, i.e. the running sum of
// the durations of the items before it.
type PlaylistItem struct {
	FileName  string
	StartPTS  PTS
	EndPTS    PTS
	StartTime PTS
}

// Playlist is the decoded form of one .mpls file: its items in file order,
// its elementary streams deduplicated by PID across all items, and the
// total duration accumulated over the items.
type Playlist struct {
	Name     string
	Duration PTS
	Items    []PlaylistItem
	Streams  []Stream
}

// Equal reports structural equality: same duration, same items, same
// streams. The source file name does not participate, so two byte-identical
// playlist files compare equal.
func (p *Playlist) Equal(other *Playlist) bool {
	return p.Duration == other.Duration &&
		slices.Equal(p.Items, other.Items) &&
		slices.Equal(p.Streams, other.Streams)
}

// Options control one decode pass.
type Options struct {
	// SkipDuplicateTitles drops playlists that are structurally equal to
	// one already accepted in the same Parse call.
	SkipDuplicateTitles bool

	// VerifyClipFiles rejects playlists referencing media files that do
	// not exist under <root>/STREAM.
	VerifyClipFiles bool
}

// DecodePlaylist decodes one .mpls file end to end. Any failure discards
// the whole playlist; there is no partial result.
func DecodePlaylist(path, root string, opts Options) (*Playlist, error) {
	r, f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodePlaylist(r, path, root, opts)
}

func decodePlaylist(r *Reader, path, root string, opts Options) (*Playlist, error) {
	magic, err := r.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	if string(magic) != "MPLS" {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, magic)
	}

	version, err := r.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	switch string(version) {
	case "0100", "0200", "0300":
	default:
		return nil, fmt.Errorf("%w: unsupported version %q", ErrFormat, version)
	}

	base, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	r.Seek(int64(base))
	r.Skip(6) // length + reserved
	itemCount, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}

	pl := &Playlist{Name: path}
	known := make(map[uint16]struct{})
	seenClips := make(map[string]struct{}, itemCount)

	cursor := int64(base) + 10
	for i := 0; i < int(itemCount); i++ {
		r.Seek(cursor)
		itemLength, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		cursor += int64(itemLength) + 2

		clip, err := r.ReadBytes(9)
		if err != nil {
			return nil, err
		}
		if string(clip[5:9]) != "M2TS" {
			return nil, fmt.Errorf("%w: bad clip codec identifier %q", ErrFormat, clip[5:9])
		}

		item := PlaylistItem{
			FileName: filepath.Join(root, "STREAM", string(clip[:5])+".M2TS"),
		}
		if opts.VerifyClipFiles {
			if _, err := os.Stat(item.FileName); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrClipMissing, item.FileName)
			}
		}
		if _, dup := seenClips[item.FileName]; dup {
			return nil, fmt.Errorf("%w: clip %s referenced twice", ErrStructure, item.FileName)
		}
		seenClips[item.FileName] = struct{}{}

		flags, err := r.ReadBytes(3)
		if err != nil {
			return nil, err
		}
		multiAngle := (flags[1]>>4)&0x01 != 0

		inTime, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		outTime, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		item.StartPTS = ptsFromTicks(inTime)
		item.EndPTS = ptsFromTicks(outTime)
		item.StartTime = pl.Duration
		pl.Duration += item.EndPTS - item.StartPTS

		r.Skip(12)
		if multiAngle {
			angleCount, err := r.ReadByte()
			if err != nil {
				return nil, err
			}
			if angleCount < 1 {
				angleCount = 1
			}
			r.Skip(1)
			r.Skip(10 * (int64(angleCount) - 1))
		}

		if err := decodeStreamTable(r, known, &pl.Streams); err != nil {
			return nil, err
		}

		pl.Items = append(pl.Items, item)
	}

	if pl.Duration == 0 {
		return nil, fmt.Errorf("%w: zero total duration", ErrStructure)
	}

	return pl, nil
}
