package bdmv

import (
	"testing"
)

// buildSTN assembles a stream-number table: reserved bytes, the seven
// category counts in file order, then the raw entry bytes. Secondary-stream
// extra-attribute blocks must be included in entries by the caller.
func buildSTN(counts [7]byte, entries ...[]byte) []byte {
	out := make([]byte, 4)
	out = append(out, counts[:]...)
	out = append(out, make([]byte, 5)...)
	for _, e := range entries {
		out = append(out, e...)
	}
	return out
}

// extraAttributes builds one secondary-stream extra-attribute block.
func extraAttributes(n int) []byte {
	out := []byte{byte(n), 0}
	out = append(out, make([]byte, n)...)
	if n%2 == 1 {
		out = append(out, 0)
	}
	return out
}

func videoEntry(pid uint16) []byte {
	return buildEntry(1, pid, byte(StreamTypeAVCVideo), []byte{0x61})
}

func audioEntry(pid uint16, lang string) []byte {
	return buildEntry(1, pid, byte(StreamTypeAC3Audio), append([]byte{0x31}, []byte(lang)...))
}

func pgEntry(pid uint16, lang string) []byte {
	return buildEntry(1, pid, byte(StreamTypePresentationGraphics), []byte(lang))
}

func decodeTable(t *testing.T, data []byte) []Stream {
	t.Helper()
	var streams []Stream
	if err := decodeStreamTable(NewSliceReader(data), map[uint16]struct{}{}, &streams); err != nil {
		t.Fatalf("decodeStreamTable() error = %v", err)
	}
	return streams
}

func TestDecodeStreamTable_CategoryOrder(t *testing.T) {
	data := buildSTN([7]byte{1, 2, 1, 1, 0, 0, 0},
		videoEntry(0x1011),
		audioEntry(0x1100, "eng"),
		audioEntry(0x1101, "jpn"),
		pgEntry(0x1200, "eng"),
		buildEntry(1, 0x1400, byte(StreamTypeInteractiveGraphics), []byte("eng")),
	)

	streams := decodeTable(t, data)
	wantPIDs := []uint16{0x1011, 0x1100, 0x1101, 0x1200, 0x1400}
	if len(streams) != len(wantPIDs) {
		t.Fatalf("len(streams) = %d, want %d", len(streams), len(wantPIDs))
	}
	for i, want := range wantPIDs {
		if streams[i].PID != want {
			t.Errorf("streams[%d].PID = %#x, want %#x", i, streams[i].PID, want)
		}
	}
}

func TestDecodeStreamTable_PIPGraphicsShareThePGLoop(t *testing.T) {
	// One regular PG stream and one PiP PG stream: both decoded in the
	// combined graphics loop.
	data := buildSTN([7]byte{0, 0, 1, 0, 0, 0, 1},
		pgEntry(0x1200, "eng"),
		pgEntry(0x1201, "fra"),
	)

	streams := decodeTable(t, data)
	if len(streams) != 2 {
		t.Fatalf("len(streams) = %d, want 2", len(streams))
	}
}

func TestDecodeStreamTable_DuplicatePIDFirstWins(t *testing.T) {
	// Same PID in the audio block and the graphics block: the second
	// record is walked but discarded.
	data := buildSTN([7]byte{0, 1, 1, 0, 0, 0, 0},
		audioEntry(0x1100, "eng"),
		pgEntry(0x1100, "fra"),
	)

	streams := decodeTable(t, data)
	if len(streams) != 1 {
		t.Fatalf("len(streams) = %d, want 1", len(streams))
	}
	if streams[0].Class() != ClassAudio {
		t.Errorf("Class() = %v, want Audio (first occurrence wins)", streams[0].Class())
	}
	if streams[0].Language != "eng" {
		t.Errorf("Language = %q, want eng", streams[0].Language)
	}
}

func TestDecodeStreamTable_SecondaryAudioExtraAttributes(t *testing.T) {
	tests := []struct {
		name  string
		extra int
	}{
		{"no extra attributes", 0},
		{"even count", 2},
		{"odd count gets padding", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The second secondary-audio entry only decodes cleanly
			// if the first one's extra-attribute block (padding
			// included) was skipped correctly.
			data := buildSTN([7]byte{0, 0, 0, 0, 2, 0, 0},
				audioEntry(0x1a00, "eng"),
				extraAttributes(tt.extra),
				audioEntry(0x1a01, "jpn"),
				extraAttributes(0),
			)

			streams := decodeTable(t, data)
			if len(streams) != 2 {
				t.Fatalf("len(streams) = %d, want 2", len(streams))
			}
			if streams[1].PID != 0x1a01 {
				t.Errorf("streams[1].PID = %#x, want 0x1a01", streams[1].PID)
			}
		})
	}
}

func TestDecodeStreamTable_SecondaryVideoReadsTwoExtraBlocks(t *testing.T) {
	data := buildSTN([7]byte{0, 0, 0, 0, 0, 2, 0},
		videoEntry(0x1b00),
		extraAttributes(3), // associated audio
		extraAttributes(1), // associated PiP PG
		videoEntry(0x1b01),
		extraAttributes(0),
		extraAttributes(0),
	)

	streams := decodeTable(t, data)
	if len(streams) != 2 {
		t.Fatalf("len(streams) = %d, want 2", len(streams))
	}
	if streams[1].PID != 0x1b01 {
		t.Errorf("streams[1].PID = %#x, want 0x1b01", streams[1].PID)
	}
}

func TestDecodeStreamTable_TruncatedCountsError(t *testing.T) {
	var streams []Stream
	err := decodeStreamTable(NewSliceReader([]byte{0, 0, 0, 0, 1}), map[uint16]struct{}{}, &streams)
	if err == nil {
		t.Fatal("expected error for truncated count block")
	}
}
