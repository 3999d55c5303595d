package bdcat

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPlaylist builds a one-item playlist playing the named clip for the
// given number of seconds, with one video and one audio stream.
func minimalPlaylist(clip string, seconds uint32) []byte {
	be16 := func(out []byte, v uint16) []byte { return append(out, byte(v>>8), byte(v)) }
	be32 := func(out []byte, v uint32) []byte {
		return append(out, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}

	stn := make([]byte, 4)
	stn = append(stn, 1, 1, 0, 0, 0, 0, 0)
	stn = append(stn, make([]byte, 5)...)
	stn = append(stn, 3, 1, 0x10, 0x11, 2, 0x1b, 0x61)                // video, 1080p@23.976
	stn = append(stn, 3, 1, 0x11, 0x00, 5, 0x81, 0x31, 'e', 'n', 'g') // AC-3 stereo 48 kHz

	body := []byte(clip + "M2TS")
	body = append(body, 0, 0, 0)
	body = be32(body, 0)
	body = be32(body, seconds*90000)
	body = append(body, make([]byte, 12)...)
	body = append(body, stn...)

	out := []byte("MPLS0100")
	out = be32(out, 16)
	out = append(out, make([]byte, 4)...)
	out = append(out, make([]byte, 6)...)
	out = be16(out, 1)
	out = append(out, 0, 0)
	out = append(out, be16(nil, uint16(len(body)))...)
	return append(out, body...)
}

func writeDisc(t *testing.T, playlists map[string][]byte) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "index.bdmv"), []byte("INDX0200"), 0o644))
	for _, dir := range []string{"CLIPINF", "PLAYLIST", "STREAM"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	for name, data := range playlists {
		require.NoError(t, os.WriteFile(filepath.Join(root, "PLAYLIST", name), data, 0o644))
	}
	return root
}

func TestRun(t *testing.T) {
	root := writeDisc(t, map[string][]byte{
		"00000.mpls": minimalPlaylist("00001", 5),
		"00001.mpls": minimalPlaylist("00002", 20),
		"00002.mpls": []byte("garbage"),
	})

	var stages []Stage
	result, err := Run(context.Background(), Options{
		Path: root,
		OnProgress: func(e ProgressEvent) {
			stages = append(stages, e.Stage)
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Titles, 2)
	assert.Greater(t, result.Titles[0].Duration, result.Titles[1].Duration, "titles sorted by descending duration")
	assert.Equal(t, result.Titles[0], result.MainTitle())

	assert.Contains(t, result.Skipped, "00002.mpls")
	assert.Contains(t, result.Report, "00000.mpls")
	assert.Contains(t, result.Report, "0:00:20.000")

	assert.Equal(t, []Stage{StageStarting, StageDecoding, StageDone}, stages)
}

func TestRun_PathRequired(t *testing.T) {
	_, err := Run(context.Background(), Options{})
	require.Error(t, err)
}

func TestRun_InvalidRoot(t *testing.T) {
	_, err := Run(context.Background(), Options{Path: t.TempDir()})
	require.Error(t, err)
}

func TestRun_CancelledContext(t *testing.T) {
	root := writeDisc(t, map[string][]byte{"00000.mpls": minimalPlaylist("00001", 5)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Path: root})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_VerifyClipFiles(t *testing.T) {
	root := writeDisc(t, map[string][]byte{
		"00000.mpls": minimalPlaylist("00001", 5),
		"00001.mpls": minimalPlaylist("00002", 20),
	})
	require.NoError(t, os.WriteFile(filepath.Join(root, "STREAM", "00001.M2TS"), []byte{0x47}, 0o644))

	result, err := Run(context.Background(), Options{Path: root, VerifyClipFiles: true})
	require.NoError(t, err)

	require.Len(t, result.Titles, 1)
	assert.Contains(t, result.Skipped, "00001.mpls")
}

func TestRun_SkipDuplicateTitles(t *testing.T) {
	identical := minimalPlaylist("00001", 5)
	root := writeDisc(t, map[string][]byte{
		"00000.mpls": identical,
		"00001.mpls": append([]byte(nil), identical...),
	})

	result, err := Run(context.Background(), Options{Path: root, SkipDuplicateTitles: true})
	require.NoError(t, err)
	assert.Len(t, result.Titles, 1)
}
