package bdmv

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Catalog is the result of one Parse call: every playlist that decoded
// cleanly, sorted by descending duration, plus the per-file errors of the
// playlists that did not.
type Catalog struct {
	Playlists []*Playlist

	// FileErrors maps playlist file names to the error that rejected
	// them. Rejections are not fatal to the catalogue.
	FileErrors map[string]error
}

// MainTitle returns the longest playlist, the usual pick for the main
// movie. The catalogue is duration-sorted, so this is the first entry.
func (c *Catalog) MainTitle() *Playlist {
	if len(c.Playlists) == 0 {
		return nil
	}
	return c.Playlists[0]
}

// Parse decodes every .mpls playlist under root/PLAYLIST into a fresh
// Catalog. The root must hold the standard disc layout (index.bdmv,
// CLIPINF, PLAYLIST, STREAM). Individual corrupt playlists are recorded in
// FileErrors and skipped; Parse fails only when the layout is wrong or no
// playlist decoded at all.
func Parse(root string, opts Options) (*Catalog, error) {
	for _, required := range []string{"index.bdmv", "CLIPINF", "PLAYLIST", "STREAM"} {
		if _, err := os.Stat(filepath.Join(root, required)); err != nil {
			return nil, fmt.Errorf("%w: missing %s under %s", ErrStructure, required, root)
		}
	}

	playlistDir := filepath.Join(root, "PLAYLIST")
	entries, err := os.ReadDir(playlistDir)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, playlistDir, err)
	}

	catalog := &Catalog{FileErrors: make(map[string]error)}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), ".mpls") {
			continue
		}
		pl, err := DecodePlaylist(filepath.Join(playlistDir, entry.Name()), root, opts)
		if err != nil {
			catalog.FileErrors[entry.Name()] = err
			continue
		}
		if opts.SkipDuplicateTitles && containsEqual(catalog.Playlists, pl) {
			continue
		}
		catalog.Playlists = append(catalog.Playlists, pl)
	}

	if len(catalog.Playlists) == 0 {
		return nil, fmt.Errorf("%w: no playable playlists under %s", ErrStructure, playlistDir)
	}

	// Ties keep encounter order, which os.ReadDir makes deterministic.
	sort.SliceStable(catalog.Playlists, func(i, j int) bool {
		return catalog.Playlists[i].Duration > catalog.Playlists[j].Duration
	})

	return catalog, nil
}

func containsEqual(playlists []*Playlist, pl *Playlist) bool {
	for _, accepted := range playlists {
		if accepted.Equal(pl) {
			return true
		}
	}
	return false
}
