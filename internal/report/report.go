package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/mbakke/go-bdcat/internal/bdmv"
	"github.com/mbakke/go-bdcat/internal/util"
)

// Render writes the human-readable catalogue listing: every title with its
// duration, the media segments it plays, and its stream inventory.
func Render(w io.Writer, catalog *bdmv.Catalog) error {
	for _, pl := range catalog.Playlists {
		if err := renderPlaylist(w, pl); err != nil {
			return err
		}
	}
	return nil
}

// RenderMain writes only the longest title.
func RenderMain(w io.Writer, catalog *bdmv.Catalog) error {
	main := catalog.MainTitle()
	if main == nil {
		return nil
	}
	return renderPlaylist(w, main)
}

func renderPlaylist(w io.Writer, pl *bdmv.Playlist) error {
	if _, err := fmt.Fprintf(w, "\nPlaylist: %s, duration: %s\n", filepath.Base(pl.Name), util.FormatPTS(pl.Duration)); err != nil {
		return err
	}
	fmt.Fprintf(w, "  Segments:\n")
	for _, item := range pl.Items {
		fmt.Fprintf(w, "    %s  [%s - %s] at %s\n",
			filepath.Base(item.FileName),
			util.FormatPTS(item.StartPTS), util.FormatPTS(item.EndPTS),
			util.FormatPTS(item.StartTime))
	}
	fmt.Fprintf(w, "  Streams:\n")
	for _, s := range pl.Streams {
		fmt.Fprintf(w, "    PID %d: %s (%s%s)%s\n",
			s.PID, s.Type, s.Class(), streamAttributes(s), streamLanguage(s))
	}
	return nil
}

func streamAttributes(s bdmv.Stream) string {
	switch s.Class() {
	case bdmv.ClassVideo:
		return fmt.Sprintf(" %s@%s", s.VideoFormat, s.FrameRate)
	case bdmv.ClassAudio:
		return fmt.Sprintf(" %s %s", s.ChannelLayout, s.SampleRate)
	}
	return ""
}

func streamLanguage(s bdmv.Stream) string {
	if s.Language == "" {
		return ""
	}
	return fmt.Sprintf(", language: %s", s.Language)
}

// jsonStream mirrors bdmv.Stream with rendered attribute names so the JSON
// output is stable and self-describing.
type jsonStream struct {
	PID           uint16 `json:"pid"`
	Type          string `json:"type"`
	Class         string `json:"class"`
	Language      string `json:"language,omitempty"`
	VideoFormat   string `json:"videoFormat,omitempty"`
	FrameRate     string `json:"frameRate,omitempty"`
	ChannelLayout string `json:"channelLayout,omitempty"`
	SampleRate    string `json:"sampleRate,omitempty"`
}

type jsonItem struct {
	FileName  string `json:"fileName"`
	StartPTS  uint64 `json:"startPts"`
	EndPTS    uint64 `json:"endPts"`
	StartTime uint64 `json:"startTime"`
}

type jsonPlaylist struct {
	Name       string       `json:"name"`
	DurationMS uint64       `json:"durationMs"`
	Items      []jsonItem   `json:"items"`
	Streams    []jsonStream `json:"streams"`
}

// RenderJSON writes the catalogue as an indented JSON array of titles.
func RenderJSON(w io.Writer, catalog *bdmv.Catalog) error {
	out := make([]jsonPlaylist, 0, len(catalog.Playlists))
	for _, pl := range catalog.Playlists {
		jp := jsonPlaylist{
			Name:       filepath.Base(pl.Name),
			DurationMS: pl.Duration.Milliseconds(),
			Items:      make([]jsonItem, 0, len(pl.Items)),
			Streams:    make([]jsonStream, 0, len(pl.Streams)),
		}
		for _, item := range pl.Items {
			jp.Items = append(jp.Items, jsonItem{
				FileName:  item.FileName,
				StartPTS:  uint64(item.StartPTS),
				EndPTS:    uint64(item.EndPTS),
				StartTime: uint64(item.StartTime),
			})
		}
		for _, s := range pl.Streams {
			js := jsonStream{
				PID:      s.PID,
				Type:     s.Type.String(),
				Class:    s.Class().String(),
				Language: s.Language,
			}
			switch s.Class() {
			case bdmv.ClassVideo:
				js.VideoFormat = s.VideoFormat.String()
				js.FrameRate = s.FrameRate.String()
			case bdmv.ClassAudio:
				js.ChannelLayout = s.ChannelLayout.String()
				js.SampleRate = s.SampleRate.String()
			}
			jp.Streams = append(jp.Streams, js)
		}
		out = append(out, jp)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
