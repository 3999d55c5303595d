package util

import (
	"fmt"

	"github.com/mbakke/go-bdcat/internal/bdmv"
)

// FormatPTS renders a playlist timestamp as h:mm:ss.mmm.
func FormatPTS(pts bdmv.PTS) string {
	ms := pts.Milliseconds()
	h := ms / (1000 * 60 * 60)
	m := (ms / (1000 * 60)) % 60
	s := (ms / 1000) % 60
	ms = ms % 1000
	return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, ms)
}
