package bdmv

// decodeStreamTable walks the stream-number table of one playlist item and
// appends the streams it discovers to streams, deduplicating by PID across
// every category block and every item of the playlist via known.
//
// The category counts are single bytes, so a hostile file can force at most
// 255 entries per category.
func decodeStreamTable(r *Reader, known map[uint16]struct{}, streams *[]Stream) error {
	r.Skip(4)

	var counts [7]int
	for i := range counts {
		c, err := r.ReadByte()
		if err != nil {
			return err
		}
		counts[i] = int(c)
	}
	numVideo, numAudio, numPG, numIG := counts[0], counts[1], counts[2], counts[3]
	numSecondaryAudio, numSecondaryVideo, numPIPPG := counts[4], counts[5], counts[6]

	r.Skip(5)

	decode := func() error {
		s, ok, err := decodeStreamInfo(r, known)
		if err != nil {
			return err
		}
		if ok {
			known[s.PID] = struct{}{}
			*streams = append(*streams, s)
		}
		return nil
	}

	for i := 0; i < numVideo; i++ {
		if err := decode(); err != nil {
			return err
		}
	}
	for i := 0; i < numAudio; i++ {
		if err := decode(); err != nil {
			return err
		}
	}
	// PiP presentation graphics entries follow the regular PG block.
	for i := 0; i < numPG+numPIPPG; i++ {
		if err := decode(); err != nil {
			return err
		}
	}
	for i := 0; i < numIG; i++ {
		if err := decode(); err != nil {
			return err
		}
	}
	for i := 0; i < numSecondaryAudio; i++ {
		if err := decode(); err != nil {
			return err
		}
		if err := skipExtraAttributes(r); err != nil {
			return err
		}
	}
	for i := 0; i < numSecondaryVideo; i++ {
		if err := decode(); err != nil {
			return err
		}
		// Two extra-attribute blocks: associated secondary audio, then
		// associated PiP presentation graphics.
		if err := skipExtraAttributes(r); err != nil {
			return err
		}
		if err := skipExtraAttributes(r); err != nil {
			return err
		}
	}

	return nil
}

// skipExtraAttributes skips one secondary-stream extra-attribute block: a
// count byte, a reserved byte, count attribute bytes, and a padding byte
// when the count is odd (entries are 2-byte aligned).
func skipExtraAttributes(r *Reader) error {
	count, err := r.ReadByte()
	if err != nil {
		return err
	}
	r.Skip(1)
	if count > 0 {
		r.Skip(int64(count))
		if count%2 == 1 {
			r.Skip(1)
		}
	}
	return nil
}
