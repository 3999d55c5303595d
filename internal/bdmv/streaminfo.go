package bdmv

import "fmt"

// decodeStreamInfo decodes one stream entry of the STN table. Both the
// PID-location header and the attribute block are length-prefixed, and the
// reader is always resynced to the declared end of each sub-record rather
// than to wherever the branch taken stopped reading. That keeps the cursor
// correct across unknown coding types and forward-compatible extensions.
//
// A PID already present in known is a repeated entry from another category
// block; its attribute bytes are skipped unread and ok is false.
func decodeStreamInfo(r *Reader, known map[uint16]struct{}) (s Stream, ok bool, err error) {
	length, err := r.ReadByte()
	if err != nil {
		return Stream{}, false, err
	}
	entryEnd := r.Position() + int64(length)

	// The entry type determines where the PID sits inside the header.
	entryType, err := r.ReadByte()
	if err != nil {
		return Stream{}, false, err
	}
	switch entryType {
	case 1:
	case 2, 4:
		r.Skip(2)
	case 3:
		r.Skip(1)
	default:
		return Stream{}, false, fmt.Errorf("%w: stream entry type %d", ErrFormat, entryType)
	}
	pid, err := r.ReadUint16()
	if err != nil {
		return Stream{}, false, err
	}
	r.Seek(entryEnd)

	length, err = r.ReadByte()
	if err != nil {
		return Stream{}, false, err
	}
	attrEnd := r.Position() + int64(length)

	if _, dup := known[pid]; dup {
		r.Seek(attrEnd)
		return Stream{}, false, nil
	}

	s.PID = pid
	typeTag, err := r.ReadByte()
	if err != nil {
		return Stream{}, false, err
	}
	s.Type = StreamType(typeTag)

	switch s.Type {
	case StreamTypeMPEG1Video, StreamTypeMPEG2Video, StreamTypeAVCVideo,
		StreamTypeMVCVideo, StreamTypeHEVCVideo, StreamTypeVC1Video:
		attr, err := r.ReadByte()
		if err != nil {
			return Stream{}, false, err
		}
		s.VideoFormat = VideoFormat(attr >> 4)
		s.FrameRate = FrameRate(attr & 0x0f)

	case StreamTypeMPEG1Audio, StreamTypeMPEG2Audio, StreamTypeLPCMAudio,
		StreamTypeAC3Audio, StreamTypeDTSAudio, StreamTypeTrueHDAudio,
		StreamTypeAC3PlusAudio, StreamTypeDTSHDAudio, StreamTypeDTSHDMasterAudio,
		StreamTypeAC3PlusSecondaryAudio, StreamTypeDTSHDSecondaryAudio:
		attr, err := r.ReadByte()
		if err != nil {
			return Stream{}, false, err
		}
		s.ChannelLayout = ChannelLayout(attr >> 4)
		s.SampleRate = SampleRate(attr & 0x0f)
		if s.Language, err = readLanguage(r); err != nil {
			return Stream{}, false, err
		}

	case StreamTypePresentationGraphics, StreamTypeInteractiveGraphics:
		if s.Language, err = readLanguage(r); err != nil {
			return Stream{}, false, err
		}

	case StreamTypeSubtitle:
		r.Skip(1)
		if s.Language, err = readLanguage(r); err != nil {
			return Stream{}, false, err
		}
	}

	r.Seek(attrEnd)
	return s, true, nil
}

func readLanguage(r *Reader) (string, error) {
	code, err := r.ReadBytes(3)
	if err != nil {
		return "", err
	}
	return string(code), nil
}
