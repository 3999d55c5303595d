package bdmv

// StreamType is the elementary stream coding type tag carried by each
// stream entry of the STN table.
type StreamType uint8

const (
	StreamTypeUnknown               StreamType = 0x00
	StreamTypeMPEG1Video            StreamType = 0x01
	StreamTypeMPEG2Video            StreamType = 0x02
	StreamTypeAVCVideo              StreamType = 0x1b
	StreamTypeMVCVideo              StreamType = 0x20
	StreamTypeHEVCVideo             StreamType = 0x24
	StreamTypeVC1Video              StreamType = 0xea
	StreamTypeMPEG1Audio            StreamType = 0x03
	StreamTypeMPEG2Audio            StreamType = 0x04
	StreamTypeMPEG2AACAudio         StreamType = 0x0f
	StreamTypeMPEG4AACAudio         StreamType = 0x11
	StreamTypeLPCMAudio             StreamType = 0x80
	StreamTypeAC3Audio              StreamType = 0x81
	StreamTypeDTSAudio              StreamType = 0x82
	StreamTypeTrueHDAudio           StreamType = 0x83
	StreamTypeAC3PlusAudio          StreamType = 0x84
	StreamTypeDTSHDAudio            StreamType = 0x85
	StreamTypeDTSHDMasterAudio      StreamType = 0x86
	StreamTypeAC3PlusSecondaryAudio StreamType = 0xa1
	StreamTypeDTSHDSecondaryAudio   StreamType = 0xa2
	StreamTypePresentationGraphics  StreamType = 0x90
	StreamTypeInteractiveGraphics   StreamType = 0x91
	StreamTypeSubtitle              StreamType = 0x92
)

func (t StreamType) String() string {
	switch t {
	case StreamTypeMPEG1Video:
		return "MPEG-1 Video"
	case StreamTypeMPEG2Video:
		return "MPEG-2 Video"
	case StreamTypeAVCVideo:
		return "MPEG-4 AVC Video"
	case StreamTypeMVCVideo:
		return "MPEG-4 MVC Video"
	case StreamTypeHEVCVideo:
		return "MPEG-H HEVC Video"
	case StreamTypeVC1Video:
		return "VC-1 Video"
	case StreamTypeMPEG1Audio:
		return "MPEG-1 Audio"
	case StreamTypeMPEG2Audio:
		return "MPEG-2 Audio"
	case StreamTypeMPEG2AACAudio:
		return "MPEG-2 AAC Audio"
	case StreamTypeMPEG4AACAudio:
		return "MPEG-4 AAC Audio"
	case StreamTypeLPCMAudio:
		return "LPCM Audio"
	case StreamTypeAC3Audio:
		return "Dolby Digital Audio"
	case StreamTypeDTSAudio:
		return "DTS Audio"
	case StreamTypeTrueHDAudio:
		return "Dolby TrueHD Audio"
	case StreamTypeAC3PlusAudio:
		return "Dolby Digital Plus Audio"
	case StreamTypeDTSHDAudio:
		return "DTS-HD Audio"
	case StreamTypeDTSHDMasterAudio:
		return "DTS-HD Master Audio"
	case StreamTypeAC3PlusSecondaryAudio:
		return "Dolby Digital Plus Secondary Audio"
	case StreamTypeDTSHDSecondaryAudio:
		return "DTS-HD Secondary Audio"
	case StreamTypePresentationGraphics:
		return "Presentation Graphics"
	case StreamTypeInteractiveGraphics:
		return "Interactive Graphics"
	case StreamTypeSubtitle:
		return "Subtitle"
	}
	return "Unknown"
}

// VideoFormat is the picture format code from the high nibble of the video
// attribute byte.
type VideoFormat uint8

const (
	VideoFormatUnknown VideoFormat = 0
	VideoFormat480i    VideoFormat = 1
	VideoFormat576i    VideoFormat = 2
	VideoFormat480p    VideoFormat = 3
	VideoFormat1080i   VideoFormat = 4
	VideoFormat720p    VideoFormat = 5
	VideoFormat1080p   VideoFormat = 6
	VideoFormat576p    VideoFormat = 7
	VideoFormat2160p   VideoFormat = 8
)

func (f VideoFormat) String() string {
	switch f {
	case VideoFormat480i:
		return "480i"
	case VideoFormat576i:
		return "576i"
	case VideoFormat480p:
		return "480p"
	case VideoFormat1080i:
		return "1080i"
	case VideoFormat720p:
		return "720p"
	case VideoFormat1080p:
		return "1080p"
	case VideoFormat576p:
		return "576p"
	case VideoFormat2160p:
		return "2160p"
	}
	return "Unknown"
}

// FrameRate is the frame-rate code from the low nibble of the video
// attribute byte.
type FrameRate uint8

const (
	FrameRateUnknown FrameRate = 0
	FrameRate23976   FrameRate = 1
	FrameRate24      FrameRate = 2
	FrameRate25      FrameRate = 3
	FrameRate2997    FrameRate = 4
	FrameRate50      FrameRate = 6
	FrameRate5994    FrameRate = 7
)

func (f FrameRate) String() string {
	switch f {
	case FrameRate23976:
		return "23.976"
	case FrameRate24:
		return "24"
	case FrameRate25:
		return "25"
	case FrameRate2997:
		return "29.97"
	case FrameRate50:
		return "50"
	case FrameRate5994:
		return "59.94"
	}
	return "Unknown"
}

// ChannelLayout is the speaker layout code from the high nibble of the
// audio attribute byte.
type ChannelLayout uint8

const (
	ChannelLayoutUnknown ChannelLayout = 0
	ChannelLayoutMono    ChannelLayout = 1
	ChannelLayoutStereo  ChannelLayout = 3
	ChannelLayoutMulti   ChannelLayout = 6
	ChannelLayoutCombo   ChannelLayout = 12
)

func (c ChannelLayout) String() string {
	switch c {
	case ChannelLayoutMono:
		return "Mono"
	case ChannelLayoutStereo:
		return "Stereo"
	case ChannelLayoutMulti:
		return "Multi"
	case ChannelLayoutCombo:
		return "Combo"
	}
	return "Unknown"
}

// SampleRate is the sample-rate code from the low nibble of the audio
// attribute byte.
type SampleRate uint8

const (
	SampleRateUnknown SampleRate = 0
	SampleRate48      SampleRate = 1
	SampleRate96      SampleRate = 4
	SampleRate192     SampleRate = 5
	SampleRate48192   SampleRate = 12
	SampleRate4896    SampleRate = 14
)

func (s SampleRate) String() string {
	switch s {
	case SampleRate48:
		return "48 kHz"
	case SampleRate96:
		return "96 kHz"
	case SampleRate192:
		return "192 kHz"
	case SampleRate48192:
		return "48/192 kHz"
	case SampleRate4896:
		return "48/96 kHz"
	}
	return "Unknown"
}

// StreamClass is the coarse classification derived from decoded attributes,
// never stored in the file itself.
type StreamClass uint8

const (
	ClassSubtitle StreamClass = iota
	ClassVideo
	ClassAudio
)

func (c StreamClass) String() string {
	switch c {
	case ClassVideo:
		return "Video"
	case ClassAudio:
		return "Audio"
	}
	return "Subtitle"
}

// Stream describes one elementary stream of a playlist. PID is the unique
// key within the playlist; the attribute fields are populated only for the
// coding types that carry them.
type Stream struct {
	PID      uint16
	Type     StreamType
	Language string

	VideoFormat VideoFormat
	FrameRate   FrameRate

	ChannelLayout ChannelLayout
	SampleRate    SampleRate
}

// Class derives {Video, Audio, Subtitle} from which attribute group was
// decoded: a video format means video, a channel layout means audio,
// everything else is treated as a subtitle stream.
func (s Stream) Class() StreamClass {
	if s.VideoFormat != VideoFormatUnknown {
		return ClassVideo
	}
	if s.ChannelLayout != ChannelLayoutUnknown {
		return ClassAudio
	}
	return ClassSubtitle
}
