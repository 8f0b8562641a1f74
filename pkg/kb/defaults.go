package kb

// defaultCodecs is the curated ~80% codec catalog (§6, §9).
func defaultCodecs() []Codec {
	return []Codec{
		{Name: "h264", Aliases: []string{"libx264", "avc"}, Kind: Video,
			Containers: set("mp4", "mov", "mkv", "avi", "ts")},
		{Name: "hevc", Aliases: []string{"libx265", "h265"}, Kind: Video,
			Containers: set("mp4", "mov", "mkv", "ts")},
		{Name: "vp8", Aliases: []string{"libvpx"}, Kind: Video,
			Containers: set("webm", "mkv")},
		{Name: "vp9", Aliases: []string{"libvpx-vp9"}, Kind: Video,
			Containers: set("webm", "mkv")},
		{Name: "av1", Aliases: []string{"libaom-av1", "libsvtav1"}, Kind: Video,
			Containers: set("webm", "mkv", "mp4")},
		{Name: "mpeg4", Aliases: []string{"divx"}, Kind: Video,
			Containers: set("avi", "mp4", "mkv")},
		{Name: "mjpeg", Aliases: nil, Kind: Video,
			Containers: set("avi", "mkv", "mp4")},
		{Name: "prores", Aliases: []string{"prores_ks"}, Kind: Video,
			Containers: set("mov", "mkv")},

		{Name: "aac", Aliases: []string{"libfdk_aac"}, Kind: Audio,
			Containers: set("mp4", "mov", "mkv", "ts")},
		{Name: "mp3", Aliases: []string{"libmp3lame"}, Kind: Audio,
			Containers: set("mp3", "mp4", "mkv", "avi")},
		{Name: "opus", Aliases: []string{"libopus"}, Kind: Audio,
			Containers: set("webm", "mkv", "ogg")},
		{Name: "vorbis", Aliases: []string{"libvorbis"}, Kind: Audio,
			Containers: set("ogg", "webm", "mkv")},
		{Name: "flac", Aliases: nil, Kind: Audio,
			Containers: set("flac", "ogg", "mkv")},
		{Name: "pcm_s16le", Aliases: []string{"pcm"}, Kind: Audio,
			Containers: set("wav", "avi", "mkv")},
		{Name: "ac3", Aliases: []string{"eac3"}, Kind: Audio,
			Containers: set("mp4", "mov", "mkv", "avi", "ts")},

		{Name: "srt", Aliases: []string{"subrip"}, Kind: Subtitle,
			Containers: set("srt", "mkv")},
		{Name: "webvtt", Aliases: []string{"vtt"}, Kind: Subtitle,
			Containers: set("vtt", "webm", "mkv")},
		{Name: "ass", Aliases: []string{"ssa"}, Kind: Subtitle,
			Containers: set("ass", "mkv")},
		{Name: "mov_text", Aliases: nil, Kind: Subtitle,
			Containers: set("mp4", "mov")},
	}
}

// defaultContainers is the curated container catalog and its
// codec-compatibility matrix (§3, §6).
func defaultContainers() []Container {
	return []Container{
		{Name: "mp4", Extensions: []string{"mp4", "m4v"},
			Codecs: set("h264", "hevc", "av1", "mpeg4", "mjpeg", "aac", "mp3", "ac3", "mov_text")},
		{Name: "mov", Extensions: []string{"mov"},
			Codecs: set("h264", "hevc", "prores", "aac", "ac3", "mov_text")},
		{Name: "mkv", Extensions: []string{"mkv"},
			Codecs: set("h264", "hevc", "vp8", "vp9", "av1", "mpeg4", "mjpeg", "prores",
				"aac", "mp3", "opus", "vorbis", "flac", "pcm_s16le", "ac3",
				"srt", "webvtt", "ass")},
		{Name: "webm", Extensions: []string{"webm"},
			Codecs: set("vp8", "vp9", "av1", "opus", "vorbis", "webvtt")},
		{Name: "avi", Extensions: []string{"avi"},
			Codecs: set("h264", "mpeg4", "mjpeg", "mp3", "pcm_s16le", "ac3")},
		{Name: "ts", Extensions: []string{"ts", "m2ts"},
			Codecs: set("h264", "hevc", "aac", "ac3")},
		{Name: "mp3", Extensions: []string{"mp3"}, Codecs: set("mp3")},
		{Name: "wav", Extensions: []string{"wav"}, Codecs: set("pcm_s16le")},
		{Name: "flac", Extensions: []string{"flac"}, Codecs: set("flac")},
		{Name: "ogg", Extensions: []string{"ogg"}, Codecs: set("vorbis", "opus", "flac")},
		{Name: "srt", Extensions: []string{"srt"}, Codecs: set("srt")},
		{Name: "vtt", Extensions: []string{"vtt"}, Codecs: set("webvtt")},
		{Name: "ass", Extensions: []string{"ass"}, Codecs: set("ass")},
	}
}

// defaultFilters is the curated filter catalog: name, accepted stream kind,
// and minimal parameter shape (§3, §4.3 Pass A).
func defaultFilters() []Filter {
	return []Filter{
		{Name: "scale", Accepts: Video, Params: ParamShape{Positional: []string{"width", "height"}, KeyValue: []string{"w", "h", "flags"}}},
		{Name: "crop", Accepts: Video, Params: ParamShape{Positional: []string{"width", "height", "x", "y"}}},
		{Name: "rotate", Accepts: Video, Params: ParamShape{Positional: []string{"angle"}}},
		{Name: "hflip", Accepts: Video, Params: ParamShape{}},
		{Name: "vflip", Accepts: Video, Params: ParamShape{}},
		{Name: "transpose", Accepts: Video, Params: ParamShape{Positional: []string{"dir"}}},
		{Name: "fps", Accepts: Video, Params: ParamShape{Positional: []string{"fps"}}},
		{Name: "format", Accepts: Video, Params: ParamShape{Positional: []string{"pix_fmt"}}},
		{Name: "pad", Accepts: Video, Params: ParamShape{Positional: []string{"width", "height", "x", "y"}}},
		{Name: "overlay", Accepts: Video, Params: ParamShape{Positional: []string{"x", "y"}}},
		{Name: "drawtext", Accepts: Video, Params: ParamShape{KeyValue: []string{"text", "fontfile", "x", "y", "fontsize", "fontcolor"}}},
		{Name: "subtitles", Accepts: Video, Params: ParamShape{Positional: []string{"filename"}}},

		{Name: "volume", Accepts: Audio, Params: ParamShape{Positional: []string{"volume"}}},
		{Name: "atempo", Accepts: Audio, Params: ParamShape{Positional: []string{"tempo"}}},
		{Name: "loudnorm", Accepts: Audio, Params: ParamShape{KeyValue: []string{"i", "tp", "lra"}}},
		{Name: "highpass", Accepts: Audio, Params: ParamShape{KeyValue: []string{"f"}}},
		{Name: "lowpass", Accepts: Audio, Params: ParamShape{KeyValue: []string{"f"}}},
		{Name: "aformat", Accepts: Audio, Params: ParamShape{KeyValue: []string{"sample_fmts", "sample_rates", "channel_layouts"}}},
		{Name: "pan", Accepts: Audio, Params: ParamShape{Positional: []string{"layout"}}},
		{Name: "amix", Accepts: Audio, Params: ParamShape{KeyValue: []string{"inputs", "duration"}}},
		{Name: "aresample", Accepts: Audio, Params: ParamShape{Positional: []string{"rate"}}},
	}
}

// defaultExtensions is the extension -> default stream-set table (§4.2).
func defaultExtensions() map[string][]StreamKind {
	return map[string][]StreamKind{
		"mp4":  {Video, Audio},
		"mov":  {Video, Audio},
		"mkv":  {Video, Audio},
		"webm": {Video, Audio},
		"avi":  {Video, Audio},
		"ts":   {Video, Audio},
		"m2ts": {Video, Audio},

		"mp3":  {Audio},
		"wav":  {Audio},
		"flac": {Audio},
		"aac":  {Audio},
		"ogg":  {Audio},
		"opus": {Audio},

		"png":  {Video},
		"jpg":  {Video},
		"jpeg": {Video},
		"bmp":  {Video},
		"tiff": {Video},

		"srt": {Subtitle},
		"vtt": {Subtitle},
		"ass": {Subtitle},
	}
}

func set(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}
