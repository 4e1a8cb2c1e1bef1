package domain

type OutputMode string

const (
	GifMode OutputMode = "gif"
	Mp4Mode OutputMode = "mp4"
)

const (
	GifFileName     = "animated.gif"
	Mp4FileName     = "animated.mp4"
	ArchiveFileName = "inputs.zip"
)

func (m OutputMode) MediaFileName() string {
	if m == Mp4Mode {
		return Mp4FileName
	}
	return GifFileName
}

// ValidatedURL is an input URL that passed the reachability probe.
// FrameIndex is its position within the validated subsequence and is the
// number its frame file gets named after.
type ValidatedURL struct {
	URL        string
	InputIndex int
	FrameIndex int
}

// FrameSlot is the fetch outcome for one validated URL. FileName is empty
// when the download failed.
type FrameSlot struct {
	FrameIndex int
	InputIndex int
	URL        string
	FileName   string
}

func (f FrameSlot) Fetched() bool {
	return f.FileName != ""
}

type PipelineResult struct {
	MediaFileName   string
	ArchiveFileName string
	PublishedKey    string
	PublishedRegion string
	FrameCount      int
}
