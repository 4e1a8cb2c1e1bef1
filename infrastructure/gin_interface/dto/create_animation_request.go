package dto

type CreateAnimationRequest struct {
	ImageURLs []string `json:"image_urls" binding:"required"`
	Mp4       bool     `json:"mp4"`
	Fps       float64  `json:"fps"`
	OutputZip bool     `json:"output_zip"`
}

type CreateAnimationResponse struct {
	RunID           string `json:"run_id"`
	MediaPath       string `json:"media_path"`
	ArchivePath     string `json:"archive_path,omitempty"`
	FrameCount      int    `json:"frame_count"`
	PublishedKey    string `json:"published_key,omitempty"`
	PublishedRegion string `json:"published_region,omitempty"`
}
