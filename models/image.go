package models

// UploadedFile describes one successfully stored photo in an upload response.
type UploadedFile struct {
	Filename     string `json:"filename"`
	OriginalURL  string `json:"originalUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// GalleryImage is one stored photo in the gallery listing, grouped by the
// sanitized submitter name.
type GalleryImage struct {
	User         string `json:"user"`
	OriginalURL  string `json:"originalUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}
