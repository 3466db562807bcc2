package domain

// FileData is a file the API inlines as a base64 data URL instead of serving it by path.
type FileData struct {
	Data     string `json:"data"` // data:<mime>;base64,...
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
	Filename string `json:"filename"`
}

// InlineOr returns the inline data URL when present, else fallback.
func InlineOr(f *FileData, fallback string) string {
	if f != nil && f.Data != "" {
		return f.Data
	}
	return fallback
}
