package constants

import (
	"path/filepath"
	"strings"
)

const (
	FileTypeAudio   = 2
	FileTypeDocx    = 3
	FileTypePDF     = 4
	FileTypePPT     = 5
	FileTypeImage   = 6
	FileTypeUnknown = 99
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp3", ".wav":
		return FileTypeAudio
	case ".doc", ".docx":
		return FileTypeDocx
	case ".pdf":
		return FileTypePDF
	case ".ppt", ".pptx":
		return FileTypePPT
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileTypeImage
	default:
		return FileTypeUnknown
	}
}
