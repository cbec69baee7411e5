package constants

import (
	"path/filepath"
	"strings"
)

type FileKind int

const (
	FileKindUnknown FileKind = 99
	FileKindAudio   FileKind = 2
	FileKindDoc     FileKind = 3
	FileKindPDF     FileKind = 4
	FileKindSlides  FileKind = 5
	FileKindImage   FileKind = 6
	FileKindSheet   FileKind = 7
	FileKindText    FileKind = 8
)

func DetectFileTypeFromExt(filename string) FileKind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3", ".wav":
		return FileKindAudio
	case ".doc", ".docx", ".odt":
		return FileKindDoc
	case ".pdf":
		return FileKindPDF
	case ".ppt", ".pptx":
		return FileKindSlides
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileKindImage
	case ".xls", ".xlsx", ".csv":
		return FileKindSheet
	case ".txt", ".md":
		return FileKindText
	default:
		return FileKindUnknown
	}
}
