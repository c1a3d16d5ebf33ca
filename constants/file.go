package constants

import "strings"

// DocumentFormat classifies how a source document is handled by the pipeline.
type DocumentFormat string

const (
	PDF         DocumentFormat = "PDF"
	IMAGE       DocumentFormat = "IMAGE"
	SPREADSHEET DocumentFormat = "SPREADSHEET"
)

// AllowedExtensions holds the default allowed file extensions for menu documents.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
	"xlsx": {},
	"csv":  {},
}

// MapMIMEToFormat resolves a declared MIME type to a handling format.
// Unknown types fall back to IMAGE, since the vision model accepts raw bytes.
func MapMIMEToFormat(mimeType string) DocumentFormat {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case mt == "application/pdf":
		return PDF
	case strings.HasPrefix(mt, "image/"):
		return IMAGE
	case mt == "text/csv",
		mt == "application/vnd.ms-excel",
		mt == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return SPREADSHEET
	default:
		return IMAGE
	}
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ExtForMIME returns a scratch-file extension for a declared MIME type.
func ExtForMIME(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "application/pdf":
		return ".pdf"
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "text/csv":
		return ".csv"
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return ".xlsx"
	default:
		return ".bin"
	}
}
