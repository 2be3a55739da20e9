package constants

import "strings"

// Format is the document kind a source resolves to.
type Format string

const (
	PDF  Format = "PDF"
	TEXT Format = "TXT"
)

// AllowedExtensions holds the file extensions accepted for scorecard builds.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the Format for an extension, or "" when unsupported.
func MapExtToFormat(ext string) Format {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "txt", "text":
		return TEXT
	default:
		return ""
	}
}
