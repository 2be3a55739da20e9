package ingest

import (
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/om-scorecard/constants"
)

// AllowedExt reports whether ext names a document a scorecard can be built from.
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}

// Candidate reports whether path should be picked up: an allowed extension
// and not a hidden or editor-temporary file.
func Candidate(path string) bool {
	base := filepath.Base(path)
	if IsHidden(base) || strings.HasPrefix(base, "~$") {
		return false
	}
	return AllowedExt(filepath.Ext(base))
}
