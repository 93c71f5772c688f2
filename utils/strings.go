package utils

import (
	"regexp"
	"strings"
)

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	headerSeparators = strings.NewReplacer("_", "", " ", "", "-", "")
)

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	cleaned := invalidFileChars.ReplaceAllString(filename, "_")
	cleaned = strings.TrimSpace(cleaned)
	return whitespaceRun.ReplaceAllString(cleaned, "_")
}

// NormalizeHeader collapses a spreadsheet column header for fuzzy matching:
// lowercase, separators stripped ("Nombre del Dueño " -> "nombredeldueño").
func NormalizeHeader(header string) string {
	return headerSeparators.Replace(strings.ToLower(strings.TrimSpace(header)))
}
