package constants

import "strings"

// AllowedExtensions holds the text-dump extensions accepted for ingestion.
// The OCR step runs upstream; this service only ever sees its text output.
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"text": {},
	"log":  {},
	"csv":  {},
	"tsv":  {},
	"dat":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
