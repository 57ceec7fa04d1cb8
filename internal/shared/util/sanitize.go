package util

import (
	"path/filepath"
	"strings"
	"unicode"
)

const untitled = "untitled.txt"

// CleanFileName reduces an uploaded file name to a safe display name: the
// final path element with control characters removed.
func CleanFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || name == "/" {
		return untitled
	}
	return name
}
