package models

import (
	"fmt"
	"strings"
)

// Slugify derives a URL-safe identifier from a title or name: lowercase,
// runs of non-alphanumeric characters collapse to a single hyphen, leading
// and trailing hyphens are trimmed.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

const wordsPerMinute = 200

// ReadTime estimates how long a post takes to read, never under a minute.
func ReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
