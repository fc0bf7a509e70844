package validation

import (
	"fmt"
	"path"
	"strings"
	"unicode"
)

// IsValidQuestion reports whether a chat message looks like a real
// question rather than gibberish or keyboard mashing. The check is
// deliberately lenient; a slightly odd question should reach the model
// rather than be rejected here.
func IsValidQuestion(message string) bool {
	trimmed := strings.TrimSpace(message)
	if len(trimmed) < 3 || len(trimmed) > 10000 {
		return false
	}

	letters, digits, punct, total := 0, 0, 0, 0
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		case unicode.IsPunct(r):
			punct++
		}
	}
	if total == 0 {
		return false
	}
	if float64(letters)/float64(total) < 0.3 {
		return false
	}
	if float64(digits)/float64(total) > 0.5 {
		return false
	}
	if float64(punct)/float64(total) > 0.3 {
		return false
	}
	if hasLongRun(trimmed, 4) {
		return false
	}

	words := strings.Fields(trimmed)
	if len(words) < 2 {
		// A single word passes only when it carries some variety.
		return len(words) == 1 && len(words[0]) >= 3 && !hasLongRun(words[0], 3)
	}
	return true
}

// hasLongRun reports n or more consecutive identical characters.
func hasLongRun(s string, n int) bool {
	run := 0
	var last rune
	for i, r := range s {
		if i > 0 && r == last {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		last = r
	}
	return false
}

// Upload file extensions accepted by the dataset upload endpoint.
var allowedUploadExts = map[string]bool{
	".csv": true,
	".tsv": true,
}

// CheckUploadFile validates an uploaded dataset file's extension and
// size before any parsing happens.
func CheckUploadFile(filename string, size, maxBytes int64) error {
	ext := strings.ToLower(path.Ext(filename))
	if !allowedUploadExts[ext] {
		return fmt.Errorf("unsupported file type %q, upload a .csv or .tsv file", ext)
	}
	if size <= 0 {
		return fmt.Errorf("uploaded file is empty")
	}
	if maxBytes > 0 && size > maxBytes {
		return fmt.Errorf("file is too large (%d bytes), the limit is %d bytes", size, maxBytes)
	}
	return nil
}
