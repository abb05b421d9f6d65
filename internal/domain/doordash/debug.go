package doordash

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DumpLines writes the extracted text lines to {dir}/{messageID}.txt with
// zero-padded line indices for eyeballing scanner misses. An existing dump
// for the same message is left untouched.
func DumpLines(dir, messageID string, lines []string) error {
	path := filepath.Join(dir, messageID+".txt")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "LINE %03d  %s\n", i, line)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing line dump %s: %w", path, err)
	}
	return nil
}
