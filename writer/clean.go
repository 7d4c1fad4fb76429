package writer

import (
	"os"
	"path/filepath"
	"strings"
)

// Clean recursively removes all generated files beneath root, as identified
// by the inserted marker, and removes directories left empty afterwards.
// Handwritten files are never touched.
func Clean(root string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		sub := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			if err := Clean(sub); err != nil {
				return err
			}
			rest, err := os.ReadDir(sub)
			if err != nil {
				return err
			}
			if len(rest) == 0 {
				if err := os.Remove(sub); err != nil {
					return err
				}
			}
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(sub)
		if err != nil {
			return err
		}
		if strings.Contains(string(data), markerLine()) {
			if err := os.Remove(sub); err != nil {
				return err
			}
		}
	}
	return nil
}
