package jsonfile

import (
	"fmt"
	"os"
	"time"
)

// moveAside renames a corrupt task file to <path>.corrupt.<timestamp> so a
// later save cannot overwrite it. Returns the backup path.
func moveAside(path string, now time.Time) (string, error) {
	backupPath := fmt.Sprintf("%s.corrupt.%s", path, now.Format("20060102-150405"))

	if err := os.Rename(path, backupPath); err != nil {
		return "", fmt.Errorf("back up corrupt task file: %w", err)
	}

	return backupPath, nil
}
