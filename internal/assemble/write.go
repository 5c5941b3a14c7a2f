package assemble

import (
	"fmt"
	"os"
)

// DefaultMode is the permission mode historically enforced on the generated
// files so the web server can serve them.
const DefaultMode os.FileMode = 0755

// WriteFile writes an output artifact and, when chmod is set, enforces the
// given permission bits on it.
func WriteFile(path string, data []byte, mode os.FileMode, chmod bool) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if chmod {
		if err := os.Chmod(path, mode); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", path, err)
		}
	}
	return nil
}
