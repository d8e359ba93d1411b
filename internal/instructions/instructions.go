package instructions

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Fallback is returned when an agent has no instructions file
const Fallback = "No instructions found for this agent."

// Load returns the contents of <dir>/<name>.hbs, or Fallback if it does not exist
func Load(dir, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, name+".hbs"))
	if errors.Is(err, fs.ErrNotExist) {
		return Fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read instructions for %s: %w", name, err)
	}
	return string(data), nil
}
