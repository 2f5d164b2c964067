package system

import (
	"os"
	"path/filepath"
)

// ExecutableDir returns the directory that holds the running binary,
// independent of the shell's working directory.
func ExecutableDir() (string, error) {
	path, err := os.Executable()

	if err != nil {
		return "", err
	}

	path, err = filepath.EvalSymlinks(path)

	if err != nil {
		return "", err
	}

	return filepath.Abs(filepath.Dir(path))
}
