package platform

import (
	"os"
	"runtime"
)

// ExecutableMode is given to hook scripts.
const ExecutableMode os.FileMode = 0755

// Chmod sets file permissions. On Windows this is a no-op.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// MarkExecutable makes path readable and executable by everyone and
// writable by its owner.
func MarkExecutable(path string) error {
	return Chmod(path, ExecutableMode)
}
