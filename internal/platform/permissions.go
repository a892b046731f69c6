package platform

import (
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// Writable reports whether the current process can create entries in dir.
// A probe file is used rather than permission bits so ACLs, read-only
// mounts, and root-squash all give the right answer.
func Writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".hydrangea-write-test")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
