// Package paths resolves the filesystem locations the installer touches:
// the unpacked application prefix, the executable search directory, and
// the user's Hydrangea root. Every location honors a HYDRANGEA_* env
// override so tests and non-standard installs can redirect it.
package paths
