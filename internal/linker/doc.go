// Package linker creates and inspects the CLI symlinks a package install
// owns. Apply is best-effort: a link that cannot be created is reported,
// never fatal, so a package manager running the hook sees success.
package linker
