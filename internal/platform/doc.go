// Package platform wraps the filesystem primitives that differ per OS.
package platform
