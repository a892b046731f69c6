// Package manifest parses and validates the link manifest (links.yaml)
// shipped inside the package payload. The manifest declares which names in
// the executable search directory should point at the bundled daemon.
package manifest
