// Package services holds the static map of daemon service groups. The
// installer uses it to recognize service shim names in a link manifest.
package services
