// Package config manages user-level settings stored at
// ~/.hydrangea/config.yaml. It provides functions to load, read, and write
// configuration keys such as the bin dir override used by the link installer.
package config
