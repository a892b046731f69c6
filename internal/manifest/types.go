package manifest

// Manifest declares the CLI links a package install creates.
type Manifest struct {
	Package string     `yaml:"package" json:"package"`
	Version string     `yaml:"version" json:"version"`
	Links   []LinkSpec `yaml:"links" json:"links"`
}

// LinkSpec describes one entry in the executable search directory.
type LinkSpec struct {
	// Name is the basename of the link, e.g. "hydrangea".
	Name string `yaml:"name" json:"name"`
	// Target is the path the link points at. Relative targets resolve
	// against the app prefix.
	Target string `yaml:"target" json:"target"`
}
