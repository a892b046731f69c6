package manifest

import (
	"path/filepath"
	"testing"
)

func TestValidateOK(t *testing.T) {
	result, err := Validate([]byte(`package: hydrangea
version: "1.0.0"
links:
  - name: hydrangea
    target: resources/app.asar.unpacked/daemon/hydrangea
`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %+v", result.Issues)
	}
}

func TestValidateEmbeddedDefault(t *testing.T) {
	result, err := Validate(defaultManifest)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("embedded default manifest failed validation: %+v", result.Issues)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing links", "package: hydrangea\nversion: \"1.0.0\"\n"},
		{"empty links", "package: hydrangea\nversion: \"1.0.0\"\nlinks: []\n"},
		{"bad version", "package: hydrangea\nversion: latest\nlinks:\n  - name: hydrangea\n    target: daemon/hydrangea\n"},
		{"bad link name", "package: hydrangea\nversion: \"1.0.0\"\nlinks:\n  - name: \"../../etc/passwd\"\n    target: daemon/hydrangea\n"},
		{"missing target", "package: hydrangea\nversion: \"1.0.0\"\nlinks:\n  - name: hydrangea\n"},
		{"unknown field", "package: hydrangea\nversion: \"1.0.0\"\nowner: root\nlinks:\n  - name: hydrangea\n    target: daemon/hydrangea\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if result.Valid {
				t.Error("expected validation to fail")
			}
			if len(result.Issues) == 0 {
				t.Error("expected at least one issue")
			}
		})
	}
}

func TestValidateIssuesCarryPaths(t *testing.T) {
	result, err := Validate([]byte(`package: hydrangea
version: "1.0.0"
links:
  - name: "bad name with spaces"
    target: daemon/hydrangea
`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("expected validation to fail")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/links/0/name" {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue at /links/0/name, got: %+v", result.Issues)
	}
}

func TestValidateFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "links.yaml")
	writeFile(t, path, `package: hydrangea
version: "1.0.0"
links:
  - name: hydrangea
    target: daemon/hydrangea
`)

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %+v", result.Issues)
	}
}

func TestValidateFileMissing(t *testing.T) {
	if _, err := ValidateFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
