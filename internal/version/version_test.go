package version

import (
	"testing"
	"time"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b    string
		want    int
		wantErr bool
	}{
		{"1.0.0", "1.0.1", -1, false},
		{"1.0.1", "1.0.0", 1, false},
		{"1.0.0", "1.0.0", 0, false},
		{"v1.2.0", "1.2.0", 0, false},
		{"2.0.0-rc1", "2.0.0", -1, false},
		{"garbage", "1.0.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q vs %q", tt.a, tt.b)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		previous, incoming, want string
	}{
		{"", "1.0.0", "install"},
		{"1.0.0", "1.1.0", "upgrade"},
		{"1.1.0", "1.0.0", "downgrade"},
		{"1.1.0", "1.1.0", "reinstall"},
		{"not-a-version", "1.0.0", "install"},
	}

	for _, tt := range tests {
		if got := Transition(tt.previous, tt.incoming); got != tt.want {
			t.Errorf("Transition(%q, %q) = %q, want %q", tt.previous, tt.incoming, got, tt.want)
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	dir := t.TempDir()

	in := &State{
		Package:     "hydrangea",
		Version:     "1.2.3",
		InstalledAt: time.Now().UTC().Truncate(time.Second),
		BinDir:      "/usr/bin",
	}
	if err := SaveState(dir, in); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	out, err := LoadState(dir)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if out == nil {
		t.Fatal("LoadState returned nil for existing state")
	}
	if out.Version != in.Version || out.Package != in.Package || out.BinDir != in.BinDir {
		t.Errorf("state round-trip mismatch: %+v", out)
	}
}

func TestLoadStateFirstInstall(t *testing.T) {
	state, err := LoadState(t.TempDir())
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if state != nil {
		t.Errorf("expected nil state on first install, got %+v", state)
	}
}

func TestSaveStateCreatesConfigDir(t *testing.T) {
	dir := t.TempDir() + "/nested/config"

	if err := SaveState(dir, &State{Package: "hydrangea", Version: "1.0.0"}); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if _, err := LoadState(dir); err != nil {
		t.Fatalf("LoadState after SaveState: %v", err)
	}
}
