package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSymlink(t *testing.T) {
	tmp := t.TempDir()

	target := filepath.Join(tmp, "daemon")
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(tmp, "hydrangea")
	if err := Symlink(target, link); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	data, err := os.ReadFile(link)
	if err != nil {
		t.Fatalf("reading through link: %v", err)
	}
	if string(data) != "#!/bin/sh\n" {
		t.Errorf("link content = %q, want target content", string(data))
	}
}

func TestSymlinkExistingLinkFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("copy fallback overwrites on Windows")
	}
	tmp := t.TempDir()

	target := filepath.Join(tmp, "daemon")
	if err := os.WriteFile(target, []byte("x"), 0755); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(tmp, "hydrangea")
	if err := Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	if err := Symlink(target, link); err == nil {
		t.Error("expected second Symlink over existing link to fail")
	}
}

func TestRemove(t *testing.T) {
	tmp := t.TempDir()

	target := filepath.Join(tmp, "daemon")
	if err := os.WriteFile(target, []byte("x"), 0755); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(tmp, "hydrangea")
	if err := Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	if err := Remove(link); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Lstat(link); !os.IsNotExist(err) {
		t.Error("link still exists after Remove")
	}
}

func TestReadlink(t *testing.T) {
	tmp := t.TempDir()

	target := filepath.Join(tmp, "daemon")
	if err := os.WriteFile(target, []byte("x"), 0755); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(tmp, "hydrangea")
	if err := Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	got, err := Readlink(link)
	if err != nil {
		t.Fatalf("Readlink failed: %v", err)
	}
	if got != target {
		t.Errorf("Readlink = %q, want %q", got, target)
	}
}

func TestReadlinkDanglingTarget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("dangling links require native symlinks")
	}
	tmp := t.TempDir()

	// Link to a target that does not exist. Readlink must still work.
	link := filepath.Join(tmp, "hydrangea")
	if err := Symlink(filepath.Join(tmp, "gone"), link); err != nil {
		t.Fatal(err)
	}

	got, err := Readlink(link)
	if err != nil {
		t.Fatalf("Readlink on dangling link: %v", err)
	}
	if got != filepath.Join(tmp, "gone") {
		t.Errorf("Readlink = %q, want %q", got, filepath.Join(tmp, "gone"))
	}
}

func TestIsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires native symlinks")
	}
	tmp := t.TempDir()

	regular := filepath.Join(tmp, "regular")
	if err := os.WriteFile(regular, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(tmp, "link")
	if err := os.Symlink(regular, link); err != nil {
		t.Fatal(err)
	}

	if ok, err := IsSymlink(link); err != nil || !ok {
		t.Errorf("IsSymlink(link) = %v, %v; want true, nil", ok, err)
	}
	if ok, err := IsSymlink(regular); err != nil || ok {
		t.Errorf("IsSymlink(regular) = %v, %v; want false, nil", ok, err)
	}
}

func TestSymlinksSupported(t *testing.T) {
	if runtime.GOOS != "windows" && !SymlinksSupported() {
		t.Error("SymlinksSupported returned false on Unix")
	}
}

func TestWritable(t *testing.T) {
	tmp := t.TempDir()
	if !Writable(tmp) {
		t.Errorf("Writable(%q) = false, want true", tmp)
	}
	if Writable(filepath.Join(tmp, "does-not-exist")) {
		t.Error("Writable on missing dir = true, want false")
	}
}
