package media

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"inkpad/internal/drawing"
)

func TestNewLibraryCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "media")
	if _, err := NewLibrary(dir); err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("media dir not created: %v", err)
	}
}

func TestNewLibraryRejectsEmptyDir(t *testing.T) {
	if _, err := NewLibrary(""); err == nil {
		t.Error("NewLibrary(\"\") succeeded")
	}
}

func TestImportCopiesFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(src, []byte("fake png bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	lib, err := NewLibrary(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	dst, err := lib.Import(src)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if filepath.Dir(dst) != lib.Dir() {
		t.Errorf("import landed outside library: %s", dst)
	}
	if filepath.Ext(dst) != ".png" {
		t.Errorf("extension not preserved: %s", dst)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "fake png bytes" {
		t.Error("copied content differs from source")
	}
	// The source file is left in place.
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source removed by import: %v", err)
	}
}

func TestImportMissingSource(t *testing.T) {
	lib, err := NewLibrary(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := lib.Import(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Import of missing file succeeded")
	}
}

func TestSaveRasterWritesDecodablePNG(t *testing.T) {
	lib, err := NewLibrary(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path, err := lib.SaveRaster(drawing.NewSurface(32, 32))
	if err != nil {
		t.Fatalf("SaveRaster: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("exported file is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("decoded size = %v", img.Bounds())
	}
}

func TestDiscardRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio.wav")
	if err := os.WriteFile(path, []byte("riff"), 0644); err != nil {
		t.Fatal(err)
	}

	Discard(path)

	deadline := time.After(2 * time.Second)
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return
		}
		select {
		case <-deadline:
			t.Fatal("file still present after Discard")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDiscardEmptyPathIsNoop(t *testing.T) {
	Discard("")
}
