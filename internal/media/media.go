package media

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"inkpad/internal/logs"
)

// Library manages the app-private media directory: imported images,
// recorded audio and exported drawings all live here, named by timestamp.
type Library struct {
	dir string
}

func NewLibrary(dir string) (*Library, error) {
	if dir == "" {
		return nil, fmt.Errorf("empty media dir")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Library{dir: dir}, nil
}

// Dir returns the media directory path.
func (l *Library) Dir() string {
	return l.dir
}

func (l *Library) stampedPath(prefix, ext string) string {
	name := fmt.Sprintf("%s_%d%s", prefix, time.Now().UnixMilli(), ext)
	return filepath.Join(l.dir, name)
}

// Import copies a user-selected image into app-private storage and returns
// the new path.
func (l *Library) Import(src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	dst := l.stampedPath("image", filepath.Ext(src))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("copying %s: %w", src, err)
	}
	return dst, nil
}

// SaveRaster PNG-encodes a drawing export into the media dir and returns
// the file path.
func (l *Library) SaveRaster(img image.Image) (string, error) {
	dst := l.stampedPath("drawing", ".png")
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("encoding %s: %w", dst, err)
	}
	return dst, nil
}

// Discard deletes a media file in the background, best-effort. Failures are
// logged and never surfaced; UI state has already moved on.
func Discard(path string) {
	if path == "" {
		return
	}
	go func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logs.Logger.Printf("Error deleting media file %s: %v", path, err)
		}
	}()
}
