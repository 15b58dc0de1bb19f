package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Supported image extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// IsImage reports whether name has a supported image extension
// (case-insensitive). A bare extension such as ".png" is a dotfile with no
// extension and does not count.
func IsImage(name string) bool {
	ext := filepath.Ext(name)
	if ext == name {
		return false
	}
	return imageExtensions[strings.ToLower(ext)]
}

// Discover lists the direct entries of inputDir and returns the paths of
// regular files with image extensions, sorted by name. Symlinks count when
// they resolve to a regular file. Subdirectories are not descended into and
// never selected, nor are dangling links, pipes, or devices.
func Discover(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !IsImage(e.Name()) {
			continue
		}
		path := filepath.Join(inputDir, e.Name())
		mode := e.Type()
		if mode&fs.ModeSymlink != 0 {
			fi, err := os.Stat(path)
			if err != nil {
				continue
			}
			mode = fi.Mode().Type()
		}
		if !mode.IsRegular() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}
