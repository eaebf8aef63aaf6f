package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Path represents a wrapper around a string to provide path manipulation methods.
type Path string

// Append adds a component to the path.
func (p Path) appendingPathComponent(component string) Path {
	return Path(filepath.Join(string(p), component))
}

// LastComponent returns the last component of the path.
func (p Path) lastPathComponent() string {
	return filepath.Base(string(p))
}

// RemovingLastPathComponent removes the last component from the path.
func (p Path) removingLastPathComponent() Path {
	return Path(filepath.Dir(string(p)))
}

// components splits the path into its ordered segments.
func (p Path) components() []string {
	cleaned := strings.Trim(filepath.ToSlash(string(p)), "/")
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, "/")
}

// IsDirectory checks if the path represents a directory.
func (p Path) isDirectory() bool {
	info, err := os.Stat(string(p))
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (p Path) extension() string {
	return strings.TrimPrefix(filepath.Ext(string(p)), ".")
}

func (p Path) removingPathExtension() Path {
	ext := p.extension()
	if ext == "" {
		return p
	}
	return Path(strings.TrimSuffix(string(p), "."+ext))
}

func (p Path) appendingPathExtension(ext string) Path {
	return Path(string(p) + "." + ext)
}

func (p Path) exists() bool {
	_, err := os.Lstat(string(p))
	return err == nil
}

var videoExtensions = []string{"mov", "m4v", "mkv", "avi", "mp4", "mpg", "wmv", "flv", "webm", "ts", "m2ts", "ogv", "3gp", "3g2"}
var subtitleExtensions = []string{"srt", "vtt", "ass", "ssa", "sub", "mks"}

func hasExtensionIn(p Path, extensions []string) bool {
	if strings.HasPrefix(p.lastPathComponent(), ".") {
		return false
	}
	ext := p.extension()
	for _, known := range extensions {
		if strings.EqualFold(ext, known) {
			return true
		}
	}
	return false
}

func (p Path) isVideoFile() bool {
	return hasExtensionIn(p, videoExtensions)
}

func (p Path) isSubtitleFile() bool {
	return hasExtensionIn(p, subtitleExtensions)
}

// collectLibraryFiles walks the library root and returns the relative
// paths of every video and subtitle file, in traversal order. The engine
// operates on this snapshot only; it never touches the filesystem again
// until the plan is applied.
func collectLibraryFiles(root Path) ([]Path, error) {
	var files []Path
	err := filepath.WalkDir(string(root), func(s string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(string(root), s)
		if err != nil {
			return err
		}
		path := Path(rel)
		if path.isVideoFile() || path.isSubtitleFile() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
