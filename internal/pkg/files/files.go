package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store keeps entity attachments under a base directory, photos and PDF
// documents in separate subdirectories. Rows reference attachments by
// the relative path Save* return, so the data directory stays portable.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) SavePhoto(hint string, data []byte) (string, error) {
	return s.save("photos", hint, data)
}

func (s *Store) SaveDocument(hint string, data []byte) (string, error) {
	return s.save("pdfs", hint, data)
}

func (s *Store) save(sub, hint string, data []byte) (string, error) {
	name, err := WriteDedup(filepath.Join(s.baseDir, sub), hint, data)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(sub, name)), nil
}

// Abs resolves a stored relative path against the base directory.
func (s *Store) Abs(rel string) string {
	if rel == "" {
		return ""
	}
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(rel))
}

// WriteDedup writes data into dir under a sanitized version of the
// filename hint. When the name is taken it probes name_1, name_2, ... and
// writes to the first free slot, so two uploads with the same hint never
// overwrite each other. Returns the stored file name.
//
// The probe is not atomic against concurrent writers of the same name;
// the attachment directory is single-writer in practice and the window
// only matters for identical hints in the same instant.
func WriteDedup(dir, hint string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	root, ext := splitHint(hint)
	name := root + ext
	target := filepath.Join(dir, name)
	for i := 1; ; i++ {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s_%d%s", root, i, ext)
		target = filepath.Join(dir, name)
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// splitHint strips any path component and reduces the base name to a safe
// character set; an empty result falls back to "file".
func splitHint(hint string) (root, ext string) {
	base := filepath.Base(hint)
	ext = filepath.Ext(base)
	root = strings.TrimSuffix(base, ext)

	root = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, root)
	root = strings.Trim(root, "._")
	if root == "" {
		root = "file"
	}
	return root, ext
}
