// Copyright (c) 2026 Chaldea. All rights reserved.

/*
Package media implements the filesystem-backed blob store for uploaded
servant pictures and skill icons.

Layout under the configured root directory:

	<root>/servants/<servant_id>/asc<grade><ext>   ascension pictures
	<root>/skills/skill_<skill_id>_icon<ext>       skill icons

The store returns the written path; the database keeps that path as the
picture reference. File writes are NOT transactional with the corresponding
database row; a failed insert after a successful write leaves an orphan
file on disk, which is accepted (no two-phase cleanup).
*/
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Store writes uploaded blobs under a single root directory.
type Store struct {
	root string
}

// NewStore creates a blob store rooted at dir. The directory tree is created
// lazily on first write.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Check verifies the root directory exists and is creatable. Used by the
// readiness probe.
func (store *Store) Check() error {
	if err := os.MkdirAll(store.root, 0o755); err != nil {
		return fmt.Errorf("media: root not writable: %w", err)
	}
	return nil
}

// SaveServantPicture persists an ascension picture for a servant.
//
// The slot is addressed by grade; writing to an occupied slot overwrites
// the file in place. The extension is taken from the uploaded filename.
func (store *Store) SaveServantPicture(servantID, grade int, filename string, source io.Reader) (string, error) {
	name := "asc" + strconv.Itoa(grade) + filepath.Ext(filename)
	path := filepath.Join(store.root, "servants", strconv.Itoa(servantID), name)
	return store.write(path, source)
}

// SaveSkillIcon persists the icon image for a skill.
func (store *Store) SaveSkillIcon(skillID int, filename string, source io.Reader) (string, error) {
	name := fmt.Sprintf("skill_%d_icon%s", skillID, filepath.Ext(filename))
	path := filepath.Join(store.root, "skills", name)
	return store.write(path, source)
}

// write streams source to path, creating parent directories as needed.
func (store *Store) write(path string, source io.Reader) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("media: create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("media: create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, source); err != nil {
		return "", fmt.Errorf("media: write file: %w", err)
	}

	return path, nil
}
