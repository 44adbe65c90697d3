// Package ledger owns the agent ledger document: a single JSON file
// holding the domain catalog, the agent generator metadata, and the
// agent list. Every mutation is a full read-modify-write of the
// document.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/satoshimirror/satoshimirror/pkg/models"
)

// DocumentStore is the persistence seam for the ledger document.
//
// Separate process instances each load their own copy and the later
// Write wins; genuine concurrent mutation safety needs external
// serialization (file lock, single-writer process). Implementations of
// this interface are where such a guard would be added.
type DocumentStore interface {
	// Load returns the stored document, or found=false when the
	// backing file is absent or empty.
	Load() (doc *models.LedgerDocument, found bool, err error)

	// Write replaces the stored document wholesale.
	Write(doc *models.LedgerDocument) error
}

// FileStore persists the document as pretty-printed JSON, writing to a
// temp file and renaming so readers never observe a half-written
// document.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (*models.LedgerDocument, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read ledger file: %w", err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}

	var doc models.LedgerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("parse ledger file: %w", err)
	}
	return &doc, true, nil
}

func (s *FileStore) Write(doc *models.LedgerDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write ledger tmp: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}
