// Package chain persists the mirror chain and mines new entries onto it.
//
// The chain file is append-only JSON Lines: one Block object per line,
// never rewritten. Consumers (supply report, export collaborators) read
// it back with ReadAll.
package chain

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/satoshimirror/satoshimirror/pkg/models"
)

// Store appends mined blocks to the chain file.
type Store struct {
	path string
}

// NewStore creates a store writing to path. The file is created on the
// first append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Append writes one block as a single JSON line. The line is fully
// marshaled before the write so a failure never leaves a partial block
// in the file.
func (s *Store) Append(block *models.Block) error {
	data, err := json.Marshal(block)
	if err != nil {
		return fmt.Errorf("marshal block %d: %w", block.Height, err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open chain file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append block %d: %w", block.Height, err)
	}
	return nil
}

// ReadAll parses every line of the chain file. A missing file is an
// empty chain, not an error. Blank lines are skipped; a malformed line
// aborts the read.
func (s *Store) ReadAll() ([]models.Block, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open chain file: %w", err)
	}
	defer f.Close()

	var blocks []models.Block
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var b models.Block
		if err := json.Unmarshal(line, &b); err != nil {
			return nil, fmt.Errorf("parse chain line %d: %w", len(blocks)+1, err)
		}
		blocks = append(blocks, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read chain file: %w", err)
	}
	return blocks, nil
}
