// Package upload persists admin-uploaded images under random names.
package upload

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	randRead    = rand.Read
	osWriteFile = os.WriteFile
)

// Sink writes uploaded payloads into a single directory and hands back the
// public /uploads reference. Content type and size are not inspected; the
// stored bytes are exactly what the client sent.
type Sink struct {
	dir string
}

func NewSink(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewSink: %w", err)
	}
	return &Sink{dir: dir}, nil
}

// Dir is the directory served back as /uploads.
func (s *Sink) Dir() string { return s.dir }

// Store writes payload under a fresh random name, keeping only the lowered
// extension of the client-supplied filename. The random name makes
// concurrent stores collision-free. On a failed write the partial file is
// removed so no dangling reference can be handed out.
func (s *Sink) Store(payload []byte, originalFilename string) (string, error) {
	buf := make([]byte, 16)
	if _, err := randRead(buf); err != nil {
		return "", fmt.Errorf("Store: %w", err)
	}
	name := hex.EncodeToString(buf) + strings.ToLower(filepath.Ext(originalFilename))

	path := filepath.Join(s.dir, name)
	if err := osWriteFile(path, payload, 0o644); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("Store: %w", err)
	}
	return "/uploads/" + name, nil
}
