package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads a student roster from JSON.
func Load(r io.Reader) ([]Student, error) {
	var students []Student
	dec := json.NewDecoder(r)
	if err := dec.Decode(&students); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}
	return students, nil
}

// LoadFile reads a student roster from a JSON file.
func LoadFile(path string) ([]Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close() //nolint:errcheck
	return Load(f)
}
