package notes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSeed returns the notes the service starts with when no seed file is configured.
func DefaultSeed(newID IDGenerator) []Note {
	return []Note{
		{
			ID:    "1",
			Title: "fakeTitle",
			ListItems: []ListItem{
				{ID: newID(), Text: "faketext"},
				{ID: newID(), Text: "faketextb"},
			},
		},
		{
			ID:    "2",
			Title: "fakeTitle2",
			ListItems: []ListItem{
				{ID: newID(), Text: "faketext2"},
			},
		},
	}
}

type seedFile struct {
	Notes []Note `yaml:"notes"`
}

// ParseSeed decodes a YAML document with a top-level "notes" list.
// Unknown keys are rejected so typos do not silently drop data.
func ParseSeed(data []byte) ([]Note, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if f.Notes == nil {
		return []Note{}, nil
	}
	return f.Notes, nil
}

func LoadSeedFile(path string) ([]Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}
