// Package store loads and saves the category-tag mapping table from YAML.
// The table is operator-maintained data, not code: installations extend it
// as new export templates show up, and the classifier falls back to
// substring matching only for labels the table does not carry.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"rmoreira/findash/internal/classify"
	"rmoreira/findash/internal/logging"
	"rmoreira/findash/internal/models"
)

// tagsFileName is the default mapping file looked up in standard locations.
const tagsFileName = "tags.yaml"

// tagEntry is one mapping line of the YAML file.
type tagEntry struct {
	Category string `yaml:"category"`
	Tag      string `yaml:"tag"`
}

// tagsFile is the YAML document shape.
type tagsFile struct {
	Tags []tagEntry `yaml:"tags"`
}

// TagStore resolves, loads and saves the tag mapping file.
type TagStore struct {
	// Path overrides the standard lookup when non-empty.
	Path string
	log  logging.Logger
}

// NewTagStore creates a store. A nil logger gets a no-frills logrus one.
func NewTagStore(path string, logger logging.Logger) *TagStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter(nil)
	}
	return &TagStore{Path: path, log: logger}
}

// findFile looks for the mapping file in the standard locations: the
// configured path, the working directory, ./config, and ~/.config/findash.
func (s *TagStore) findFile() (string, error) {
	if s.Path != "" {
		if _, err := os.Stat(s.Path); err == nil {
			return s.Path, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		tagsFileName,
		filepath.Join("config", tagsFileName),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".config", "findash", tagsFileName))
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load reads the tag table. A missing file is not an error: the embedded
// default table is returned so classification always has a mapping.
func (s *TagStore) Load() (classify.TagTable, error) {
	path, err := s.findFile()
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("No tag mapping file found, using defaults")
			return classify.DefaultTagTable(), nil
		}
		return nil, fmt.Errorf("error resolving tag mapping file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading tag mapping file: %w", err)
	}

	var doc tagsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing tag mapping file %s: %w", path, err)
	}

	table := classify.DefaultTagTable()
	for _, entry := range doc.Tags {
		if entry.Category == "" {
			continue
		}
		table[classify.NormalizeLabel(entry.Category)] = models.CategoryTag(entry.Tag)
	}
	s.log.WithField("count", len(doc.Tags)).Debug("Loaded tag mappings")
	return table, nil
}

// Save writes the table back to the configured path (or the default file in
// the working directory), creating parent directories as needed.
func (s *TagStore) Save(table classify.TagTable) error {
	path := s.Path
	if path == "" {
		path = tagsFileName
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory for tag mapping file: %w", err)
		}
	}

	doc := tagsFile{Tags: make([]tagEntry, 0, len(table))}
	for category, tag := range table {
		doc.Tags = append(doc.Tags, tagEntry{Category: category, Tag: string(tag)})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("error marshaling tag mappings: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing tag mapping file: %w", err)
	}
	s.log.WithField("file", path).Debug("Saved tag mappings")
	return nil
}
