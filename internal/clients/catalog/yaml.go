package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
)

const (
	indexFileName = "index.yaml"
	recordsDir    = "records"
)

// indexFile is the projection document of a YAML catalog
type indexFile struct {
	Records []*alchemy.CatalogRecord `yaml:"records"`
}

// YAMLSource reads a compendium laid out on disk as
//
//	<dir>/<catalog>/index.yaml          projection of every record
//	<dir>/<catalog>/records/<id>.yaml   optional full document per record
//
// Files are read on every call so edits are picked up by the next build.
type YAMLSource struct {
	name string
	dir  string
}

// NewYAML creates a YAML catalog rooted at dir/name
func NewYAML(dir, name string) (*YAMLSource, error) {
	if name == "" {
		return nil, errors.InvalidArgument("catalog name is required")
	}
	root := filepath.Join(dir, name)
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, fmt.Sprintf("catalog directory %s not found", root))
	}
	if !info.IsDir() {
		return nil, errors.InvalidArgumentf("catalog path %s is not a directory", root)
	}
	return &YAMLSource{name: name, dir: root}, nil
}

// LoadYAMLSources opens every catalog directory under dir that contains an
// index file.
func LoadYAMLSources(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog directory %s", dir)
	}

	var sources []Source
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, entry.Name(), indexFileName)); err != nil {
			continue
		}
		source, err := NewYAML(dir, entry.Name())
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}

// Name implements Source
func (s *YAMLSource) Name() string {
	return s.name
}

// List implements Source
func (s *YAMLSource) List(_ context.Context) ([]*alchemy.CatalogRecord, error) {
	path := filepath.Join(s.dir, indexFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to read %s", path))
	}

	var doc indexFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to parse %s", path))
	}

	records := make([]*alchemy.CatalogRecord, 0, len(doc.Records))
	for _, record := range doc.Records {
		if record == nil {
			continue
		}
		s.normalize(record)
		records = append(records, record)
	}
	return records, nil
}

// Get implements Source. Records without their own document fall back to
// the projection in the index file.
func (s *YAMLSource) Get(ctx context.Context, id string) (*alchemy.CatalogRecord, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, errors.InvalidArgumentf("invalid record id %q", id)
	}

	path := filepath.Join(s.dir, recordsDir, id+".yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var record alchemy.CatalogRecord
		if err := yaml.Unmarshal(data, &record); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", path)
		}
		if record.ID == "" {
			record.ID = id
		}
		s.normalize(&record)
		return &record, nil
	case !os.IsNotExist(err):
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to read %s", path))
	}

	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, errors.NotFoundf("record %s not found in catalog %s", id, s.name)
}

func (s *YAMLSource) normalize(record *alchemy.CatalogRecord) {
	record.Catalog = s.name
	if record.Rarity == nil {
		return
	}
	rarity, err := alchemy.ParseRarity(string(*record.Rarity))
	if err != nil {
		slog.Warn("dropping unknown rarity",
			"catalog", s.name,
			"record_id", record.ID,
			"rarity", string(*record.Rarity),
		)
		record.Rarity = nil
		return
	}
	record.Rarity = &rarity
}
