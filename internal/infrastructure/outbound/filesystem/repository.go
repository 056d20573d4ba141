package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kanadia/entrydesk/internal/domain/traveler"
)

var _ traveler.Repository = (*FileRepository)(nil)

// Paths names the three input sources on disk. Format is chosen per file by
// extension: .json, or .yaml/.yml.
type Paths struct {
	Records   string
	Watchlist string
	Countries string
}

// FileRepository loads the input sources from local files.
type FileRepository struct {
	paths Paths
}

// NewFileRepository creates a repository over the given source files.
// Missing files are reported here, before any decision is produced.
func NewFileRepository(p Paths) (*FileRepository, error) {
	for _, path := range []string{p.Records, p.Watchlist, p.Countries} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to access input source: %w", err)
		}
	}
	return &FileRepository{paths: p}, nil
}

// LoadRecords loads traveler records in source order. Each list element is
// decoded on its own: an element that is not record-shaped becomes a zero
// Record, which the validator later turns into a Reject. Only an unreadable
// file or a non-list document is an error.
func (r *FileRepository) LoadRecords(_ context.Context) ([]*traveler.Record, error) {
	data, err := os.ReadFile(r.paths.Records)
	if err != nil {
		return nil, fmt.Errorf("failed to read traveler records: %w", err)
	}

	switch sourceFormat(r.paths.Records) {
	case formatJSON:
		return decodeRecordsJSON(data, r.paths.Records)
	case formatYAML:
		return decodeRecordsYAML(data, r.paths.Records)
	default:
		return nil, fmt.Errorf("unsupported input format for %s", r.paths.Records)
	}
}

// LoadWatchlist loads the watchlist. The whole file must decode cleanly;
// a malformed watchlist is a configuration error, not a per-entry condition.
func (r *FileRepository) LoadWatchlist(_ context.Context) ([]traveler.WatchlistEntry, error) {
	var entries []traveler.WatchlistEntry
	if err := r.decodeFile(r.paths.Watchlist, &entries); err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}
	return entries, nil
}

// LoadCountries loads the country-attributes table, strictly.
func (r *FileRepository) LoadCountries(_ context.Context) ([]traveler.CountryInfo, error) {
	var countries []traveler.CountryInfo
	if err := r.decodeFile(r.paths.Countries, &countries); err != nil {
		return nil, fmt.Errorf("failed to load countries: %w", err)
	}
	return countries, nil
}

func (r *FileRepository) decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	switch sourceFormat(path) {
	case formatJSON:
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse JSON in %s: %w", path, err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse YAML in %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported input format for %s", path)
	}
	return nil
}

func decodeRecordsJSON(data []byte, path string) ([]*traveler.Record, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON in %s: %w", path, err)
	}

	records := make([]*traveler.Record, 0, len(items))
	for _, item := range items {
		var rec traveler.Record
		if err := json.Unmarshal(item, &rec); err != nil {
			// Wrong-typed fields count as an incomplete record, not a batch failure.
			records = append(records, &traveler.Record{})
			continue
		}
		records = append(records, &rec)
	}
	return records, nil
}

func decodeRecordsYAML(data []byte, path string) ([]*traveler.Record, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %s: %w", path, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return []*traveler.Record{}, nil
	}
	list := root.Content[0]
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a list of records in %s", path)
	}

	records := make([]*traveler.Record, 0, len(list.Content))
	for _, node := range list.Content {
		var rec traveler.Record
		if err := node.Decode(&rec); err != nil {
			records = append(records, &traveler.Record{})
			continue
		}
		records = append(records, &rec)
	}
	return records, nil
}

type format int

const (
	formatUnknown format = iota
	formatJSON
	formatYAML
)

func sourceFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatUnknown
	}
}
