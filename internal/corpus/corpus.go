// Package corpus carries the embedded fixture corpus: small, static source
// snippets in several languages that external detection and extraction
// suites use as sample input. The corpus is compiled into the binary so
// commands and the MCP server work from any directory.
package corpus

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/luuuc/fixture-cli/internal/fs"
	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var manifestData []byte

//go:embed files
var contentFS embed.FS

// Fixture is one corpus entry: a source snippet plus the metadata a harness
// needs to check its tools against it.
type Fixture struct {
	ID          string   `yaml:"id" json:"id"`
	Language    string   `yaml:"language" json:"language"`
	Filename    string   `yaml:"filename" json:"filename"`
	Description string   `yaml:"description" json:"description"`
	Symbols     []Symbol `yaml:"symbols" json:"symbols"`

	// Content is the snippet itself, loaded from the embedded files.
	Content string `yaml:"-" json:"-"`
}

// Symbol names a declaration a parser is expected to find in the fixture.
type Symbol struct {
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind" json:"kind"`
}

type manifest struct {
	Version  int        `yaml:"version"`
	Fixtures []*Fixture `yaml:"fixtures"`
}

var (
	loadOnce   sync.Once
	loadedAll  []*Fixture
	loadedByID map[string]*Fixture
	loadErr    error
)

func load() ([]*Fixture, error) {
	loadOnce.Do(func() {
		var m manifest
		if err := yaml.Unmarshal(manifestData, &m); err != nil {
			loadErr = fmt.Errorf("failed to parse corpus manifest: %w", err)
			return
		}

		byID := make(map[string]*Fixture, len(m.Fixtures))
		for _, f := range m.Fixtures {
			if _, exists := byID[f.ID]; exists {
				loadErr = fmt.Errorf("duplicate fixture id '%s' in manifest", f.ID)
				return
			}

			data, err := contentFS.ReadFile("files/" + f.Filename)
			if err != nil {
				loadErr = fmt.Errorf("fixture '%s': missing content file %s: %w", f.ID, f.Filename, err)
				return
			}
			f.Content = string(data)
			byID[f.ID] = f
		}

		loadedAll = m.Fixtures
		loadedByID = byID
	})
	return loadedAll, loadErr
}

// All returns every fixture in manifest order.
func All() ([]*Fixture, error) {
	return load()
}

// Get returns the fixture with the given ID.
func Get(id string) (*Fixture, error) {
	if _, err := load(); err != nil {
		return nil, err
	}
	f, ok := loadedByID[id]
	if !ok {
		return nil, fmt.Errorf("unknown fixture '%s' (run 'fixture list' to see available fixtures)", id)
	}
	return f, nil
}

// ByLanguage returns the fixtures for a language, in manifest order.
// An unknown language yields an empty slice, not an error.
func ByLanguage(language string) ([]*Fixture, error) {
	all, err := load()
	if err != nil {
		return nil, err
	}

	var matched []*Fixture
	for _, f := range all {
		if f.Language == language {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

// Languages returns the sorted set of languages in the corpus.
func Languages() ([]string, error) {
	all, err := load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var langs []string
	for _, f := range all {
		if !seen[f.Language] {
			seen[f.Language] = true
			langs = append(langs, f.Language)
		}
	}
	sort.Strings(langs)
	return langs, nil
}

// WriteTo materializes the fixture into dir under its corpus filename,
// creating the directory if needed. It returns the written path.
func (f *Fixture) WriteTo(dir string) (string, error) {
	path := filepath.Join(dir, f.Filename)
	if err := fs.WriteFile(path, []byte(f.Content)); err != nil {
		return "", err
	}
	return path, nil
}

// WriteAll materializes every given fixture into dir and returns the
// written paths.
func WriteAll(dir string, fixtures []*Fixture) ([]string, error) {
	paths := make([]string, 0, len(fixtures))
	for _, f := range fixtures {
		path, err := f.WriteTo(dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
