package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flatgeom/flatgeom/internal/core/observability/log"
)

// File describes a scene on disk, in JSON or YAML.
type File struct {
	Name   string     `json:"name" yaml:"name"`
	Shapes []EntryDoc `json:"shapes" yaml:"shapes"`
}

// EntryDoc names one shape in a scene file.
type EntryDoc struct {
	Name     string `json:"name" yaml:"name"`
	ShapeDoc `yaml:",inline"`
}

// LoadJSON reads a scene file from a JSON reader.
func LoadJSON(r io.Reader) (*File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadYAML reads a scene file from a YAML reader.
func LoadYAML(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadPath reads a scene file, picking the codec from the extension.
// Anything not ending in .json parses as YAML.
func LoadPath(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".json") {
		return LoadJSON(f)
	}
	return LoadYAML(f)
}

// Populate decodes every shape in the file into the scene. On error the
// scene keeps the entries added so far; errors name the offending entry.
func (s *Scene) Populate(f *File) error {
	for i, doc := range f.Shapes {
		shape, err := doc.Decode()
		if err != nil {
			name := doc.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return fmt.Errorf("scene %q entry %s: %w", f.Name, name, err)
		}
		s.Add(doc.Name, shape)
	}
	s.logger.Info("scene populated",
		log.String("scene", f.Name),
		log.Int("shapes", len(f.Shapes)),
	)
	return nil
}
