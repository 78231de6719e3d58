package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/goccy/go-yaml"

	"ctgapi/models"
)

const (
	CategoriesDataset = "categories"
	DetailsDataset    = "category_details"
)

//go:embed data/categories.json data/category_details.json
var dataFS embed.FS

// Source supplies the two datasets. It is read once per Load.
type Source interface {
	Name() string
	Categories(ctx context.Context) ([]models.Category, error)
	Details(ctx context.Context) (map[int32]models.Detail, error)
}

type fsSource struct {
	name string
	fsys fs.FS
	dir  string
}

// Embedded returns the datasets compiled into the binary.
func Embedded() Source {
	return &fsSource{name: "embedded", fsys: dataFS, dir: "data"}
}

// Dir reads categories.{json,yaml,yml} and category_details.{json,yaml,yml}
// from a directory on disk.
func Dir(dir string) Source {
	return &fsSource{name: "dir:" + dir, fsys: os.DirFS(dir), dir: "."}
}

// FS reads the datasets from the root of fsys.
func FS(name string, fsys fs.FS) Source {
	return &fsSource{name: name, fsys: fsys, dir: "."}
}

func (s *fsSource) Name() string {
	return s.name
}

func (s *fsSource) Categories(_ context.Context) ([]models.Category, error) {
	data, err := s.read(CategoriesDataset)
	if err != nil {
		return nil, err
	}
	return models.DecodeCategories(data)
}

func (s *fsSource) Details(_ context.Context) (map[int32]models.Detail, error) {
	data, err := s.read(DetailsDataset)
	if err != nil {
		return nil, err
	}
	return models.DecodeDetails(data)
}

// read returns the dataset as JSON, converting YAML files on the way.
func (s *fsSource) read(dataset string) ([]byte, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		data, err := fs.ReadFile(s.fsys, path.Join(s.dir, dataset+ext))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if ext == ".json" {
			return data, nil
		}
		return yamlToJSON(data)
	}
	return nil, fmt.Errorf("%s: no %s.json or %s.yaml: %w", s.name, dataset, dataset, fs.ErrNotExist)
}

func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return json.Marshal(v)
}
