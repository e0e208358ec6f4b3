package wonders

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Meta is the static description of a wonder shown by the info panel.
type Meta struct {
	ID          string `yaml:"id"`
	Category    string `yaml:"category"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Formula     string `yaml:"formula"`
	Philosophy  string `yaml:"philosophy"`
	Color       string `yaml:"color"`
}

var (
	catalogOnce sync.Once
	catalog     []Meta
	catalogErr  error
)

func loadCatalog() {
	catalogErr = yaml.Unmarshal(catalogYAML, &catalog)
}

// Catalog returns metadata for every wonder in display order. The embedded
// document is parsed once; a malformed one panics since it ships with the
// binary.
func Catalog() []Meta {
	catalogOnce.Do(loadCatalog)
	if catalogErr != nil {
		panic(fmt.Sprintf("wonders: embedded catalog: %v", catalogErr))
	}
	return catalog
}

// Lookup returns the metadata for id.
func Lookup(id string) (Meta, error) {
	for _, m := range Catalog() {
		if m.ID == id {
			return m, nil
		}
	}
	return Meta{}, fmt.Errorf("%w: %q", ErrUnknownWonder, id)
}
