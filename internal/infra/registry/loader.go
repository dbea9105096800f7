// Package registry loads the app catalog from the built-in definitions
// or from a user supplied TOML or YAML file.
package registry

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/loomos/loomshell/internal/domain"
)

//go:embed builtin.toml
var builtinContent []byte

// Ensure Loader implements domain.RegistryLoader.
var _ domain.RegistryLoader = (*Loader)(nil)

// registryFile is the on-disk layout shared by the TOML and YAML formats.
type registryFile struct {
	Apps []domain.AppDefinition `toml:"apps" yaml:"apps"`
}

// Loader loads the registry.
type Loader struct {
	path string // Empty means the built-in catalog
}

// NewLoader creates a Loader. An empty path selects the built-in catalog.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses and validates the catalog.
func (l *Loader) Load() (*domain.Registry, error) {
	if l.path == "" {
		return Builtin()
	}

	path, err := expandHome(l.path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}

	var file registryFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedRegistry)
	}
	if err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}

	return build(file)
}

// Builtin returns the catalog compiled into the binary.
func Builtin() (*domain.Registry, error) {
	var file registryFile
	if err := toml.Unmarshal(builtinContent, &file); err != nil {
		return nil, fmt.Errorf("parse builtin registry: %w", err)
	}
	return build(file)
}

func build(file registryFile) (*domain.Registry, error) {
	if len(file.Apps) == 0 {
		return nil, domain.ErrEmptyRegistry
	}
	return domain.NewRegistry(file.Apps)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
