// Package config loads the [output.docx] renderer section.
//
// The section normally arrives inside the host's JSON render context, but it
// can also be read straight from book.toml or from a standalone YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	book2docx "github.com/alnah/go-book2docx"
	"github.com/alnah/go-book2docx/internal/fileutil"
	"github.com/alnah/go-book2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound     = errors.New("config file not found")
	ErrEmptyConfigName    = errors.New("config name cannot be empty")
	ErrDuplicateFilename  = errors.New("two documents share an output filename")
	ErrBookConfigNotFound = errors.New("book.toml not found")
)

// NotFoundError lists the locations searched for a config file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// BookConfigFile is the host's configuration file name.
const BookConfigFile = "book.toml"

// Config holds the renderer's section of the book configuration.
// Command and Optional belong to the host and are accepted but unused.
type Config struct {
	Documents []book2docx.DocumentSpec `yaml:"documents" toml:"documents"`
	Command   string                   `yaml:"command" toml:"command"`
	Optional  bool                     `yaml:"optional" toml:"optional"`
}

// DefaultConfig returns a configuration with no documents.
func DefaultConfig() *Config {
	return &Config{}
}

// DocumentList returns the configured documents in order.
func (c *Config) DocumentList() book2docx.DocumentList {
	if c == nil {
		return book2docx.DocumentList{}
	}
	return book2docx.DocumentList{Documents: c.Documents}
}

// Validate rejects configurations whose documents would overwrite each
// other. Default filenames are taken into account.
func (c *Config) Validate() error {
	seen := make(map[string]int, len(c.Documents))
	for i, doc := range c.Documents {
		name := doc.Filename
		if name == "" {
			name = book2docx.DefaultFilename
		}
		key := filepath.Clean(name)
		if first, ok := seen[key]; ok {
			return fmt.Errorf("%w: documents %d and %d both write %q", ErrDuplicateFilename, first+1, i+1, name)
		}
		seen[key] = i
	}
	return nil
}

// FromSection decodes the section as handed over by the host. A missing
// or null section yields an empty document list.
func FromSection(raw []byte) (*Config, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return DefaultConfig(), nil
	}

	var cfg Config
	if err := yamlutil.Unmarshal(trimmed, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", book2docx.ErrConfigDeserialization, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads a standalone YAML documents file by path or name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Unknown fields are rejected.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Tried: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", book2docx.ErrConfigDeserialization, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadBookTOML reads the [output.docx] table from root/book.toml.
func LoadBookTOML(root string) (*Config, error) {
	path := filepath.Join(root, BookConfigFile)
	var book struct {
		Output struct {
			Docx *Config `toml:"docx"`
		} `toml:"output"`
	}

	if _, err := toml.DecodeFile(path, &book); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBookConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", book2docx.ErrConfigDeserialization, path, err)
	}

	cfg := book.Output.Docx
	if cfg == nil {
		return DefaultConfig(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/mdbook-docx/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mdbook-docx", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", &NotFoundError{Tried: tried}
}
