package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
)

//go:embed defaults
var defaultsFS embed.FS

// DefaultConfig holds the built-in defaults.yaml.
var DefaultConfig = EmbeddedConfig{Root: "defaults", Files: defaultsFS}

type ConfigFile struct {
	Name   string
	Reader io.Reader
	Length int
}

type EmbeddedConfig struct {
	Root  string
	Files EmbeddedFS
}

type EmbeddedFS interface {
	Open(name string) (fs.File, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
}

func (ec EmbeddedConfig) MustFindRootConfigFile(filename string) (ConfigFile, error) {
	var result ConfigFile
	name := path.Join(ec.Root, filename)
	b, err := ec.Files.ReadFile(name)
	if err == nil {
		result = newConfigFile(name, b)
	}
	return result, err
}

func (ec EmbeddedConfig) MustFindDefaultsConfigFile() (ConfigFile, error) {
	return ec.MustFindRootConfigFile("defaults.yaml")
}

// ReadConfigFile reads a user supplied YAML file from disk.
func ReadConfigFile(filename string) (ConfigFile, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return ConfigFile{}, fmt.Errorf("failed to read config file %w", err)
	}
	return newConfigFile(filename, b), nil
}

func newConfigFile(name string, b []byte) ConfigFile {
	return ConfigFile{
		Name:   name,
		Reader: bytes.NewReader(b),
		Length: len(b),
	}
}
