package catalog

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"go.uber.org/config"
)

const (
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatJSONL = "jsonl"
)

type Config struct {
	API         APISettings
	Search      SearchSettings
	Credentials CredentialFiles
	Output      OutputSettings
}

type APISettings struct {
	Endpoint string
	// Host is the virtual host sent with the request, defaulting to the
	// endpoint's host.
	Host      string
	Referer   string
	UserAgent string `yaml:"userAgent"`
}

type SearchSettings struct {
	Term string
}

type OutputSettings struct {
	Path   string
	Format string
	// RequireSuccess fails the run when the response reports success:false
	// instead of exporting whatever data it carries.
	RequireSuccess bool `yaml:"requireSuccess"`
}

type ConfigUnmarshaler interface {
	Unmarshal(compev CompositeEnvVar, sources ...ConfigFile) (Config, error)
}

type YAMLConfigUnmarshaler struct{}

func (u YAMLConfigUnmarshaler) Unmarshal(compev CompositeEnvVar, sources ...ConfigFile) (Config, error) {
	var result Config
	var options []config.YAMLOption
	for _, s := range sources {
		if s.Length > 0 {
			options = append(options, config.Source(s.Reader))
		}
	}
	options = append(options, config.Expand(compev.LookupEnv))
	yaml, err := config.NewYAML(options...)
	if err != nil {
		return result, fmt.Errorf("failed to read yaml config %w", err)
	}
	readError := func(key string, cause error) error {
		return fmt.Errorf("failed to read '%s' from yaml config %w", key, cause)
	}
	key := "api"
	err = yaml.Get(key).Populate(&result.API)
	if err != nil {
		return result, readError(key, err)
	}
	key = "search"
	err = yaml.Get(key).Populate(&result.Search)
	if err != nil {
		return result, readError(key, err)
	}
	key = "credentials"
	err = yaml.Get(key).Populate(&result.Credentials)
	if err != nil {
		return result, readError(key, err)
	}
	key = "output"
	err = yaml.Get(key).Populate(&result.Output)
	if err != nil {
		return result, readError(key, err)
	}

	return result, nil
}

// LoadConfig layers the built-in defaults under any override files,
// resolving ${VAR:default} references through compev.
func LoadConfig(compev CompositeEnvVar, overrides ...ConfigFile) (Config, error) {
	defaults, err := DefaultConfig.MustFindDefaultsConfigFile()
	if err != nil {
		return Config{}, fmt.Errorf("failed to read defaults config file %w", err)
	}
	sources := append([]ConfigFile{defaults}, overrides...)
	result, err := YAMLConfigUnmarshaler{}.Unmarshal(compev, sources...)
	if err != nil {
		return result, fmt.Errorf("failed to load config %w", err)
	}
	if err = result.Validate(); err != nil {
		return result, err
	}
	return result, nil
}

// LoadConfigFromEnvironment loads the defaults plus the optional file at
// path, expanding references from the CATALOG_EXPORT env var.
func LoadConfigFromEnvironment(path string) (Config, error) {
	var overrides []ConfigFile
	if path != "" {
		f, err := ReadConfigFile(path)
		if err != nil {
			return Config{}, err
		}
		overrides = append(overrides, f)
	}
	return LoadConfig(JSONCompositeEnvVar{Parent: EnvVarName}, overrides...)
}

// Validate checks the config and fills in the virtual host when unset.
func (c *Config) Validate() error {
	endpoint, err := url.Parse(c.API.Endpoint)
	if err != nil {
		return fmt.Errorf("api.endpoint %q %w: %w", c.API.Endpoint, ErrInvalidConfig, err)
	}
	if !endpoint.IsAbs() || endpoint.Host == "" {
		return fmt.Errorf("api.endpoint %q must be an absolute url %w", c.API.Endpoint, ErrInvalidConfig)
	}
	if c.API.Host == "" {
		c.API.Host = endpoint.Host
	}
	if c.Search.Term == "" {
		return fmt.Errorf("search.term must be set %w", ErrInvalidConfig)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path must be set %w", ErrInvalidConfig)
	}
	switch c.Output.Format {
	case FormatCSV, FormatTSV, FormatJSONL:
	case "":
		c.Output.Format = FormatCSV
	default:
		return fmt.Errorf("unsupported output.format %q %w", c.Output.Format, ErrInvalidConfig)
	}
	return nil
}

// PathForFormat swaps a csv, tsv or jsonl extension on path for the one
// matching format. Any other extension is kept.
func PathForFormat(path string, format string) string {
	ext := filepath.Ext(path)
	switch strings.TrimPrefix(ext, ".") {
	case FormatCSV, FormatTSV, FormatJSONL:
	default:
		return path
	}
	switch format {
	case FormatCSV, FormatTSV, FormatJSONL:
		return strings.TrimSuffix(path, ext) + "." + format
	}
	return path
}
