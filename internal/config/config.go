package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/indaco/cuppa/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "CUPPA_CONFIG"

// Defaults applied when a setting is absent.
const (
	DefaultJavaStyle        = "red bold"
	DefaultJavaSymbol       = "☕ "
	DefaultTheme            = "cuppa"
	DefaultCommandTimeoutMs = 500
)

// DefaultJavaDetectFiles are marker files of JVM build tools.
var DefaultJavaDetectFiles = []string{"pom.xml", "build.gradle", "build.gradle.kts", "build.sbt", ".java-version"}

// DefaultJavaDetectExtensions are extensions of Java sources and artifacts.
var DefaultJavaDetectExtensions = []string{"java", "class", "jar", "gradle"}

// JavaConfig holds settings for the java prompt module.
type JavaConfig struct {
	Style            string   `yaml:"style,omitempty" toml:"style,omitempty"`
	Symbol           string   `yaml:"symbol,omitempty" toml:"symbol,omitempty"`
	Disabled         bool     `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	DetectFiles      []string `yaml:"detect_files,omitempty" toml:"detect_files,omitempty"`
	DetectExtensions []string `yaml:"detect_extensions,omitempty" toml:"detect_extensions,omitempty"`
	DetectFolders    []string `yaml:"detect_folders,omitempty" toml:"detect_folders,omitempty"`
	ScanDepth        *int     `yaml:"scan_depth,omitempty" toml:"scan_depth,omitempty"`
}

// Config is the main configuration structure for cuppa.
type Config struct {
	// CommandTimeout is the toolchain invocation timeout in milliseconds.
	CommandTimeout *int        `yaml:"command_timeout,omitempty" toml:"command_timeout,omitempty"`
	Theme          string      `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Java           *JavaConfig `yaml:"java,omitempty" toml:"java,omitempty"`

	// Path is the file the configuration was loaded from, if any.
	Path string `yaml:"-" toml:"-"`
}

// GetJavaConfig returns the java module settings with defaults applied.
func (c *Config) GetJavaConfig() JavaConfig {
	var jc JavaConfig
	if c != nil && c.Java != nil {
		jc = *c.Java
	}
	if jc.Style == "" {
		jc.Style = DefaultJavaStyle
	}
	if jc.Symbol == "" {
		jc.Symbol = DefaultJavaSymbol
	}
	if jc.DetectFiles == nil {
		jc.DetectFiles = DefaultJavaDetectFiles
	}
	if jc.DetectExtensions == nil {
		jc.DetectExtensions = DefaultJavaDetectExtensions
	}
	if jc.ScanDepth == nil {
		depth := 0
		jc.ScanDepth = &depth
	}
	return jc
}

// GetCommandTimeout returns the toolchain timeout as a duration.
func (c *Config) GetCommandTimeout() time.Duration {
	if c == nil || c.CommandTimeout == nil || *c.CommandTimeout <= 0 {
		return DefaultCommandTimeoutMs * time.Millisecond
	}
	return time.Duration(*c.CommandTimeout) * time.Millisecond
}

// GetTheme returns the configured TUI theme or the default.
func (c *Config) GetTheme() string {
	if c == nil || c.Theme == "" {
		return DefaultTheme
	}
	return c.Theme
}

// Default returns a Config populated with every default value.
func Default() *Config {
	timeout := DefaultCommandTimeoutMs
	java := (&Config{}).GetJavaConfig()
	return &Config{
		CommandTimeout: &timeout,
		Theme:          DefaultTheme,
		Java:           &java,
	}
}

// Format is a configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the file format from the extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q (use .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// userConfigDirFn is replaced in tests.
var userConfigDirFn = os.UserConfigDir

// candidateNames are looked up, in order, inside <UserConfigDir>/cuppa.
var candidateNames = []string{"config.yaml", "config.yml", "config.toml"}

// DefaultConfigPath returns <UserConfigDir>/cuppa/config.<ext> for format f.
func DefaultConfigPath(f Format) (string, error) {
	dir, err := userConfigDirFn()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "cuppa", "config."+string(f)), nil
}

// ResolveConfigPath returns the config file to load, or "" when none exists.
// Priority: explicit path > CUPPA_CONFIG > user config directory.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Clean(explicit), nil
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return "", fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvConfigPath)
		}
		return cleanPath, nil
	}

	dir, err := userConfigDirFn()
	if err != nil {
		// No config directory means no config file.
		return "", nil
	}
	for _, name := range candidateNames {
		path := filepath.Join(dir, "cuppa", name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

// LoadConfigFn is the config loader; replaced in tests.
var LoadConfigFn = loadConfig

// loadConfig resolves and decodes the config file. It returns (nil, nil) when
// no config file exists so callers fall back to defaults.
func loadConfig(explicit string) (*Config, error) {
	path, err := ResolveConfigPath(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	cfg, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Decode parses data using the format implied by path. Unknown keys are
// rejected.
func Decode(path string, data []byte) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: path, Format: format, Err: err}
		}
	case FormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, &ParseError{Path: path, Format: format, Err: err}
		}
	}

	return &cfg, nil
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
	mkdirAll   func(path string, perm os.FileMode) error
}

// osFileOpener is the production implementation of FileOpener.
type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// osFileWriter is the production implementation of FileWriter.
type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

// yamlMarshaler writes YAML with 2-space indentation for maps and sequences.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
}

// tomlMarshaler writes TOML.
type tomlMarshaler struct{}

func (m *tomlMarshaler) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// A nil marshaler selects YAML or TOML from the target file extension;
// other nil dependencies use the production defaults.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *ConfigSaver {
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
		mkdirAll:   os.MkdirAll,
	}
}

// marshalerFor returns the injected marshaler or one matching the path.
func (s *ConfigSaver) marshalerFor(path string) (core.Marshaler, error) {
	if s.marshaler != nil {
		return s.marshaler, nil
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if format == FormatTOML {
		return &tomlMarshaler{}, nil
	}
	return &yamlMarshaler{}, nil
}

// SaveTo saves the configuration to the specified file path, creating the
// parent directory when needed.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	marshaler, err := s.marshalerFor(configFile)
	if err != nil {
		return err
	}

	data, err := marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if err := s.mkdirAll(filepath.Dir(configFile), core.PermDir); err != nil {
		return fmt.Errorf("failed to create config directory for %q: %w", configFile, err)
	}

	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

// defaultConfigSaver is the ConfigSaver used by SaveConfigFn.
var defaultConfigSaver = NewConfigSaver(nil, nil, nil)

// SaveConfigFn saves cfg to path; replaced in tests.
var SaveConfigFn = func(cfg *Config, path string) error {
	return defaultConfigSaver.SaveTo(cfg, path)
}

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW
