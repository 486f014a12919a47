package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

/* ------------------------------------------------------------------------- */
/* DEFAULTS                                                                  */
/* ------------------------------------------------------------------------- */

func TestGetJavaConfig_Defaults(t *testing.T) {
	for _, cfg := range []*Config{nil, {}, {Java: &JavaConfig{}}} {
		jc := cfg.GetJavaConfig()
		if jc.Style != DefaultJavaStyle {
			t.Errorf("Style = %q, want %q", jc.Style, DefaultJavaStyle)
		}
		if jc.Symbol != DefaultJavaSymbol {
			t.Errorf("Symbol = %q, want %q", jc.Symbol, DefaultJavaSymbol)
		}
		if len(jc.DetectFiles) != len(DefaultJavaDetectFiles) {
			t.Errorf("DetectFiles = %v", jc.DetectFiles)
		}
		if len(jc.DetectExtensions) != len(DefaultJavaDetectExtensions) {
			t.Errorf("DetectExtensions = %v", jc.DetectExtensions)
		}
		if jc.ScanDepth == nil || *jc.ScanDepth != 0 {
			t.Errorf("ScanDepth = %v, want 0", jc.ScanDepth)
		}
	}
}

func TestGetJavaConfig_Overrides(t *testing.T) {
	cfg := &Config{Java: &JavaConfig{
		Style:            "yellow",
		Symbol:           "J ",
		DetectFiles:      []string{},
		DetectExtensions: []string{"kt"},
		ScanDepth:        intPtr(2),
	}}

	jc := cfg.GetJavaConfig()
	if jc.Style != "yellow" || jc.Symbol != "J " {
		t.Errorf("style/symbol not kept: %+v", jc)
	}
	if jc.DetectFiles == nil || len(jc.DetectFiles) != 0 {
		t.Errorf("explicit empty DetectFiles should be kept, got %v", jc.DetectFiles)
	}
	if len(jc.DetectExtensions) != 1 || jc.DetectExtensions[0] != "kt" {
		t.Errorf("DetectExtensions = %v", jc.DetectExtensions)
	}
	if *jc.ScanDepth != 2 {
		t.Errorf("ScanDepth = %d, want 2", *jc.ScanDepth)
	}
}

func TestGetCommandTimeout(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want time.Duration
	}{
		{"nil config", nil, 500 * time.Millisecond},
		{"unset", &Config{}, 500 * time.Millisecond},
		{"zero", &Config{CommandTimeout: intPtr(0)}, 500 * time.Millisecond},
		{"custom", &Config{CommandTimeout: intPtr(1200)}, 1200 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.GetCommandTimeout(); got != tt.want {
				t.Errorf("GetCommandTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.GetTheme() != DefaultTheme {
		t.Errorf("theme = %q", cfg.GetTheme())
	}
	if cfg.CommandTimeout == nil || *cfg.CommandTimeout != DefaultCommandTimeoutMs {
		t.Errorf("timeout = %v", cfg.CommandTimeout)
	}
	if cfg.Java == nil || cfg.Java.Style != DefaultJavaStyle {
		t.Errorf("java = %+v", cfg.Java)
	}
}

/* ------------------------------------------------------------------------- */
/* PATH RESOLUTION                                                           */
/* ------------------------------------------------------------------------- */

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"config.yaml", FormatYAML, false},
		{"config.YML", FormatYAML, false},
		{"/etc/cuppa.toml", FormatTOML, false},
		{"config.json", "", true},
		{"config", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			checkError(t, err, tt.wantErr)
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/env/config.yaml")
		got, err := ResolveConfigPath("/explicit/./config.yaml")
		checkError(t, err, false)
		if got != "/explicit/config.yaml" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("env var", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/env/config.toml")
		got, err := ResolveConfigPath("")
		checkError(t, err, false)
		if got != "/env/config.toml" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("env var traversal rejected", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "../../etc/config.yaml")
		_, err := ResolveConfigPath("")
		if err == nil || !strings.Contains(err.Error(), "path traversal") {
			t.Errorf("err = %v, want traversal error", err)
		}
	})

	t.Run("user config dir", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		dir := t.TempDir()
		withUserConfigDir(t, dir)
		want := writeConfig(t, filepath.Join(dir, "cuppa"), "config.toml", "theme = \"base\"\n")

		got, err := ResolveConfigPath("")
		checkError(t, err, false)
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("yaml preferred over toml", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		dir := t.TempDir()
		withUserConfigDir(t, dir)
		writeConfig(t, filepath.Join(dir, "cuppa"), "config.toml", "")
		want := writeConfig(t, filepath.Join(dir, "cuppa"), "config.yaml", "")

		got, _ := ResolveConfigPath("")
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		withUserConfigDir(t, t.TempDir())

		got, err := ResolveConfigPath("")
		checkError(t, err, false)
		if got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("no user config dir", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		orig := userConfigDirFn
		userConfigDirFn = func() (string, error) { return "", errors.New("no home") }
		t.Cleanup(func() { userConfigDirFn = orig })

		got, err := ResolveConfigPath("")
		checkError(t, err, false)
		if got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}

func TestDefaultConfigPath(t *testing.T) {
	withUserConfigDir(t, "/home/u/.config")

	got, err := DefaultConfigPath(FormatTOML)
	checkError(t, err, false)
	if got != filepath.Join("/home/u/.config", "cuppa", "config.toml") {
		t.Errorf("got %q", got)
	}
}

/* ------------------------------------------------------------------------- */
/* LOADING                                                                   */
/* ------------------------------------------------------------------------- */

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantNil bool
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "yaml",
			file: "config.yaml",
			content: `command_timeout: 800
theme: dracula
java:
  style: "fg:#d4a373 bold"
  symbol: "J "
  detect_folders:
    - .mvn
  scan_depth: 1
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.GetCommandTimeout() != 800*time.Millisecond {
					t.Errorf("timeout = %v", cfg.GetCommandTimeout())
				}
				if cfg.Theme != "dracula" {
					t.Errorf("theme = %q", cfg.Theme)
				}
				jc := cfg.GetJavaConfig()
				if jc.Style != "fg:#d4a373 bold" || jc.Symbol != "J " {
					t.Errorf("java = %+v", jc)
				}
				if len(jc.DetectFolders) != 1 || *jc.ScanDepth != 1 {
					t.Errorf("detection = %+v", jc)
				}
			},
		},
		{
			name: "toml",
			file: "config.toml",
			content: `theme = "base"

[java]
disabled = true
detect_extensions = ["kt", "java"]
`,
			check: func(t *testing.T, cfg *Config) {
				jc := cfg.GetJavaConfig()
				if !jc.Disabled {
					t.Error("expected java disabled")
				}
				if len(jc.DetectExtensions) != 2 {
					t.Errorf("extensions = %v", jc.DetectExtensions)
				}
			},
		},
		{
			name:    "empty yaml",
			file:    "config.yaml",
			content: "",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Java != nil || cfg.Theme != "" {
					t.Errorf("expected zero config, got %+v", cfg)
				}
			},
		},
		{
			name:    "unknown yaml key",
			file:    "config.yaml",
			content: "java:\n  colour: red\n",
			wantNil: true,
			wantErr: true,
		},
		{
			name:    "unknown toml key",
			file:    "config.toml",
			content: "[java]\ncolour = \"red\"\n",
			wantNil: true,
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			file:    "config.yaml",
			content: "java: [unclosed\n",
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.file, tt.content)

			cfg, err := LoadConfigFn(path)
			checkError(t, err, tt.wantErr)
			checkConfigNil(t, cfg, tt.wantNil)

			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *ParseError, got %T", err)
				}
				if pe.Path != path {
					t.Errorf("ParseError.Path = %q, want %q", pe.Path, path)
				}
				return
			}
			if cfg.Path != path {
				t.Errorf("Path = %q, want %q", cfg.Path, path)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	withUserConfigDir(t, t.TempDir())

	cfg, err := LoadConfigFn("")
	checkError(t, err, false)
	checkConfigNil(t, cfg, true)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfigFn(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("err = %v, want read error", err)
	}
}

func TestParseError(t *testing.T) {
	inner := errors.New("unknown field \"colour\"")
	err := &ParseError{Path: "/c.yaml", Format: FormatYAML, Err: inner}

	if !errors.Is(err, inner) {
		t.Error("ParseError should unwrap to the decode error")
	}
	if !strings.Contains(err.Error(), "/c.yaml") || !strings.Contains(err.Error(), "yaml") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !strings.Contains(err.Suggestion(), "cuppa init --force") {
		t.Errorf("Suggestion() = %q", err.Suggestion())
	}
}
