package config

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/indaco/cuppa/internal/core"
	"github.com/indaco/cuppa/internal/style"
	"github.com/indaco/cuppa/internal/tui"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "Config Syntax", "Java Module").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator validates configuration files and settings.
type Validator struct {
	fs          core.FileSystem
	cfg         *Config
	configPath  string
	validations []ValidationResult
}

// NewValidator creates a new configuration validator.
// configPath is the file cfg was loaded from, or "" when defaults are in use.
func NewValidator(fs core.FileSystem, cfg *Config, configPath string) *Validator {
	return &Validator{
		fs:          fs,
		cfg:         cfg,
		configPath:  configPath,
		validations: make([]ValidationResult, 0),
	}
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate(ctx context.Context) ([]ValidationResult, error) {
	v.validations = make([]ValidationResult, 0)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v.validateSyntax(ctx)
	v.validateTimeout()
	v.validateTheme()
	v.validateJavaConfig()

	return v.validations, nil
}

// addValidation adds a validation result to the list.
func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

// validateSyntax re-reads the config file and checks that it decodes.
func (v *Validator) validateSyntax(ctx context.Context) {
	if v.configPath == "" {
		v.addValidation("Config Syntax", true, "No config file found, using defaults", false)
		return
	}

	data, err := v.fs.ReadFile(ctx, v.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			v.addValidation("Config Syntax", false, fmt.Sprintf("Config file %q does not exist", v.configPath), false)
		} else {
			v.addValidation("Config Syntax", false, fmt.Sprintf("Failed to access config file: %v", err), false)
		}
		return
	}

	if _, err := Decode(v.configPath, data); err != nil {
		v.addValidation("Config Syntax", false, err.Error(), false)
		return
	}

	v.addValidation("Config Syntax", true, fmt.Sprintf("Configuration file %q is valid", v.configPath), false)
}

// validateTimeout checks the toolchain timeout.
func (v *Validator) validateTimeout() {
	if v.cfg == nil || v.cfg.CommandTimeout == nil {
		return
	}
	timeout := *v.cfg.CommandTimeout
	switch {
	case timeout <= 0:
		v.addValidation("Command Timeout", false,
			fmt.Sprintf("command_timeout must be positive, got %d", timeout), false)
	case timeout > 5000:
		v.addValidation("Command Timeout", true,
			fmt.Sprintf("command_timeout of %dms may noticeably slow down the prompt", timeout), true)
	default:
		v.addValidation("Command Timeout", true,
			fmt.Sprintf("command_timeout is %dms", timeout), false)
	}
}

// validateTheme checks the TUI theme name.
func (v *Validator) validateTheme() {
	if v.cfg == nil || v.cfg.Theme == "" {
		return
	}
	if !tui.IsValidTheme(v.cfg.Theme) {
		v.addValidation("Theme", false,
			fmt.Sprintf("Unknown theme %q (valid: %v)", v.cfg.Theme, tui.ValidThemes), false)
		return
	}
	v.addValidation("Theme", true, fmt.Sprintf("Theme %q is valid", v.cfg.Theme), false)
}

// validateJavaConfig validates the java module settings.
func (v *Validator) validateJavaConfig() {
	if v.cfg == nil || v.cfg.Java == nil {
		v.addValidation("Java Module", true, "No java configuration found (using defaults)", false)
		return
	}

	jc := v.cfg.Java
	if jc.Disabled {
		v.addValidation("Java Module", true, "Java module is disabled", true)
	}

	if jc.Style != "" {
		if _, err := style.Parse(style.NewRenderer(io.Discard, true), jc.Style); err != nil {
			v.addValidation("Java Module", false, err.Error(), false)
		} else {
			v.addValidation("Java Module", true, fmt.Sprintf("Style %q is valid", jc.Style), false)
		}
	}

	if jc.ScanDepth != nil && *jc.ScanDepth < 0 {
		v.addValidation("Java Module", false, "scan_depth cannot be negative", false)
	}

	if jc.DetectFiles != nil && jc.DetectExtensions != nil && len(jc.DetectFiles) == 0 &&
		len(jc.DetectExtensions) == 0 && len(jc.DetectFolders) == 0 {
		v.addValidation("Java Module", true, "No detection markers configured, the module will never show", true)
	}
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	for _, r := range results {
		if !r.Passed && !r.Warning {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}
