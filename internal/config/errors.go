package config

import "fmt"

// ParseError indicates that a config file has invalid syntax or unknown keys.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s config %q: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Suggestion returns a hint for fixing the config file.
func (e *ParseError) Suggestion() string {
	return "Fix the reported field, or run 'cuppa init --force' to regenerate the file"
}
