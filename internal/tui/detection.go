package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables set by common CI providers.
var ciEnvs = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"CIRCLECI",               // CircleCI
	"TRAVIS",                 // Travis CI
	"JENKINS_HOME",           // Jenkins
	"BUILDKITE",              // Buildkite
	"BITBUCKET_BUILD_NUMBER", // Bitbucket Pipelines
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure Pipelines
}

// isTerminal is replaced in tests.
var isTerminal = func(fd int) bool { return term.IsTerminal(fd) }

// IsInteractive reports whether prompts can be shown: stdin and stdout must
// be terminals and no CI environment may be detected.
func IsInteractive() bool {
	if !isTerminal(int(os.Stdout.Fd())) || !isTerminal(int(os.Stdin.Fd())) { //nolint:gosec // G115: fd is a small value, no overflow risk
		return false
	}
	return !IsCI()
}

// IsCI reports whether a CI environment variable is set.
func IsCI() bool {
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return isTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
