package app

import (
	"fmt"

	"relnotes/internal/config"
)

// Options collect validated inputs for a single run.
type Options struct {
	CurrentTag  string
	PreviousTag string
	Token       string
	RepoPath    string
	ConfigPath  string
	NativeGit   bool
}

// FlagValues mirrors the command-line flags so we can keep parsing and
// validation in one place. Empty tag flags fall back to the environment.
type FlagValues struct {
	CurrentTag  string
	PreviousTag string
	RepoPath    string
	ConfigPath  string
	NativeGit   bool
}

// OptionsFromEnv merges flags with the process environment and validates the
// result. getenv is injectable so tests stay hermetic.
func OptionsFromEnv(f FlagValues, getenv func(string) string) (Options, error) {
	current := f.CurrentTag
	if current == "" {
		current = getenv(config.EnvCurrentTag)
	}
	if current == "" {
		return Options{}, fmt.Errorf("current tag not set: pass --current or set %s", config.EnvCurrentTag)
	}

	previous := f.PreviousTag
	if previous == "" {
		previous = getenv(config.EnvPreviousTag)
	}

	return Options{
		CurrentTag:  current,
		PreviousTag: previous,
		Token:       getenv(config.EnvToken),
		RepoPath:    f.RepoPath,
		ConfigPath:  f.ConfigPath,
		NativeGit:   f.NativeGit,
	}, nil
}
