// Package pathutils resolves user-supplied filesystem paths.
package pathutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant                 = "~"
	tildeForwardSlashPrefixConstant     = "~/"
	homeDirectoryUnavailableTemplate    = "unable to resolve home directory for %s: %w"
	absolutePathResolutionErrorTemplate = "unable to resolve absolute path for %s: %w"
	emptyHomeDirectoryMessageConstant   = "home directory is empty"
)

var tildeWithPathSeparatorPrefix = tildeSymbolConstant + string(os.PathSeparator)

// ErrHomeDirectoryEmpty indicates the home directory provider returned an empty path.
var ErrHomeDirectoryEmpty = errors.New(emptyHomeDirectoryMessageConstant)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander converts user home shortcuts to absolute paths.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: provider}
}

// Expand resolves leading tilde prefixes to the user's home directory.
// Paths are returned unchanged when the home directory cannot be determined.
func (expander *HomeExpander) Expand(candidatePath string) string {
	expandedPath, expandError := expander.Resolve(candidatePath)
	if expandError != nil {
		return candidatePath
	}
	return expandedPath
}

// Resolve expands a leading tilde and fails when the home directory is required but unavailable.
func (expander *HomeExpander) Resolve(candidatePath string) (string, error) {
	if expander == nil || !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath, nil
	}

	relativePath, matched := trimHomePrefix(candidatePath)
	if !matched {
		return candidatePath, nil
	}

	resolvedHomeDirectory, homeError := expander.resolveHomeDirectory()
	if homeError != nil {
		return "", fmt.Errorf(homeDirectoryUnavailableTemplate, candidatePath, homeError)
	}

	if len(relativePath) == 0 {
		return resolvedHomeDirectory, nil
	}
	return filepath.Join(resolvedHomeDirectory, relativePath), nil
}

// ResolveAbsolute expands a leading tilde and converts the result into a clean absolute path.
func (expander *HomeExpander) ResolveAbsolute(candidatePath string) (string, error) {
	expandedPath, expandError := expander.Resolve(candidatePath)
	if expandError != nil {
		return "", expandError
	}
	absolutePath, absoluteError := filepath.Abs(expandedPath)
	if absoluteError != nil {
		return "", fmt.Errorf(absolutePathResolutionErrorTemplate, candidatePath, absoluteError)
	}
	return absolutePath, nil
}

func trimHomePrefix(candidatePath string) (string, bool) {
	if candidatePath == tildeSymbolConstant {
		return "", true
	}
	if strings.HasPrefix(candidatePath, tildeForwardSlashPrefixConstant) {
		return strings.TrimPrefix(candidatePath, tildeForwardSlashPrefixConstant), true
	}
	if tildeWithPathSeparatorPrefix != tildeForwardSlashPrefixConstant && strings.HasPrefix(candidatePath, tildeWithPathSeparatorPrefix) {
		return strings.TrimPrefix(candidatePath, tildeWithPathSeparatorPrefix), true
	}
	return "", false
}

func (expander *HomeExpander) resolveHomeDirectory() (string, error) {
	expander.initializationGuard.Do(func() {
		expander.homeDirectory, expander.homeDirectoryError = expander.homeDirectoryProvider()
		if expander.homeDirectoryError == nil && len(strings.TrimSpace(expander.homeDirectory)) == 0 {
			expander.homeDirectoryError = ErrHomeDirectoryEmpty
		}
	})
	return expander.homeDirectory, expander.homeDirectoryError
}
