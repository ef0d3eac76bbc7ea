package contributors

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/temirov/pluginwho/internal/repos/shared"
)

const (
	tablesParseErrorTemplateConstant     = "unable to parse identity tables: %w"
	tablesReadErrorTemplateConstant      = "unable to read identity tables %s: %w"
	aliasSourceEmptyMessageConstant      = "alias with an empty author name"
	aliasCanonicalEmptyTemplateConstant  = "alias %q has an empty canonical name"
	ignoredNameSeparatorTemplateConstant = "ignored name %q must be a single directory name"
	pathSeparatorCharactersConstant      = `/\`
)

//go:embed default_tables.yaml
var embeddedDefaultTables []byte

// ErrAliasSourceEmpty indicates an alias entry without an author name to match.
var ErrAliasSourceEmpty = errors.New(aliasSourceEmptyMessageConstant)

// AliasTable maps raw shortlog author names to canonical names.
type AliasTable map[string]string

// Resolve returns the canonical name for rawName, or rawName itself when no alias matches exactly.
func (table AliasTable) Resolve(rawName string) string {
	if canonicalName, aliased := table[rawName]; aliased {
		return canonicalName
	}
	return rawName
}

// IdentityTables bundles the alias table and the set of ignored plugin directories.
type IdentityTables struct {
	Aliases AliasTable
	Ignored map[string]struct{}
}

type tablesDocument struct {
	Aliases map[string]string `yaml:"aliases"`
	Ignore  []string          `yaml:"ignore"`
}

// DefaultTables returns the built-in identity tables.
func DefaultTables() (IdentityTables, error) {
	return ParseTables(embeddedDefaultTables)
}

// LoadTables reads identity tables from tablesPath, or returns the built-in tables when the path is empty.
// A file replaces the built-in tables entirely.
func LoadTables(fileSystem shared.FileSystem, tablesPath string) (IdentityTables, error) {
	if len(strings.TrimSpace(tablesPath)) == 0 {
		return DefaultTables()
	}

	tablesContent, readError := fileSystem.ReadFile(tablesPath)
	if readError != nil {
		return IdentityTables{}, fmt.Errorf(tablesReadErrorTemplateConstant, tablesPath, readError)
	}
	return ParseTables(tablesContent)
}

// ParseTables decodes a YAML identity tables document. Unknown keys are rejected.
func ParseTables(tablesContent []byte) (IdentityTables, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(tablesContent))
	decoder.KnownFields(true)

	var document tablesDocument
	if decodeError := decoder.Decode(&document); decodeError != nil && !errors.Is(decodeError, io.EOF) {
		return IdentityTables{}, fmt.Errorf(tablesParseErrorTemplateConstant, decodeError)
	}

	aliases := make(AliasTable, len(document.Aliases))
	for rawName, canonicalName := range document.Aliases {
		trimmedRawName := strings.TrimSpace(rawName)
		if len(trimmedRawName) == 0 {
			return IdentityTables{}, fmt.Errorf(tablesParseErrorTemplateConstant, ErrAliasSourceEmpty)
		}
		trimmedCanonicalName := strings.TrimSpace(canonicalName)
		if len(trimmedCanonicalName) == 0 {
			return IdentityTables{}, fmt.Errorf(tablesParseErrorTemplateConstant, fmt.Errorf(aliasCanonicalEmptyTemplateConstant, trimmedRawName))
		}
		aliases[trimmedRawName] = trimmedCanonicalName
	}

	ignored := make(map[string]struct{}, len(document.Ignore))
	for _, ignoredName := range document.Ignore {
		trimmedIgnoredName := strings.TrimSpace(ignoredName)
		if len(trimmedIgnoredName) == 0 {
			continue
		}
		if strings.ContainsAny(trimmedIgnoredName, pathSeparatorCharactersConstant) {
			return IdentityTables{}, fmt.Errorf(tablesParseErrorTemplateConstant, fmt.Errorf(ignoredNameSeparatorTemplateConstant, trimmedIgnoredName))
		}
		ignored[trimmedIgnoredName] = struct{}{}
	}

	return IdentityTables{Aliases: aliases, Ignored: ignored}, nil
}
