// Package flags provides helpers for describing enumerated Cobra flags.
package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	choicePlaceholderPrefix  = "<"
	choicePlaceholderSuffix  = ">"
	choiceSeparatorLiteral   = "|"
	choiceUsageEmptyTemplate = "`%s`"
	choiceUsageFullTemplate  = "`%s` %s"
)

// ChoiceFlagDefinition describes a string flag restricted to a known set of values.
type ChoiceFlagDefinition struct {
	Name          string
	DefaultChoice string
	Choices       []string
	Description   string
}

// BindPersistentChoiceFlag registers the flag on the command's persistent set and returns its value holder.
// Validation of the supplied value is left to the consumer.
func BindPersistentChoiceFlag(command *cobra.Command, definition ChoiceFlagDefinition) *string {
	value := definition.DefaultChoice
	if command == nil || len(strings.TrimSpace(definition.Name)) == 0 {
		return &value
	}

	persistentFlagSet := command.PersistentFlags()
	if persistentFlagSet.Lookup(definition.Name) != nil {
		return &value
	}

	usage := FormatChoiceUsage(definition.DefaultChoice, definition.Choices, definition.Description)
	persistentFlagSet.StringVar(&value, definition.Name, definition.DefaultChoice, usage)
	return &value
}

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := buildChoicePlaceholder(defaultChoice, choices)
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplate, placeholder, description)
}

func buildChoicePlaceholder(defaultChoice string, choices []string) string {
	highlightedChoices := highlightDefaultChoice(defaultChoice, choices)
	return choicePlaceholderPrefix + strings.Join(highlightedChoices, choiceSeparatorLiteral) + choicePlaceholderSuffix
}

func highlightDefaultChoice(defaultChoice string, choices []string) []string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	highlighted := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		if len(trimmedChoice) == 0 {
			continue
		}

		normalizedChoice := strings.ToLower(trimmedChoice)
		if _, exists := seen[normalizedChoice]; exists {
			continue
		}

		displayValue := trimmedChoice
		if normalizedChoice == normalizedDefault && len(normalizedChoice) > 0 {
			displayValue = strings.ToUpper(trimmedChoice)
		}

		highlighted = append(highlighted, displayValue)
		seen[normalizedChoice] = struct{}{}
	}

	return highlighted
}
