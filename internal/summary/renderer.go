package summary

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/temirov/pluginwho/internal/contributors"
)

const (
	authorsSectionTitleConstant      = "Top authors"
	repositoriesSectionTitleConstant = "Most contributed plugins"
	firstCommitsSectionTitleConstant = "Oldest plugins"
	sectionTitleTemplateConstant     = "%s (%d of %d)\n"
	sectionSeparatorConstant         = "\n"
	unknownDateLabelConstant         = "unknown"
	undatedLabelTemplateConstant     = "%d undated"
	rankHeaderConstant               = "Rank"
	authorHeaderConstant             = "Author"
	commitsHeaderConstant            = "Commits"
	repositoryCountHeaderConstant    = "Plugins"
	topRepositoryHeaderConstant      = "Top plugin"
	repositoryHeaderConstant         = "Plugin"
	contributorsHeaderConstant       = "Contributors"
	firstCommitHeaderConstant        = "First commit"
)

// TableRenderer writes census reports as aligned tables.
type TableRenderer struct {
	writer    io.Writer
	highlight func(...any) string
	muted     func(...any) string
}

// NewTableRenderer builds a renderer; colors are applied only when useColors is set.
func NewTableRenderer(writer io.Writer, useColors bool) *TableRenderer {
	renderer := &TableRenderer{
		writer:    writer,
		highlight: fmt.Sprint,
		muted:     fmt.Sprint,
	}
	if useColors {
		highlightColor := color.New(color.FgCyan, color.Bold)
		highlightColor.EnableColor()
		mutedColor := color.New(color.FgYellow)
		mutedColor.EnableColor()
		renderer.highlight = highlightColor.SprintFunc()
		renderer.muted = mutedColor.SprintFunc()
	}
	return renderer
}

// Render prints all three sections. A limit of zero prints every row.
func (renderer *TableRenderer) Render(reports Reports, limit int) error {
	if renderError := renderer.RenderAuthors(reports.Authors, limit); renderError != nil {
		return renderError
	}
	if _, writeError := io.WriteString(renderer.writer, sectionSeparatorConstant); writeError != nil {
		return writeError
	}
	if renderError := renderer.RenderRepositories(reports.Repositories, limit); renderError != nil {
		return renderError
	}
	if _, writeError := io.WriteString(renderer.writer, sectionSeparatorConstant); writeError != nil {
		return writeError
	}
	return renderer.RenderFirstCommits(reports.FirstCommits, limit)
}

// RenderAuthors prints authors in report order.
func (renderer *TableRenderer) RenderAuthors(authors []contributors.Author, limit int) error {
	shown := limitRows(len(authors), limit)
	rows := make([][]string, 0, shown)
	for authorIndex, author := range authors[:shown] {
		rows = append(rows, []string{
			strconv.Itoa(authorIndex + 1),
			renderer.highlight(author.Name),
			strconv.Itoa(author.CommitCount),
			strconv.Itoa(author.RepositoryCount),
			topRepository(author.Repositories),
		})
	}
	headers := []string{rankHeaderConstant, authorHeaderConstant, commitsHeaderConstant, repositoryCountHeaderConstant, topRepositoryHeaderConstant}
	return renderer.renderSection(authorsSectionTitleConstant, shown, len(authors), headers, rows)
}

// RenderRepositories prints repositories in report order.
func (renderer *TableRenderer) RenderRepositories(repositories []contributors.RepositorySummary, limit int) error {
	shown := limitRows(len(repositories), limit)
	rows := make([][]string, 0, shown)
	for repositoryIndex, repository := range repositories[:shown] {
		rows = append(rows, []string{
			strconv.Itoa(repositoryIndex + 1),
			renderer.highlight(repository.Name),
			strconv.Itoa(repository.Contributors),
		})
	}
	headers := []string{rankHeaderConstant, repositoryHeaderConstant, contributorsHeaderConstant}
	return renderer.renderSection(repositoriesSectionTitleConstant, shown, len(repositories), headers, rows)
}

// RenderFirstCommits prints the oldest dated repositories first.
// Records without a parsed date sort first in the report and are skipped here.
func (renderer *TableRenderer) RenderFirstCommits(firstCommits []contributors.RepositoryFirstCommit, limit int) error {
	dated := make([]contributors.RepositoryFirstCommit, 0, len(firstCommits))
	undated := 0
	for _, record := range firstCommits {
		if record.Time == 0 {
			undated++
			continue
		}
		dated = append(dated, record)
	}

	shown := limitRows(len(dated), limit)
	rows := make([][]string, 0, shown+1)
	for recordIndex, record := range dated[:shown] {
		rows = append(rows, []string{
			strconv.Itoa(recordIndex + 1),
			renderer.highlight(record.Name),
			record.Date,
		})
	}
	if undated > 0 {
		rows = append(rows, []string{"", renderer.muted(fmt.Sprintf(undatedLabelTemplateConstant, undated)), renderer.muted(unknownDateLabelConstant)})
	}
	headers := []string{rankHeaderConstant, repositoryHeaderConstant, firstCommitHeaderConstant}
	return renderer.renderSection(firstCommitsSectionTitleConstant, shown, len(dated), headers, rows)
}

func (renderer *TableRenderer) renderSection(title string, shown int, total int, headers []string, rows [][]string) error {
	if _, writeError := fmt.Fprintf(renderer.writer, sectionTitleTemplateConstant, title, shown, total); writeError != nil {
		return writeError
	}

	table := tablewriter.NewWriter(renderer.writer)
	table.Header(headers)
	table.Configure(func(configuration *tablewriter.Config) {
		configuration.Row.Alignment.Global = tw.AlignLeft
	})
	if bulkError := table.Bulk(rows); bulkError != nil {
		return bulkError
	}
	return table.Render()
}

func limitRows(available int, limit int) int {
	if limit <= 0 || limit > available {
		return available
	}
	return limit
}

// topRepository picks the repository with the most commits, breaking ties by name.
func topRepository(repositories map[string]int) string {
	names := make([]string, 0, len(repositories))
	for name := range repositories {
		names = append(names, name)
	}
	sort.Slice(names, func(leftIndex, rightIndex int) bool {
		leftCount := repositories[names[leftIndex]]
		rightCount := repositories[names[rightIndex]]
		if leftCount != rightCount {
			return leftCount > rightCount
		}
		return names[leftIndex] < names[rightIndex]
	})
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
