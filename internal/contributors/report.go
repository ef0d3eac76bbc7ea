package contributors

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/temirov/pluginwho/internal/repos/shared"
)

const (
	reportFilePermissionsConstant     = 0o644
	reportIndentConstant              = "  "
	reportEncodeErrorTemplateConstant = "unable to encode report %s: %w"
	reportWriteErrorTemplateConstant  = "unable to write report %s: %w"
)

// ReportWriter serializes census collections as indented JSON arrays.
type ReportWriter struct {
	fileSystem shared.FileSystem
}

// NewReportWriter constructs a ReportWriter backed by fileSystem.
func NewReportWriter(fileSystem shared.FileSystem) *ReportWriter {
	return &ReportWriter{fileSystem: fileSystem}
}

// WriteAuthors writes the author table to path.
func (writer *ReportWriter) WriteAuthors(path string, authors []Author) error {
	if authors == nil {
		authors = []Author{}
	}
	return writer.write(path, authors)
}

// WriteRepositories writes the ranked repository summaries to path.
func (writer *ReportWriter) WriteRepositories(path string, repositories []RepositorySummary) error {
	if repositories == nil {
		repositories = []RepositorySummary{}
	}
	return writer.write(path, repositories)
}

// WriteFirstCommits writes the ordered first-commit records to path.
func (writer *ReportWriter) WriteFirstCommits(path string, firstCommits []RepositoryFirstCommit) error {
	if firstCommits == nil {
		firstCommits = []RepositoryFirstCommit{}
	}
	return writer.write(path, firstCommits)
}

// The destination directory is not created; a missing directory is a write error.
func (writer *ReportWriter) write(path string, document any) error {
	reportContent, encodeError := encodeReport(document)
	if encodeError != nil {
		return fmt.Errorf(reportEncodeErrorTemplateConstant, path, encodeError)
	}
	if writeError := writer.fileSystem.WriteFile(path, reportContent, reportFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(reportWriteErrorTemplateConstant, path, writeError)
	}
	return nil
}

func encodeReport(document any) ([]byte, error) {
	var reportBuffer bytes.Buffer
	encoder := json.NewEncoder(&reportBuffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", reportIndentConstant)
	if encodeError := encoder.Encode(document); encodeError != nil {
		return nil, encodeError
	}
	return reportBuffer.Bytes(), nil
}
