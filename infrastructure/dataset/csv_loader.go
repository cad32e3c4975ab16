// Package dataset reads applicant correction rows from CSV exports.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"applicant-corrector/domain/entities"
	"applicant-corrector/domain/errors"
	"applicant-corrector/domain/interfaces"
)

// Column headers of the correction export. ColumnApplicantID preserves the
// misspelling carried by the existing input files; ColumnApplicantIDAlias
// accepts regenerated files with the corrected spelling.
const (
	ColumnApplicantID      = "Applican ID"
	ColumnApplicantIDAlias = "Applicant ID"
	ColumnInstitution      = "Institution"
	ColumnEmploymentKey    = "Expected employment key"
	ColumnOccupationKey    = "Expected occupation key"
)

// csvLoader implements the DatasetLoader interface over encoding/csv.
type csvLoader struct {
	logger interfaces.Logger
}

// NewCSVLoader creates a new CSV dataset loader.
func NewCSVLoader(logger interfaces.Logger) interfaces.DatasetLoader {
	return &csvLoader{logger: logger}
}

// Load reads the dataset at path and returns its rows in file order. Cell
// values pass through untouched; in particular the occupation key stays
// text so leading zeros survive ingestion.
func (l *csvLoader) Load(path string, mode entities.RunMode) ([]entities.CorrectionRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &errors.DatasetError{Path: path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, &errors.DatasetError{Path: path, Err: fmt.Errorf("failed to read header: %w", err)}
	}

	columns, err := resolveColumns(headerIndex(header), mode)
	if err != nil {
		return nil, &errors.DatasetError{Path: path, Err: err}
	}

	var rows []entities.CorrectionRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &errors.DatasetError{Path: path, Err: err}
		}

		rows = append(rows, columns.row(record))
	}

	l.logger.Info("Loaded dataset", "path", path, "mode", string(mode), "rows", len(rows))

	return rows, nil
}

// headerIndex maps trimmed header names to their column positions. A UTF-8
// BOM on the first cell is stripped.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

// requiredColumn resolves a column by its primary name or any alias.
func requiredColumn(columns map[string]int, names ...string) (int, error) {
	for _, name := range names {
		if idx, ok := columns[name]; ok {
			return idx, nil
		}
	}
	return 0, errors.NewDomainError(errors.ErrInvalidInput, fmt.Sprintf("required column %q not found", names[0]))
}

// columnSet holds the resolved column positions for one run mode. Columns a
// mode does not use stay at -1.
type columnSet struct {
	applicantID    int
	institutionKey int
	employmentKey  int
	occupationKey  int
}

// resolveColumns checks that the mode's required columns are present.
func resolveColumns(columns map[string]int, mode entities.RunMode) (*columnSet, error) {
	set := &columnSet{applicantID: -1, institutionKey: -1, employmentKey: -1, occupationKey: -1}

	idx, err := requiredColumn(columns, ColumnApplicantID, ColumnApplicantIDAlias)
	if err != nil {
		return nil, err
	}
	set.applicantID = idx

	switch mode {
	case entities.RunModeOccupationUpdate:
		if set.employmentKey, err = requiredColumn(columns, ColumnEmploymentKey); err != nil {
			return nil, err
		}
		if set.occupationKey, err = requiredColumn(columns, ColumnOccupationKey); err != nil {
			return nil, err
		}
	case entities.RunModeAddComment:
		if set.institutionKey, err = requiredColumn(columns, ColumnInstitution); err != nil {
			return nil, err
		}
	default:
		return nil, errors.NewDomainError(errors.ErrInvalidInput, fmt.Sprintf("unknown run mode %q", mode))
	}

	return set, nil
}

// row projects one CSV record onto a correction row.
func (s *columnSet) row(record []string) entities.CorrectionRow {
	row := entities.CorrectionRow{ApplicantID: record[s.applicantID]}

	if s.institutionKey >= 0 {
		row.InstitutionKey = record[s.institutionKey]
	}
	if s.employmentKey >= 0 {
		row.EmploymentKey = record[s.employmentKey]
	}
	if s.occupationKey >= 0 {
		row.OccupationKey = record[s.occupationKey]
	}

	return row
}
