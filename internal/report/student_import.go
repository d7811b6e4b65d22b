package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/coursehub/coursehub-backend/internal/model"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

// ImportRowError describes a spreadsheet row that was skipped.
type ImportRowError struct {
	Row         int    `json:"row"`
	IndexNumber string `json:"index_number,omitempty"`
	Error       string `json:"error"`
}

// ImportReport summarises a student sheet.
type ImportReport struct {
	TotalRows int              `json:"total_rows"`
	ValidRows int              `json:"valid_rows"`
	Errors    []ImportRowError `json:"errors"`
}

var requiredStudentColumns = []string{"index_number", "first_name", "last_name"}

// ParseStudents reads students from the first sheet of an xlsx workbook.
// The header row must name index_number, first_name and last_name; email is
// optional. Invalid rows are reported and skipped.
func ParseStudents(r io.Reader) ([]model.Student, *ImportReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open excel: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("excel sheet is empty")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, errors.New("no data rows found")
	}

	header := map[string]int{}
	for i, h := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredStudentColumns {
		if _, ok := header[col]; !ok {
			return nil, nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	report := &ImportReport{Errors: make([]ImportRowError, 0)}
	seen := map[string]int{}
	var students []model.Student

	for i := 1; i < len(rows); i++ {
		rowNo := i + 1
		row := rows[i]
		get := func(key string) string {
			idx, ok := header[key]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		s := model.Student{
			IndexNumber: get("index_number"),
			FirstName:   get("first_name"),
			LastName:    get("last_name"),
			Email:       strings.ToLower(get("email")),
		}
		if s.IndexNumber == "" && s.FirstName == "" && s.LastName == "" && s.Email == "" {
			continue
		}
		report.TotalRows++

		fail := func(msg string) {
			report.Errors = append(report.Errors, ImportRowError{Row: rowNo, IndexNumber: s.IndexNumber, Error: msg})
		}
		switch {
		case s.IndexNumber == "" || s.FirstName == "" || s.LastName == "":
			fail("index_number, first_name and last_name are required")
			continue
		case s.Email != "" && !validEmail(s.Email):
			fail("invalid email")
			continue
		}
		if prev, dup := seen[s.IndexNumber]; dup {
			fail(fmt.Sprintf("duplicate of row %d", prev))
			continue
		}
		seen[s.IndexNumber] = rowNo

		students = append(students, s)
		report.ValidRows++
	}
	return students, report, nil
}

var cellValidator = govalidator.New()

// validEmail accepts a bare address only. Display-name forms are rejected.
func validEmail(s string) bool {
	return cellValidator.Var(s, "email") == nil
}
