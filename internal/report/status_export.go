// Package report reads and writes the spreadsheets exchanged with staff.
package report

import (
	"bytes"
	"fmt"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	StatusSheet  = "Status"
	ResultsSheet = "Results"

	// XLSXContentType is the MIME type of the generated workbooks.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var statusHeaders = []string{"index_number", "student", "total_scored", "total_max_points", "passed"}

var resultHeaders = []string{"index_number", "student", "exam_id", "exam_type", "points_scored", "total_points", "passed"}

// StatusFileName is the download name for a course's status workbook.
func StatusFileName(c model.Course) string {
	return fmt.Sprintf("course-%d-status.xlsx", c.ID)
}

// ExportCourseStatus renders a course status as an xlsx workbook with a
// per-student sheet and a per-result sheet.
func ExportCourseStatus(st *model.CourseStatus) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), StatusSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ResultsSheet); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	teacher := ""
	if st.Course.Teacher != nil {
		teacher = st.Course.Teacher.DisplayName()
	}
	summary := [][]any{
		{"course", st.Course.Name},
		{"academic_year", st.Course.AcademicYear},
		{"semester", string(st.Course.Semester)},
		{"teacher", teacher},
		{"maximum_points", st.Maximum},
		{"number_of_students", st.NumberOfStudents},
		{"number_of_passed", st.NumberOfPassed},
	}
	for i, row := range summary {
		setRow(f, StatusSheet, i+1, row)
	}

	tableStart := len(summary) + 2
	setRow(f, StatusSheet, tableStart, toAny(statusHeaders))
	resultRow := 2
	setRow(f, ResultsSheet, 1, toAny(resultHeaders))

	for i, s := range st.Info {
		setRow(f, StatusSheet, tableStart+1+i, []any{
			s.IndexNumber,
			s.StudentName,
			s.TotalScored,
			s.TotalMaxPoints,
			yesNo(s.IsPassedOverall),
		})
		for _, r := range s.Results {
			setRow(f, ResultsSheet, resultRow, []any{
				s.IndexNumber,
				s.StudentName,
				r.ExamID,
				string(r.ExamType),
				r.PointsScored,
				r.TotalPoints,
				yesNo(r.IsPassed),
			})
			resultRow++
		}
	}
	_ = f.SetColWidth(StatusSheet, "A", "E", 20)
	_ = f.SetColWidth(ResultsSheet, "A", "G", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) {
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
