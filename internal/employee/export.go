package employee

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// Exporter serializes the full directory listing for download.
type Exporter interface {
	Write(w io.Writer, employees []*Employee) error
}

// ExcelExporter writes an .xlsx workbook with one "Employees" sheet.
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

var exportHeader = []string{"Name", "Email", "Department", "Position", "Phone"}

func (e *ExcelExporter) Write(w io.Writer, employees []*Employee) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Employees"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, emp := range employees {
		row := []interface{}{
			emp.FullName(),
			emp.Email,
			deref(emp.Department),
			deref(emp.Position),
			deref(emp.PhoneNumber),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
