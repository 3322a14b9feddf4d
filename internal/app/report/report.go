// Package report renders employee listings as Excel workbooks.
package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/pkg/validation"
)

// SheetName is the single worksheet of an employee export
const SheetName = "Employees"

// ContentType is the MIME type of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []string{
	"ID", "Full name", "Birth date", "Start date", "Salary", "Rate",
	"Status", "Phone number", "Email", "Department", "Position",
}

var columnWidths = map[string]float64{
	"A": 8, "B": 30, "C": 14, "D": 14, "E": 12, "F": 8,
	"G": 14, "H": 18, "I": 30, "J": 24, "K": 24,
}

// Lookup resolves department and position ids to display names
type Lookup struct {
	Departments map[int64]string
	Positions   map[int64]string
}

func (l Lookup) department(id int64) string {
	if name, ok := l.Departments[id]; ok {
		return name
	}
	return strconv.FormatInt(id, 10)
}

func (l Lookup) position(id int64) string {
	if name, ok := l.Positions[id]; ok {
		return name
	}
	return strconv.FormatInt(id, 10)
}

// Generator holds the state for the Excel report generation process.
type Generator struct {
	file   *excelize.File
	lookup Lookup
}

// NewGenerator creates a new report generator.
func NewGenerator(lookup Lookup) *Generator {
	return &Generator{
		file:   excelize.NewFile(),
		lookup: lookup,
	}
}

// EmployeeWorkbook writes employees, in the given order, to a single-sheet
// workbook. An empty slice yields a workbook holding only the header row.
func EmployeeWorkbook(employees []*models.Employee, lookup Lookup) (*bytes.Buffer, error) {
	gen := NewGenerator(lookup)
	defer gen.file.Close()

	if err := gen.file.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}

	if err := gen.setupSheet(len(employees)); err != nil {
		return nil, fmt.Errorf("failed to setup sheet: %w", err)
	}

	for i, e := range employees {
		if err := gen.addRow(i+2, e); err != nil {
			return nil, fmt.Errorf("failed to add row '%d': %w", i+2, err)
		}
	}

	buffer, err := gen.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buffer, nil
}

// setupSheet writes the styled header row and sizes the columns.
func (g *Generator) setupSheet(rowCount int) error {
	headerStyle, err := g.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center", Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create new style: %w", err)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))

	if err = g.file.SetRowHeight(SheetName, 1, 20); err != nil {
		return fmt.Errorf("failed to set row height for headers: %w", err)
	}
	if err = g.file.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("failed to set sheet row for headers: %w", err)
	}
	if err = g.file.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to set cell style for headers: %w", err)
	}

	for col, width := range columnWidths {
		if err = g.file.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if rowCount == 0 {
		return nil
	}
	if err = g.file.AddTable(SheetName, &excelize.Table{
		Range:     fmt.Sprintf("A1:%s%d", lastCol, rowCount+1),
		Name:      "table_employees",
		StyleName: "TableStyleMedium9",
	}); err != nil {
		return fmt.Errorf("failed to add table: %w", err)
	}

	return nil
}

// addRow writes one employee at rowNum.
func (g *Generator) addRow(rowNum int, e *models.Employee) error {
	rowData := []interface{}{
		e.ID,
		e.FullName,
		e.BirthDate.Format(validation.DateLayout),
		e.StartDate.Format(validation.DateLayout),
		e.Salary,
		e.Rate,
		e.Status,
		e.PhoneNumber,
		e.Email,
		g.lookup.department(e.DepartmentID),
		g.lookup.position(e.PositionID),
	}
	cell, _ := excelize.CoordinatesToCellName(1, rowNum)

	if err := g.file.SetSheetRow(SheetName, cell, &rowData); err != nil {
		return fmt.Errorf("failed to set sheet row: %w", err)
	}
	return nil
}
