package excel

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// TemplateSheetName is the single worksheet of the schedule template.
const TemplateSheetName = "Plantilla Horarios"

var sampleRow = []string{
	"Juan Pérez", "Administración", "2024-01-01", "2024-12-31",
	"08:00", "12:00", "13:00", "17:00", // Lunes
	"08:00", "12:00", "13:00", "17:00", // Martes
	"08:00", "12:00", "13:00", "17:00", // miercoles
	"08:00", "12:00", "13:00", "17:00", // Jueves
	"08:00", "12:00", "13:00", "17:00", // Viernes
	"", "", "", "", // Sábado
	"", "", "", "", // Domingo
}

// BuildTemplate produces the fillable xlsx template: one styled header row
// and one illustrative sample row.
func BuildTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), TemplateSheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"CCCCCC"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	sampleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Color: "666666"},
	})
	if err != nil {
		return nil, err
	}

	headers := TemplateHeaders()
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(TemplateSheetName, cell, header); err != nil {
			return nil, err
		}
	}
	for i, value := range sampleRow {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(TemplateSheetName, cell, value); err != nil {
			return nil, err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(TemplateSheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(TemplateSheetName, "A2", lastCol+"2", sampleStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(TemplateSheetName, "A", lastCol, 20); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}
