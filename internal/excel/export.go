package excel

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// ExportRow is one schedule joined with its owning user, ready to be written
// to the export file.
type ExportRow struct {
	FullName string
	Service  string
	Times    map[string]*string
}

// BuildExport serializes schedules to an xlsx file, one row per schedule,
// using the export header set.
func BuildExport(rows []ExportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)

	for i, header := range ExportHeaders() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		values := []string{row.FullName, row.Service}
		for _, col := range dayColumns {
			if v := row.Times[col.Field]; v != nil {
				values = append(values, *v)
			} else {
				values = append(values, "")
			}
		}
		for i, value := range values {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}
