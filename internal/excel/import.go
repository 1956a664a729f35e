package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ScheduleRow is one parsed upload row. Times maps schedule field names
// (models.ScheduleFields) to cell values; nil means the cell was blank.
type ScheduleRow struct {
	FullName string
	Service  string
	Times    map[string]*string
}

// ParseSchedules reads an uploaded xlsx file and returns one ScheduleRow per
// data row. Columns are matched by exact header label; rows with an empty
// Nombre cell are skipped.
func ParseSchedules(data []byte) ([]ScheduleRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}

	headerIndex := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		headerIndex[strings.TrimSpace(header)] = i
	}
	if _, ok := headerIndex["Nombre"]; !ok {
		return nil, fmt.Errorf("missing required column \"Nombre\"")
	}

	var parsed []ScheduleRow
	for _, row := range rows[1:] {
		name := cellValue(row, headerIndex["Nombre"])
		if name == "" || strings.EqualFold(name, "nan") {
			continue
		}

		sr := ScheduleRow{
			FullName: name,
			Service:  lookupCell(row, headerIndex, "Servicio"),
			Times:    make(map[string]*string, len(dayColumns)),
		}
		for _, col := range dayColumns {
			value := lookupCell(row, headerIndex, col.ImportLabel)
			if value == "" || value == "nan" {
				sr.Times[col.Field] = nil
			} else {
				v := value
				sr.Times[col.Field] = &v
			}
		}
		parsed = append(parsed, sr)
	}

	return parsed, nil
}

func lookupCell(row []string, headerIndex map[string]int, label string) string {
	idx, ok := headerIndex[label]
	if !ok {
		return ""
	}
	return cellValue(row, idx)
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
