// Package excel implements the xlsx bulk-transfer contract: the schedule
// template, upload parsing and export serialization. Column labels are a
// literal compatibility contract shared with previously distributed files,
// inconsistent accents and casing included — do not normalize them.
package excel

// dayColumn ties one schedule slot to its spreadsheet labels. The import and
// export label sets differ only on Wednesday ("miercoles" in the template and
// uploads, "Miércoles" in exports).
type dayColumn struct {
	Field       string
	ImportLabel string
	ExportLabel string
}

var dayColumns = []dayColumn{
	{"monday_start", "Lunes INICIO JORNADA", "Lunes INICIO JORNADA"},
	{"monday_break_start", "Lunes INICIO DESCANSO", "Lunes INICIO DESCANSO"},
	{"monday_break_end", "Lunes FIN DESCANSO", "Lunes FIN DESCANSO"},
	{"monday_end", "Lunes FIN JORNADA", "Lunes FIN JORNADA"},
	{"tuesday_start", "Martes INICIO JORNADA", "Martes INICIO JORNADA"},
	{"tuesday_break_start", "Martes INICIO DESCANSO", "Martes INICIO DESCANSO"},
	{"tuesday_break_end", "Martes FIN DESCANSO", "Martes FIN DESCANSO"},
	{"tuesday_end", "Martes FIN JORNADA", "Martes FIN JORNADA"},
	{"wednesday_start", "miercoles INICIO JORNADA", "Miércoles INICIO JORNADA"},
	{"wednesday_break_start", "miercoles INICIO DESCANSO", "Miércoles INICIO DESCANSO"},
	{"wednesday_break_end", "miercoles FIN DESCANSO", "Miércoles FIN DESCANSO"},
	{"wednesday_end", "miercoles FIN JORNADA", "Miércoles FIN JORNADA"},
	{"thursday_start", "Jueves INICIO JORNADA", "Jueves INICIO JORNADA"},
	{"thursday_break_start", "Jueves INICIO DESCANSO", "Jueves INICIO DESCANSO"},
	{"thursday_break_end", "Jueves FIN DESCANSO", "Jueves FIN DESCANSO"},
	{"thursday_end", "Jueves FIN JORNADA", "Jueves FIN JORNADA"},
	{"friday_start", "Viernes INICIO JORNADA", "Viernes INICIO JORNADA"},
	{"friday_break_start", "Viernes INICIO DESCANSO", "Viernes INICIO DESCANSO"},
	{"friday_break_end", "Viernes FIN DESCANSO", "Viernes FIN DESCANSO"},
	{"friday_end", "Viernes FIN JORNADA", "Viernes FIN JORNADA"},
	{"saturday_start", "Sábado INICIO JORNADA", "Sábado INICIO JORNADA"},
	{"saturday_break_start", "Sábado INICIO DESCANSO", "Sábado INICIO DESCANSO"},
	{"saturday_break_end", "Sábado FIN DESCANSO", "Sábado FIN DESCANSO"},
	{"saturday_end", "Sábado FIN JORNADA", "Sábado FIN JORNADA"},
	{"sunday_start", "Domingo INICIO JORNADA", "Domingo INICIO JORNADA"},
	{"sunday_break_start", "Domingo INICIO DESCANSO", "Domingo INICIO DESCANSO"},
	{"sunday_break_end", "Domingo FIN DESCANSO", "Domingo FIN DESCANSO"},
	{"sunday_end", "Domingo FIN JORNADA", "Domingo FIN JORNADA"},
}

// TemplateHeaders returns the header row of the downloadable template:
// identity columns, a validity window, then the 28 day/slot columns.
func TemplateHeaders() []string {
	headers := []string{"Nombre", "Servicio", "Desde", "Hasta"}
	for _, col := range dayColumns {
		headers = append(headers, col.ImportLabel)
	}
	return headers
}

// ExportHeaders returns the header row of exported schedule files.
func ExportHeaders() []string {
	headers := []string{"Nombre", "Servicio"}
	for _, col := range dayColumns {
		headers = append(headers, col.ExportLabel)
	}
	return headers
}
