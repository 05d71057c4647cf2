package service

import (
	"strings"

	"github.com/leadflowbr/leadflow_end/models"
)

// ExportColumns fixed CSV column order for the lead export entry point.
var ExportColumns = []string{
	"Company Name",
	"Industry",
	"Location",
	"Contact Name",
	"Email",
	"Phone",
	"Status",
	"Tags",
	"Notes",
}

// LeadsToCSV renders leads as CSV text. Every field is individually quoted,
// empty fields render as "", and tags join with ";" inside one quoted field.
func LeadsToCSV(leads []models.Lead) string {
	var b strings.Builder

	writeRow(&b, ExportColumns)

	for _, lead := range leads {
		writeRow(&b, []string{
			lead.CompanyName,
			lead.Industry,
			lead.Location,
			lead.ContactName,
			lead.Email,
			lead.Phone,
			string(lead.Status),
			strings.Join(lead.Tags, ";"),
			lead.Notes,
		})
	}

	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
