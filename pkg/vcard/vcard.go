// Package vcard renders vCard 3.0 blocks for the contact export.
package vcard

import (
	"fmt"
	"strings"
	"time"
)

// Card is one exportable contact entry.
type Card struct {
	FullName string
	Tel      string
	Email    string // optional; EMAIL line omitted when empty
	Note     string
}

// Render emits a single vCard 3.0 block followed by a blank line, matching
// the layout the Ralph Xpert frontend has always consumed.
func (c Card) Render(b *strings.Builder) {
	b.WriteString("BEGIN:VCARD\n")
	b.WriteString("VERSION:3.0\n")
	fmt.Fprintf(b, "FN:%s\n", c.FullName)
	fmt.Fprintf(b, "TEL:%s\n", c.Tel)
	if c.Email != "" {
		fmt.Fprintf(b, "EMAIL:%s\n", c.Email)
	}
	if c.Note != "" {
		fmt.Fprintf(b, "NOTE:%s\n", c.Note)
	}
	b.WriteString("END:VCARD\n\n")
}

// RegistrationNote builds the NOTE line content for a contact registered
// through the public form. The date is rendered in the French day-first
// calendar format the original export used.
func RegistrationNote(product string, registeredAt time.Time) string {
	return fmt.Sprintf("Inscrit via %s le %s", product, registeredAt.Format("02/01/2006"))
}

// ExportFilename returns the download filename for an export generated on
// the given day, e.g. ralph_xpert_contacts_2025-08-30.vcf.
func ExportFilename(product string, day time.Time) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(product), " ", "_"))
	return fmt.Sprintf("%s_contacts_%s.vcf", slug, day.Format("2006-01-02"))
}
