// Package export renders sections and links as a deterministic,
// human-readable plain-text document for download.
package export

import (
	"strings"

	"github.com/Aakash17x08/linkhive/internal/domain"
)

const (
	// AllLinksTitle is the header of the whole-collection export.
	AllLinksTitle = "LinkHive - All Links"
	// AllLinksFileName is the download name for the whole-collection export.
	AllLinksFileName = "LinkHive-all-links.txt"
)

// FormatAll renders every non-private section that has at least one
// link: the fixed title with an '=' underline, then each section with a
// '-' underline, its link bullets, and a blank line between sections.
func FormatAll(sections []domain.Section) string {
	var b strings.Builder
	b.WriteString(AllLinksTitle + "\n")
	b.WriteString(strings.Repeat("=", len(AllLinksTitle)) + "\n\n")

	for _, section := range sections {
		if section.IsPrivate || len(section.Links) == 0 {
			continue
		}
		b.WriteString(section.Name + "\n")
		b.WriteString(strings.Repeat("-", len(section.Name)) + "\n\n")
		writeLinks(&b, section.Links)
		b.WriteString("\n")
	}

	return b.String()
}

// FormatSection renders a single section: its name with an '=' underline
// of matching length, then one bullet per link.
func FormatSection(section domain.Section) string {
	var b strings.Builder
	b.WriteString(section.Name + "\n")
	b.WriteString(strings.Repeat("=", len(section.Name)) + "\n\n")
	writeLinks(&b, section.Links)
	return b.String()
}

// SectionFileName is the download name for a single-section export.
func SectionFileName(section domain.Section) string {
	return section.Name + ".txt"
}

// writeLinks renders each link as a bullet with its URL and optional
// description, separated by blank lines.
func writeLinks(b *strings.Builder, links []domain.Link) {
	for _, link := range links {
		b.WriteString("• " + link.Name + "\n")
		b.WriteString("  URL: " + link.URL + "\n")
		if link.Description != "" {
			b.WriteString("  Description: " + link.Description + "\n")
		}
		b.WriteString("\n")
	}
}
