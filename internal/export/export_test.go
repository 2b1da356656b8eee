package export

import (
	"strings"
	"testing"

	"github.com/Aakash17x08/linkhive/internal/domain"
)

func TestFormatSection(t *testing.T) {
	section := domain.Section{
		Name: "Dev",
		Links: []domain.Link{
			{Name: "A", URL: "http://a", Description: ""},
			{Name: "B", URL: "http://b", Description: "desc"},
		},
	}

	got := FormatSection(section)
	want := strings.Join([]string{
		"Dev",
		"===",
		"",
		"• A",
		"  URL: http://a",
		"",
		"• B",
		"  URL: http://b",
		"  Description: desc",
		"",
		"",
	}, "\n")

	if got != want {
		t.Errorf("FormatSection() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatSectionUnderlineMatchesNameLength(t *testing.T) {
	tests := []string{"A", "Dev", "A Longer Section Name"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			lines := strings.Split(FormatSection(domain.Section{Name: name}), "\n")
			if lines[0] != name {
				t.Errorf("header = %q, want %q", lines[0], name)
			}
			if lines[1] != strings.Repeat("=", len(name)) {
				t.Errorf("underline = %q, want %d '='", lines[1], len(name))
			}
		})
	}
}

func TestFormatAll(t *testing.T) {
	sections := []domain.Section{
		{Name: "Dev", Links: []domain.Link{{Name: "Go", URL: "https://go.dev"}}},
		{Name: "Empty"}, // skipped: no links
		{Name: "Hidden", IsPrivate: true, Links: []domain.Link{{Name: "X", URL: "https://x"}}},
		{Name: "Tools", Links: []domain.Link{{Name: "Figma", URL: "https://figma.com", Description: "design"}}},
	}

	got := FormatAll(sections)

	if !strings.HasPrefix(got, "LinkHive - All Links\n====================\n\n") {
		t.Errorf("FormatAll() header wrong:\n%q", got)
	}
	if !strings.Contains(got, "Dev\n---\n\n• Go\n  URL: https://go.dev\n") {
		t.Errorf("FormatAll() missing Dev section:\n%q", got)
	}
	if !strings.Contains(got, "Tools\n-----\n\n• Figma\n  URL: https://figma.com\n  Description: design\n") {
		t.Errorf("FormatAll() missing Tools section:\n%q", got)
	}
	if strings.Contains(got, "Hidden") || strings.Contains(got, "https://x") {
		t.Error("FormatAll() leaked the private section")
	}
	if strings.Contains(got, "Empty") {
		t.Error("FormatAll() included a section with no links")
	}
}

func TestFormatAllIsDeterministic(t *testing.T) {
	sections := []domain.Section{
		{Name: "One", Links: []domain.Link{{Name: "A", URL: "http://a"}}},
		{Name: "Two", Links: []domain.Link{{Name: "B", URL: "http://b"}}},
	}

	first := FormatAll(sections)
	second := FormatAll(sections)
	if first != second {
		t.Error("FormatAll() is not deterministic")
	}

	// Section order in the output follows input order.
	if strings.Index(first, "One") > strings.Index(first, "Two") {
		t.Error("FormatAll() reordered sections")
	}
}

func TestFileNames(t *testing.T) {
	if got := SectionFileName(domain.Section{Name: "My Tools"}); got != "My Tools.txt" {
		t.Errorf("SectionFileName() = %q, want My Tools.txt", got)
	}
	if AllLinksFileName != "LinkHive-all-links.txt" {
		t.Errorf("AllLinksFileName = %q", AllLinksFileName)
	}
}
