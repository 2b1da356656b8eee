package seed

import "testing"

func TestMapDocument(t *testing.T) {
	dark := false
	config := Config{
		IsDark: &dark,
		Sections: []SectionProps{
			{
				Name: "Dev",
				Links: []LinkProps{
					{URL: "https://go.dev", Name: "Go", Description: "lang"},
					{URL: "not a url", Name: "Broken"}, // skipped
				},
			},
			{Name: ""}, // skipped
		},
	}

	doc, skipped := NewMapper().MapDocument(config)

	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("mapped %d sections, want 1", len(doc.Sections))
	}
	section := doc.Sections[0]
	if len(section.Links) != 1 {
		t.Fatalf("mapped %d links, want 1", len(section.Links))
	}
	link := section.Links[0]
	if link.ID == "" || link.SectionID != section.ID {
		t.Errorf("link identity not wired: %+v", link)
	}
	if doc.IsDark {
		t.Error("isDark override lost")
	}
}

func TestMapDocumentDefaults(t *testing.T) {
	doc, skipped := NewMapper().MapDocument(Config{})

	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if !doc.IsDark {
		t.Error("IsDark default should be true")
	}
	if doc.Sections == nil || doc.ApplyEntries == nil {
		t.Error("mapped document has nil sequences")
	}
}

func TestMapDocumentSinglePrivateSection(t *testing.T) {
	config := Config{Sections: []SectionProps{
		{Name: "A", Private: true},
		{Name: "B", Private: true},
	}}

	doc, _ := NewMapper().MapDocument(config)

	private := 0
	for _, s := range doc.Sections {
		if s.IsPrivate {
			private++
		}
	}
	if private != 1 {
		t.Errorf("mapped %d private sections, want at most 1", private)
	}
	if !doc.Sections[0].IsPrivate {
		t.Error("first private flag should win")
	}
}
