package domain

import (
	"encoding/json"
	"testing"
)

func TestDocumentDefaulting(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantDark bool
	}{
		{name: "empty object", payload: `{}`, wantDark: true},
		{name: "dark absent", payload: `{"sections":[]}`, wantDark: true},
		{name: "dark explicit false", payload: `{"isDark":false}`, wantDark: false},
		{name: "dark explicit true", payload: `{"isDark":true}`, wantDark: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc Document
			if err := json.Unmarshal([]byte(tt.payload), &doc); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.payload, err)
			}
			if doc.IsDark != tt.wantDark {
				t.Errorf("IsDark = %v, want %v", doc.IsDark, tt.wantDark)
			}
			if doc.Sections == nil {
				t.Error("Sections is nil, want empty slice")
			}
			if doc.ApplyEntries == nil {
				t.Error("ApplyEntries is nil, want empty slice")
			}
		})
	}
}

func TestDocumentMissingApplyEntries(t *testing.T) {
	// Documents written before the apply tracker existed must still load.
	payload := `{"sections":[{"id":"s1","name":"Dev","links":[]}],"isDark":true,"backgroundImage":""}`

	var doc Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if doc.ApplyEntries == nil || len(doc.ApplyEntries) != 0 {
		t.Errorf("ApplyEntries = %v, want empty slice", doc.ApplyEntries)
	}
	if len(doc.Sections) != 1 {
		t.Errorf("Sections = %d, want 1", len(doc.Sections))
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := Document{
		Sections: []Section{
			{
				ID:   "s1",
				Name: "Dev",
				Links: []Link{
					{ID: "l1", SectionID: "s1", URL: "https://go.dev", Name: "Go", Description: "lang", Favicon: "https://example/icon.png"},
					{ID: "l2", SectionID: "s1", URL: "https://pkg.go.dev", Name: "pkg", Description: ""},
				},
			},
			{ID: "s2", Name: "Private", Links: []Link{}, IsPrivate: true},
		},
		ApplyEntries: []ApplyEntry{
			{ID: "a1", Title: "Backend", Date: "2025-08-01", Description: "d", Role: "Go", CreatedAt: "2025-08-01T10:00:00Z"},
		},
		IsDark:          false,
		BackgroundImage: "data:image/png;base64,xyz",
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var back Document
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if len(back.Sections) != 2 || len(back.Sections[0].Links) != 2 {
		t.Fatalf("round trip lost sections/links: %+v", back.Sections)
	}
	if back.Sections[0].Links[0].Favicon != doc.Sections[0].Links[0].Favicon {
		t.Error("round trip lost favicon")
	}
	if back.Sections[0].Links[1].Description != "" {
		t.Error("round trip altered empty description")
	}
	if !back.Sections[1].IsPrivate {
		t.Error("round trip lost isPrivate flag")
	}
	if back.IsDark != false {
		t.Error("round trip lost explicit isDark=false")
	}
	if back.BackgroundImage != doc.BackgroundImage {
		t.Error("round trip lost backgroundImage")
	}
	if len(back.ApplyEntries) != 1 || back.ApplyEntries[0].CreatedAt != "2025-08-01T10:00:00Z" {
		t.Error("round trip lost apply entries")
	}
}

func TestPrivateSectionPicksFirst(t *testing.T) {
	doc := Document{Sections: []Section{
		{ID: "s1", Name: "Public"},
		{ID: "s2", Name: "Private A", IsPrivate: true},
		{ID: "s3", Name: "Private B", IsPrivate: true},
	}}

	got, ok := doc.PrivateSection()
	if !ok {
		t.Fatal("PrivateSection() = none, want s2")
	}
	if got.ID != "s2" {
		t.Errorf("PrivateSection().ID = %q, want s2 (first encountered)", got.ID)
	}
}

func TestCloneIsDeep(t *testing.T) {
	doc := Document{Sections: []Section{
		{ID: "s1", Name: "Dev", Links: []Link{{ID: "l1", Name: "Go"}}},
	}}

	clone := doc.Clone()
	clone.Sections[0].Links[0].Name = "changed"

	if doc.Sections[0].Links[0].Name != "Go" {
		t.Error("Clone() shares link storage with the original")
	}
}
