package domain

import "encoding/json"

// Link is a single bookmarked URL with display metadata.
//
// A Link is owned by exactly one Section and dies with it.
type Link struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier.
	ID string `json:"id"`

	// SectionID is the ID of the owning Section.
	SectionID string `json:"sectionId"`

	// ─────────────────────────────
	// Editable fields
	// ─────────────────────────────

	// URL is the bookmarked address. Must parse as an absolute URL.
	URL string `json:"url"`

	// Name is the display name. Must be non-empty.
	Name string `json:"name"`

	// Description is an optional free-form note.
	Description string `json:"description"`

	// ─────────────────────────────
	// Decoration
	// ─────────────────────────────

	// Favicon is a best-effort icon URL resolved from the link's host.
	// Empty until (and unless) resolution succeeds.
	Favicon string `json:"favicon,omitempty"`
}

// Section is a named, ordered collection of Links.
// Ordering of both sections and their links is user-controlled.
type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Links is the ordered link sequence. Never nil after Normalize.
	Links []Link `json:"links"`

	// IsPrivate marks the soft-hidden section. At most one section
	// carries the flag; creation enforces it, readers pick the first.
	IsPrivate bool `json:"isPrivate,omitempty"`
}

// ApplyEntry is a tracked job-application record, independent of sections.
type ApplyEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // ISO date, as entered
	Description string `json:"description"`
	Role        string `json:"role"`
	CreatedAt   string `json:"createdAt"` // RFC3339, stamped on creation
}

// Document is the single unit of persistence: every mutation anywhere in
// the model re-serializes the whole document.
type Document struct {
	Sections        []Section    `json:"sections"`
	ApplyEntries    []ApplyEntry `json:"applyEntries"`
	IsDark          bool         `json:"isDark"`
	BackgroundImage string       `json:"backgroundImage"` // data URI or empty
}

// DefaultDocument returns the document used when no prior data exists.
func DefaultDocument() Document {
	return Document{
		Sections:     []Section{},
		ApplyEntries: []ApplyEntry{},
		IsDark:       true,
	}
}

// UnmarshalJSON applies backward-compatible defaulting: any missing
// top-level field falls back to empty-sequence / true / empty-string, so
// documents written by an older schema still load.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Sections        []Section    `json:"sections"`
		ApplyEntries    []ApplyEntry `json:"applyEntries"`
		IsDark          *bool        `json:"isDark"`
		BackgroundImage string       `json:"backgroundImage"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Sections = raw.Sections
	d.ApplyEntries = raw.ApplyEntries
	d.BackgroundImage = raw.BackgroundImage
	// Absent means dark; only an explicit false turns it off.
	d.IsDark = raw.IsDark == nil || *raw.IsDark
	d.Normalize()
	return nil
}

// Normalize replaces nil sequences with empty ones so that consumers and
// the serialized form never see null arrays.
func (d *Document) Normalize() {
	if d.Sections == nil {
		d.Sections = []Section{}
	}
	for i := range d.Sections {
		if d.Sections[i].Links == nil {
			d.Sections[i].Links = []Link{}
		}
	}
	if d.ApplyEntries == nil {
		d.ApplyEntries = []ApplyEntry{}
	}
}

// Clone returns a deep copy of the document. Mutating the copy never
// touches the original's link slices.
func (d Document) Clone() Document {
	out := d
	out.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		cs := s
		cs.Links = make([]Link, len(s.Links))
		copy(cs.Links, s.Links)
		out.Sections[i] = cs
	}
	out.ApplyEntries = make([]ApplyEntry, len(d.ApplyEntries))
	copy(out.ApplyEntries, d.ApplyEntries)
	return out
}

// PrivateSection returns the first section flagged private, if any.
func (d Document) PrivateSection() (Section, bool) {
	for _, s := range d.Sections {
		if s.IsPrivate {
			return s, true
		}
	}
	return Section{}, false
}

// PublicSections returns the sections without the private one, in order.
func (d Document) PublicSections() []Section {
	out := make([]Section, 0, len(d.Sections))
	for _, s := range d.Sections {
		if !s.IsPrivate {
			out = append(out, s)
		}
	}
	return out
}
