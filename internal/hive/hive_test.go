package hive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/Aakash17x08/linkhive/internal/domain"
	"github.com/Aakash17x08/linkhive/internal/logger"
	redisstore "github.com/Aakash17x08/linkhive/internal/store/redis"
)

// fakeStore keeps the persisted document in memory, serialized the same
// way the real store serializes it.
type fakeStore struct {
	data    []byte
	saves   int
	failing bool
}

func (f *fakeStore) SaveDocument(_ context.Context, doc domain.Document) error {
	if f.failing {
		return errors.New("store unavailable")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	f.data = data
	f.saves++
	return nil
}

func (f *fakeStore) LoadDocument(_ context.Context) (domain.Document, bool, error) {
	if f.data == nil {
		return domain.Document{}, false, nil
	}
	var doc domain.Document
	if err := json.Unmarshal(f.data, &doc); err != nil {
		return domain.Document{}, false, fmt.Errorf("%w: %v", redisstore.ErrCorruptDocument, err)
	}
	return doc, true, nil
}

func (f *fakeStore) persisted(t *testing.T) domain.Document {
	t.Helper()
	if f.data == nil {
		t.Fatal("nothing persisted yet")
	}
	var doc domain.Document
	if err := json.Unmarshal(f.data, &doc); err != nil {
		t.Fatalf("persisted document does not parse: %v", err)
	}
	return doc
}

func newTestHive(t *testing.T) (*Hive, *fakeStore) {
	t.Helper()
	store := &fakeStore{}
	h := New(store, logger.New("error", false))
	return h, store
}

func TestCreateSection(t *testing.T) {
	h, store := newTestHive(t)
	ctx := context.Background()

	first, ok := h.CreateSection(ctx, "Dev")
	if !ok {
		t.Fatal("CreateSection(Dev) rejected")
	}
	second, _ := h.CreateSection(ctx, "Tools")

	doc := h.Snapshot()
	if len(doc.Sections) != 2 {
		t.Fatalf("Snapshot() has %d sections, want 2", len(doc.Sections))
	}
	if doc.Sections[0].ID != first.ID || doc.Sections[1].ID != second.ID {
		t.Error("sections are not in creation order")
	}
	if first.ID == second.ID {
		t.Error("CreateSection generated duplicate ids")
	}
	if len(first.Links) != 0 {
		t.Errorf("new section has %d links, want 0", len(first.Links))
	}

	persisted := store.persisted(t)
	if len(persisted.Sections) != 2 {
		t.Errorf("persisted document has %d sections, want 2", len(persisted.Sections))
	}
}

func TestCreateSectionEmptyNameNoop(t *testing.T) {
	h, store := newTestHive(t)

	tests := []string{"", "   ", "\t"}
	for _, name := range tests {
		if _, ok := h.CreateSection(context.Background(), name); ok {
			t.Errorf("CreateSection(%q) accepted, want silent no-op", name)
		}
	}
	if len(h.Snapshot().Sections) != 0 {
		t.Error("empty-name creation mutated the document")
	}
	if store.saves != 0 {
		t.Errorf("empty-name creation persisted %d times, want 0", store.saves)
	}
}

func TestAddLinkRejectsInvalidInput(t *testing.T) {
	h, _ := newTestHive(t)
	ctx := context.Background()
	section, _ := h.CreateSection(ctx, "Dev")

	tests := []struct {
		name  string
		url   string
		label string
	}{
		{name: "not a url", url: "not a url", label: "Bad"},
		{name: "empty name", url: "https://example.com", label: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.AddLink(ctx, section.ID, tt.url, tt.label, "")
			if !domain.IsValidation(err) {
				t.Fatalf("AddLink() error = %v, want ValidationError", err)
			}
		})
	}

	if got := h.Snapshot().Sections[0].Links; len(got) != 0 {
		t.Errorf("rejected AddLink left %d links behind, want 0", len(got))
	}
}

func TestAddLinkUnknownSection(t *testing.T) {
	h, _ := newTestHive(t)

	_, err := h.AddLink(context.Background(), "missing", "https://example.com", "X", "")
	if !domain.IsNotFound(err) {
		t.Errorf("AddLink(unknown section) error = %v, want NotFoundError", err)
	}
}

func TestAddLinkWriteThrough(t *testing.T) {
	h, store := newTestHive(t)
	ctx := context.Background()
	section, _ := h.CreateSection(ctx, "Dev")

	link, err := h.AddLink(ctx, section.ID, "https://go.dev", "Go", "the language")
	if err != nil {
		t.Fatalf("AddLink() error: %v", err)
	}
	if link.SectionID != section.ID {
		t.Errorf("link.SectionID = %q, want %q", link.SectionID, section.ID)
	}

	persisted := store.persisted(t)
	if len(persisted.Sections[0].Links) != 1 {
		t.Fatalf("persisted section has %d links, want 1", len(persisted.Sections[0].Links))
	}
	got := persisted.Sections[0].Links[0]
	if got.ID != link.ID || got.URL != "https://go.dev" || got.Name != "Go" || got.Description != "the language" {
		t.Errorf("persisted link = %+v, differs from returned link %+v", got, link)
	}
}

func TestEditLinkPreservesIdentityAndPosition(t *testing.T) {
	h, _ := newTestHive(t)
	ctx := context.Background()
	section, _ := h.CreateSection(ctx, "Dev")
	first, _ := h.AddLink(ctx, section.ID, "https://a.example", "A", "")
	second, _ := h.AddLink(ctx, section.ID, "https://b.example", "B", "")

	if err := h.EditLink(ctx, section.ID, first.ID, "https://a2.example", "A2", "edited"); err != nil {
		t.Fatalf("EditLink() error: %v", err)
	}

	links := h.Snapshot().Sections[0].Links
	if links[0].ID != first.ID {
		t.Error("EditLink changed the link id")
	}
	if links[0].URL != "https://a2.example" || links[0].Name != "A2" || links[0].Description != "edited" {
		t.Errorf("EditLink did not apply fields: %+v", links[0])
	}
	if links[1].ID != second.ID || links[1].Name != "B" {
		t.Error("EditLink disturbed the sibling link")
	}
}

func TestEditLinkValidationLeavesStateUntouched(t *testing.T) {
	h, _ := newTestHive(t)
	ctx := context.Background()
	section, _ := h.CreateSection(ctx, "Dev")
	link, _ := h.AddLink(ctx, section.ID, "https://a.example", "A", "")

	if err := h.EditLink(ctx, section.ID, link.ID, "not a url", "A", ""); !domain.IsValidation(err) {
		t.Fatalf("EditLink(bad url) error = %v, want ValidationError", err)
	}

	got := h.Snapshot().Sections[0].Links[0]
	if got.URL != "https://a.example" {
		t.Errorf("rejected edit mutated the link: %+v", got)
	}
}

func TestDeleteLink(t *testing.T) {
	h, store := newTestHive(t)
	ctx := context.Background()
	section, _ := h.CreateSection(ctx, "Dev")
	a, _ := h.AddLink(ctx, section.ID, "https://a.example", "A", "")
	b, _ := h.AddLink(ctx, section.ID, "https://b.example", "B", "")

	if err := h.DeleteLink(ctx, section.ID, a.ID); err != nil {
		t.Fatalf("DeleteLink() error: %v", err)
	}

	links := h.Snapshot().Sections[0].Links
	if len(links) != 1 || links[0].ID != b.ID {
		t.Errorf("after delete, links = %+v, want just %s", links, b.ID)
	}
	if got := store.persisted(t).Sections[0].Links; len(got) != 1 {
		t.Errorf("persisted links = %d, want 1", len(got))
	}

	if err := h.DeleteLink(ctx, section.ID, a.ID); !domain.IsNotFound(err) {
		t.Errorf("second DeleteLink error = %v, want NotFoundError", err)
	}
}

func TestDeleteSectionCascades(t *testing.T) {
	h, _ := newTestHive(t)
	ctx := context.Background()
	section, _ := h.CreateSection(ctx, "Dev")
	keep, _ := h.CreateSection(ctx, "Keep")
	_, _ = h.AddLink(ctx, section.ID, "https://a.example", "A", "")

	if err := h.DeleteSection(ctx, section.ID); err != nil {
		t.Fatalf("DeleteSection() error: %v", err)
	}

	doc := h.Snapshot()
	if len(doc.Sections) != 1 || doc.Sections[0].ID != keep.ID {
		t.Errorf("after delete, sections = %+v", doc.Sections)
	}
}

func TestReorderLinks(t *testing.T) {
	h, store := newTestHive(t)
	ctx := context.Background()
	section, _ := h.CreateSection(ctx, "Dev")
	a, _ := h.AddLink(ctx, section.ID, "https://a.example", "A", "")
	b, _ := h.AddLink(ctx, section.ID, "https://b.example", "B", "")
	c, _ := h.AddLink(ctx, section.ID, "https://c.example", "C", "")

	if err := h.ReorderLinks(ctx, section.ID, []string{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("ReorderLinks() error: %v", err)
	}

	links := h.Snapshot().Sections[0].Links
	want := []string{c.ID, a.ID, b.ID}
	for i, id := range want {
		if links[i].ID != id {
			t.Errorf("links[%d].ID = %q, want %q", i, links[i].ID, id)
		}
	}

	// The persisted sequence matches the in-memory one.
	persisted := store.persisted(t).Sections[0].Links
	for i := range want {
		if persisted[i].ID != want[i] {
			t.Errorf("persisted[%d].ID = %q, want %q", i, persisted[i].ID, want[i])
		}
	}
}

func TestReorderLinksRejectsNonPermutation(t *testing.T) {
	h, _ := newTestHive(t)
	ctx := context.Background()
	section, _ := h.CreateSection(ctx, "Dev")
	a, _ := h.AddLink(ctx, section.ID, "https://a.example", "A", "")
	b, _ := h.AddLink(ctx, section.ID, "https://b.example", "B", "")

	tests := []struct {
		name string
		ids  []string
	}{
		{name: "dropped id", ids: []string{a.ID}},
		{name: "foreign id", ids: []string{a.ID, "ghost"}},
		{name: "duplicated id", ids: []string{a.ID, a.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := h.ReorderLinks(ctx, section.ID, tt.ids); !domain.IsValidation(err) {
				t.Errorf("ReorderLinks(%v) error = %v, want ValidationError", tt.ids, err)
			}
		})
	}

	links := h.Snapshot().Sections[0].Links
	if links[0].ID != a.ID || links[1].ID != b.ID {
		t.Error("rejected reorder mutated the sequence")
	}
}

func TestReorderSections(t *testing.T) {
	h, _ := newTestHive(t)
	ctx := context.Background()
	s1, _ := h.CreateSection(ctx, "One")
	s2, _ := h.CreateSection(ctx, "Two")

	if err := h.ReorderSections(ctx, []string{s2.ID, s1.ID}); err != nil {
		t.Fatalf("ReorderSections() error: %v", err)
	}
	doc := h.Snapshot()
	if doc.Sections[0].ID != s2.ID {
		t.Error("ReorderSections did not apply")
	}

	if err := h.ReorderSections(ctx, []string{s1.ID}); !domain.IsValidation(err) {
		t.Errorf("ReorderSections(partial) error = %v, want ValidationError", err)
	}
}

func TestCreateApplyEntryPrepends(t *testing.T) {
	h, _ := newTestHive(t)
	ctx := context.Background()

	older, err := h.CreateApplyEntry(ctx, "First", "2025-08-01", "", "Go")
	if err != nil {
		t.Fatalf("CreateApplyEntry() error: %v", err)
	}
	newer, _ := h.CreateApplyEntry(ctx, "Second", "2025-08-02", "", "Go")

	entries := h.Snapshot().ApplyEntries
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].ID != newer.ID || entries[1].ID != older.ID {
		t.Error("entries are not most-recent-first")
	}
	if newer.CreatedAt == "" {
		t.Error("CreateApplyEntry did not stamp createdAt")
	}
}

func TestCreateApplyEntryValidation(t *testing.T) {
	h, _ := newTestHive(t)

	_, err := h.CreateApplyEntry(context.Background(), "", "2025-08-01", "", "Go")
	if !domain.IsValidation(err) {
		t.Errorf("CreateApplyEntry(no title) error = %v, want ValidationError", err)
	}
	if len(h.Snapshot().ApplyEntries) != 0 {
		t.Error("rejected entry was stored")
	}
}

func TestDeleteAndReorderApplyEntries(t *testing.T) {
	h, _ := newTestHive(t)
	ctx := context.Background()
	a, _ := h.CreateApplyEntry(ctx, "A", "2025-08-01", "", "Go")
	b, _ := h.CreateApplyEntry(ctx, "B", "2025-08-02", "", "Go")
	c, _ := h.CreateApplyEntry(ctx, "C", "2025-08-03", "", "Go")

	if err := h.ReorderApplyEntries(ctx, []string{a.ID, c.ID, b.ID}); err != nil {
		t.Fatalf("ReorderApplyEntries() error: %v", err)
	}
	entries := h.Snapshot().ApplyEntries
	if entries[0].ID != a.ID || entries[1].ID != c.ID {
		t.Error("ReorderApplyEntries did not apply")
	}

	if err := h.DeleteApplyEntry(ctx, b.ID); err != nil {
		t.Fatalf("DeleteApplyEntry() error: %v", err)
	}
	if len(h.Snapshot().ApplyEntries) != 2 {
		t.Error("DeleteApplyEntry did not remove the entry")
	}
	if err := h.DeleteApplyEntry(ctx, b.ID); !domain.IsNotFound(err) {
		t.Errorf("DeleteApplyEntry(gone) error = %v, want NotFoundError", err)
	}
}

func TestCreatePrivateSectionIsIdempotent(t *testing.T) {
	h, _ := newTestHive(t)
	ctx := context.Background()

	first := h.CreatePrivateSection(ctx)
	second := h.CreatePrivateSection(ctx)

	if first.ID != second.ID {
		t.Error("CreatePrivateSection created a second private section")
	}
	count := 0
	for _, s := range h.Snapshot().Sections {
		if s.IsPrivate {
			count++
		}
	}
	if count != 1 {
		t.Errorf("document has %d private sections, want 1", count)
	}

	got, ok := h.PrivateSection()
	if !ok || got.ID != first.ID {
		t.Errorf("PrivateSection() = %+v, %v; want the created section", got, ok)
	}
}

func TestSetLinkFavicon(t *testing.T) {
	h, _ := newTestHive(t)
	ctx := context.Background()
	section, _ := h.CreateSection(ctx, "Dev")
	link, _ := h.AddLink(ctx, section.ID, "https://go.dev", "Go", "")

	if err := h.SetLinkFavicon(ctx, section.ID, link.ID, "https://icons.example/go.png"); err != nil {
		t.Fatalf("SetLinkFavicon() error: %v", err)
	}
	if got := h.Snapshot().Sections[0].Links[0].Favicon; got != "https://icons.example/go.png" {
		t.Errorf("Favicon = %q", got)
	}

	_ = h.DeleteLink(ctx, section.ID, link.ID)
	if err := h.SetLinkFavicon(ctx, section.ID, link.ID, "x"); !domain.IsNotFound(err) {
		t.Errorf("SetLinkFavicon(deleted link) error = %v, want NotFoundError", err)
	}
}

func TestSettings(t *testing.T) {
	h, store := newTestHive(t)
	ctx := context.Background()

	h.SetDarkMode(ctx, false)
	h.SetBackgroundImage(ctx, "data:image/png;base64,abc")

	persisted := store.persisted(t)
	if persisted.IsDark {
		t.Error("persisted IsDark = true, want false")
	}
	if persisted.BackgroundImage != "data:image/png;base64,abc" {
		t.Errorf("persisted BackgroundImage = %q", persisted.BackgroundImage)
	}

	h.SetBackgroundImage(ctx, "")
	if store.persisted(t).BackgroundImage != "" {
		t.Error("background reset did not persist")
	}
}

func TestLoadFromStore(t *testing.T) {
	store := &fakeStore{}
	seedHive := New(store, logger.New("error", false))
	section, _ := seedHive.CreateSection(context.Background(), "Dev")
	_, _ = seedHive.AddLink(context.Background(), section.ID, "https://go.dev", "Go", "")

	// A fresh hive over the same store sees the same document.
	h := New(store, logger.New("error", false))
	if err := h.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	doc := h.Snapshot()
	if len(doc.Sections) != 1 || len(doc.Sections[0].Links) != 1 {
		t.Errorf("loaded document = %+v, want 1 section with 1 link", doc.Sections)
	}
}

func TestLoadAbsentAndCorrupt(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		h, _ := newTestHive(t)
		if err := h.Load(context.Background()); err != nil {
			t.Fatalf("Load() on empty store error: %v", err)
		}
		doc := h.Snapshot()
		if len(doc.Sections) != 0 || !doc.IsDark {
			t.Errorf("default document = %+v", doc)
		}
	})

	t.Run("corrupt", func(t *testing.T) {
		store := &fakeStore{data: []byte("{not json")}
		h := New(store, logger.New("error", false))
		if err := h.Load(context.Background()); err != nil {
			t.Fatalf("Load() on corrupt store error: %v, want recovery", err)
		}
		if len(h.Snapshot().Sections) != 0 {
			t.Error("corrupt load did not fall back to defaults")
		}
	})
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	h, store := newTestHive(t)
	ctx := context.Background()
	section, _ := h.CreateSection(ctx, "Dev")

	store.failing = true
	link, err := h.AddLink(ctx, section.ID, "https://go.dev", "Go", "")
	if err != nil {
		t.Fatalf("AddLink() error = %v, storage failure must not surface", err)
	}

	got := h.Snapshot().Sections[0].Links
	if len(got) != 1 || got[0].ID != link.ID {
		t.Error("failed persist rolled back the in-memory mutation")
	}
}

func TestCounts(t *testing.T) {
	h, _ := newTestHive(t)
	ctx := context.Background()
	s1, _ := h.CreateSection(ctx, "Dev")
	s2, _ := h.CreateSection(ctx, "Tools")
	_, _ = h.AddLink(ctx, s1.ID, "https://a.example", "A", "")
	_, _ = h.AddLink(ctx, s2.ID, "https://b.example", "B", "")
	_, _ = h.AddLink(ctx, s2.ID, "https://c.example", "C", "")
	_, _ = h.CreateApplyEntry(ctx, "X", "2025-08-01", "", "Go")

	sections, links, applies := h.Counts()
	if sections != 2 || links != 3 || applies != 1 {
		t.Errorf("Counts() = %d, %d, %d; want 2, 3, 1", sections, links, applies)
	}
}
