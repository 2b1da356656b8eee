package hive

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Aakash17x08/linkhive/internal/domain"
	"github.com/Aakash17x08/linkhive/internal/logger"
	redisstore "github.com/Aakash17x08/linkhive/internal/store/redis"
)

// PrivateSectionName is the display name given to the soft-hidden section.
const PrivateSectionName = "Private"

// Persister is the slice of the store the hive needs: load once on boot,
// write the whole document through on every mutation.
type Persister interface {
	SaveDocument(ctx context.Context, doc domain.Document) error
	LoadDocument(ctx context.Context) (domain.Document, bool, error)
}

// Hive owns the in-memory root document and is the only writer to it.
// Every mutation happens under the lock and is followed by a synchronous
// write-through of the whole document; a failed write is logged and the
// in-memory state is kept (there is no reconciliation machinery, the
// store is local and assumed available).
type Hive struct {
	mu     sync.RWMutex
	doc    domain.Document
	store  Persister
	logger logger.Logger

	newID   func() string
	timeNow func() time.Time
}

// New creates a hive with an empty default document. Call Load to pull
// persisted state before serving.
func New(store Persister, log logger.Logger) *Hive {
	return &Hive{
		doc:     domain.DefaultDocument(),
		store:   store,
		logger:  log,
		newID:   uuid.NewString,
		timeNow: time.Now,
	}
}

// Load replaces the in-memory document with the persisted one. An absent
// key means first boot; a corrupt payload is logged and discarded. Both
// cases leave the default document in place so the app always renders.
func (h *Hive) Load(ctx context.Context) error {
	doc, found, err := h.store.LoadDocument(ctx)
	if err != nil {
		if errors.Is(err, redisstore.ErrCorruptDocument) {
			h.logger.Warn("persisted document is corrupt, starting from defaults",
				logger.Error(err))
			return nil
		}
		return err
	}
	if !found {
		h.logger.Info("no persisted document found, starting from defaults")
		return nil
	}

	doc.Normalize()

	h.mu.Lock()
	h.doc = doc
	h.mu.Unlock()

	h.logger.Info("document loaded",
		logger.Int("sections", len(doc.Sections)),
		logger.Int("apply_entries", len(doc.ApplyEntries)))
	return nil
}

// Snapshot returns a deep copy of the current document.
func (h *Hive) Snapshot() domain.Document {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.doc.Clone()
}

// Empty reports whether the document holds no sections and no entries.
// The seeder uses it to decide whether a seed file may be applied.
func (h *Hive) Empty() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.doc.Sections) == 0 && len(h.doc.ApplyEntries) == 0
}

// ─────────────────────────────────────────────────────────────────
// Section operations
// ─────────────────────────────────────────────────────────────────

// CreateSection appends an empty section to the end of the sequence.
// An empty-after-trim name is a silent no-op, mirroring the caller-side
// guard the UI applies.
func (h *Hive) CreateSection(ctx context.Context, name string) (domain.Section, bool) {
	if strings.TrimSpace(name) == "" {
		return domain.Section{}, false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	section := domain.Section{
		ID:    h.newID(),
		Name:  name,
		Links: []domain.Link{},
	}
	h.doc.Sections = append(h.doc.Sections, section)
	h.persist(ctx)
	return section, true
}

// CreatePrivateSection creates the soft-hidden section when none exists
// and returns the existing one otherwise. At most one section ever
// carries the private flag.
func (h *Hive) CreatePrivateSection(ctx context.Context) domain.Section {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.doc.PrivateSection(); ok {
		return existing
	}

	section := domain.Section{
		ID:        h.newID(),
		Name:      PrivateSectionName,
		Links:     []domain.Link{},
		IsPrivate: true,
	}
	h.doc.Sections = append(h.doc.Sections, section)
	h.persist(ctx)
	return section
}

// PrivateSection returns a copy of the private section, if any.
func (h *Hive) PrivateSection() (domain.Section, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.doc.PrivateSection()
	if !ok {
		return domain.Section{}, false
	}
	out := s
	out.Links = make([]domain.Link, len(s.Links))
	copy(out.Links, s.Links)
	return out, true
}

// DeleteSection removes a section and all its links.
func (h *Hive) DeleteSection(ctx context.Context, sectionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx := h.sectionIndex(sectionID)
	if idx < 0 {
		return domain.NewNotFoundError("section", sectionID)
	}

	h.doc.Sections = append(h.doc.Sections[:idx], h.doc.Sections[idx+1:]...)
	h.persist(ctx)
	return nil
}

// ReorderSections replaces the section ordering with the given id
// sequence. The sequence must be a permutation of the current ids.
func (h *Hive) ReorderSections(ctx context.Context, ids []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !domain.SameIDSet(domain.SectionIDs(h.doc.Sections), ids) {
		return domain.NewValidationError("order", "must be a permutation of the existing sections")
	}

	byID := make(map[string]domain.Section, len(h.doc.Sections))
	for _, s := range h.doc.Sections {
		byID[s.ID] = s
	}
	reordered := make([]domain.Section, 0, len(ids))
	for _, id := range ids {
		reordered = append(reordered, byID[id])
	}
	h.doc.Sections = reordered
	h.persist(ctx)
	return nil
}

// ─────────────────────────────────────────────────────────────────
// Link operations
// ─────────────────────────────────────────────────────────────────

// AddLink validates and appends a link to the target section.
func (h *Hive) AddLink(ctx context.Context, sectionID, rawURL, name, description string) (domain.Link, error) {
	if err := domain.ValidateLinkFields(rawURL, name); err != nil {
		return domain.Link{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	idx := h.sectionIndex(sectionID)
	if idx < 0 {
		return domain.Link{}, domain.NewNotFoundError("section", sectionID)
	}

	link := domain.Link{
		ID:          h.newID(),
		SectionID:   sectionID,
		URL:         rawURL,
		Name:        name,
		Description: description,
	}
	h.doc.Sections[idx].Links = append(h.doc.Sections[idx].Links, link)
	h.persist(ctx)
	return link, nil
}

// EditLink replaces the three editable fields of a link in place,
// preserving its id and position.
func (h *Hive) EditLink(ctx context.Context, sectionID, linkID, rawURL, name, description string) error {
	if err := domain.ValidateLinkFields(rawURL, name); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	si, li := h.linkIndex(sectionID, linkID)
	if si < 0 {
		return domain.NewNotFoundError("section", sectionID)
	}
	if li < 0 {
		return domain.NewNotFoundError("link", linkID)
	}

	link := &h.doc.Sections[si].Links[li]
	link.URL = rawURL
	link.Name = name
	link.Description = description
	h.persist(ctx)
	return nil
}

// DeleteLink removes a link from its section.
func (h *Hive) DeleteLink(ctx context.Context, sectionID, linkID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	si, li := h.linkIndex(sectionID, linkID)
	if si < 0 {
		return domain.NewNotFoundError("section", sectionID)
	}
	if li < 0 {
		return domain.NewNotFoundError("link", linkID)
	}

	links := h.doc.Sections[si].Links
	h.doc.Sections[si].Links = append(links[:li], links[li+1:]...)
	h.persist(ctx)
	return nil
}

// SetLinkFavicon stores a resolved favicon URL on a link. Best-effort
// decoration: the favicon resolver calls this after the fact and ignores
// a link that has been deleted in the meantime.
func (h *Hive) SetLinkFavicon(ctx context.Context, sectionID, linkID, faviconURL string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	si, li := h.linkIndex(sectionID, linkID)
	if si < 0 || li < 0 {
		return domain.NewNotFoundError("link", linkID)
	}

	h.doc.Sections[si].Links[li].Favicon = faviconURL
	h.persist(ctx)
	return nil
}

// ReorderLinks replaces a section's link ordering with the given id
// sequence. The sequence must be a permutation of the current link ids.
func (h *Hive) ReorderLinks(ctx context.Context, sectionID string, ids []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx := h.sectionIndex(sectionID)
	if idx < 0 {
		return domain.NewNotFoundError("section", sectionID)
	}

	links := h.doc.Sections[idx].Links
	if !domain.SameIDSet(domain.LinkIDs(links), ids) {
		return domain.NewValidationError("order", "must be a permutation of the existing links")
	}

	byID := make(map[string]domain.Link, len(links))
	for _, l := range links {
		byID[l.ID] = l
	}
	reordered := make([]domain.Link, 0, len(ids))
	for _, id := range ids {
		reordered = append(reordered, byID[id])
	}
	h.doc.Sections[idx].Links = reordered
	h.persist(ctx)
	return nil
}

// ─────────────────────────────────────────────────────────────────
// Apply entry operations
// ─────────────────────────────────────────────────────────────────

// CreateApplyEntry validates and prepends an application record, so the
// default ordering is most-recent-first.
func (h *Hive) CreateApplyEntry(ctx context.Context, title, date, description, role string) (domain.ApplyEntry, error) {
	if err := domain.ValidateApplyEntryFields(title, date, role); err != nil {
		return domain.ApplyEntry{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entry := domain.ApplyEntry{
		ID:          h.newID(),
		Title:       title,
		Date:        date,
		Description: description,
		Role:        role,
		CreatedAt:   h.timeNow().UTC().Format(time.RFC3339),
	}
	h.doc.ApplyEntries = append([]domain.ApplyEntry{entry}, h.doc.ApplyEntries...)
	h.persist(ctx)
	return entry, nil
}

// DeleteApplyEntry removes an application record by id.
func (h *Hive) DeleteApplyEntry(ctx context.Context, id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, e := range h.doc.ApplyEntries {
		if e.ID == id {
			h.doc.ApplyEntries = append(h.doc.ApplyEntries[:i], h.doc.ApplyEntries[i+1:]...)
			h.persist(ctx)
			return nil
		}
	}
	return domain.NewNotFoundError("apply entry", id)
}

// ReorderApplyEntries replaces the apply-entry ordering with the given
// id sequence. The sequence must be a permutation of the current ids.
func (h *Hive) ReorderApplyEntries(ctx context.Context, ids []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !domain.SameIDSet(domain.ApplyEntryIDs(h.doc.ApplyEntries), ids) {
		return domain.NewValidationError("order", "must be a permutation of the existing entries")
	}

	byID := make(map[string]domain.ApplyEntry, len(h.doc.ApplyEntries))
	for _, e := range h.doc.ApplyEntries {
		byID[e.ID] = e
	}
	reordered := make([]domain.ApplyEntry, 0, len(ids))
	for _, id := range ids {
		reordered = append(reordered, byID[id])
	}
	h.doc.ApplyEntries = reordered
	h.persist(ctx)
	return nil
}

// ─────────────────────────────────────────────────────────────────
// Settings
// ─────────────────────────────────────────────────────────────────

// SetDarkMode flips the theme flag.
func (h *Hive) SetDarkMode(ctx context.Context, dark bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.doc.IsDark = dark
	h.persist(ctx)
}

// SetBackgroundImage stores the background image reference (a data URI
// handed over by the upload collaborator). Empty resets it.
func (h *Hive) SetBackgroundImage(ctx context.Context, image string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.doc.BackgroundImage = image
	h.persist(ctx)
}

// ─────────────────────────────────────────────────────────────────
// Seeding
// ─────────────────────────────────────────────────────────────────

// Replace swaps in a whole document. Only the seeder uses it, and only
// when the hive is empty.
func (h *Hive) Replace(ctx context.Context, doc domain.Document) {
	doc.Normalize()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.doc = doc
	h.persist(ctx)
}

// Counts returns the current entity counts for the stats endpoint.
func (h *Hive) Counts() (sections, links, applyEntries int) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.doc.Sections {
		links += len(s.Links)
	}
	return len(h.doc.Sections), links, len(h.doc.ApplyEntries)
}

// ─────────────────────────────────────────────────────────────────
// Internals (callers hold the lock)
// ─────────────────────────────────────────────────────────────────

// persist writes the whole document through to the store. A write
// failure is logged but never unwinds the mutation: rolling back would
// need reconciliation machinery the model does not have.
func (h *Hive) persist(ctx context.Context) {
	if err := h.store.SaveDocument(ctx, h.doc); err != nil {
		h.logger.Error("failed to persist document, in-memory state retained",
			logger.Error(err))
	}
}

func (h *Hive) sectionIndex(sectionID string) int {
	for i, s := range h.doc.Sections {
		if s.ID == sectionID {
			return i
		}
	}
	return -1
}

func (h *Hive) linkIndex(sectionID, linkID string) (int, int) {
	si := h.sectionIndex(sectionID)
	if si < 0 {
		return -1, -1
	}
	for li, l := range h.doc.Sections[si].Links {
		if l.ID == linkID {
			return si, li
		}
	}
	return si, -1
}

