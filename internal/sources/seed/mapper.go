package seed

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Aakash17x08/linkhive/internal/domain"
)

// Mapper converts a parsed seed config into a root document.
type Mapper struct{}

// NewMapper creates a new seed mapper
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapDocument builds a document from the seed config. Sections with an
// empty name and links that fail validation are skipped rather than
// failing the whole import; skipped counts are reported so the caller
// can log them.
func (m *Mapper) MapDocument(config Config) (domain.Document, int) {
	doc := domain.DefaultDocument()
	if config.IsDark != nil {
		doc.IsDark = *config.IsDark
	}
	doc.BackgroundImage = config.BackgroundImage

	skipped := 0
	havePrivate := false

	for _, sp := range config.Sections {
		if strings.TrimSpace(sp.Name) == "" {
			skipped++
			continue
		}
		// At most one private section; later flags are ignored.
		private := sp.Private && !havePrivate
		if private {
			havePrivate = true
		}

		section := domain.Section{
			ID:        uuid.NewString(),
			Name:      sp.Name,
			Links:     []domain.Link{},
			IsPrivate: private,
		}
		for _, lp := range sp.Links {
			if err := domain.ValidateLinkFields(lp.URL, lp.Name); err != nil {
				skipped++
				continue
			}
			section.Links = append(section.Links, domain.Link{
				ID:          uuid.NewString(),
				SectionID:   section.ID,
				URL:         lp.URL,
				Name:        lp.Name,
				Description: lp.Description,
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc, skipped
}
