package domain

import "strings"

// Search is pure filtering over a snapshot: nothing here mutates the
// document, callers re-run it on every query change.

// FilterSections returns the public sections matching query,
// case-insensitive substring semantics:
//   - a section whose name matches is included with its full link list;
//   - otherwise its links are narrowed to matches and the section is
//     included only when at least one link matched.
//
// An empty query returns all public sections unchanged.
func FilterSections(sections []Section, query string) []Section {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if s.IsPrivate {
			continue
		}
		if q == "" {
			out = append(out, s)
			continue
		}
		if strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
			continue
		}
		narrowed := filterLinks(s.Links, q)
		if len(narrowed) > 0 {
			s.Links = narrowed
			out = append(out, s)
		}
	}
	return out
}

// FilterApplyEntries returns the entries whose title, role or description
// contains query, case-insensitively. An empty query returns all entries.
func FilterApplyEntries(entries []ApplyEntry, query string) []ApplyEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}

	out := make([]ApplyEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Role), q) ||
			strings.Contains(strings.ToLower(e.Description), q) {
			out = append(out, e)
		}
	}
	return out
}

func filterLinks(links []Link, q string) []Link {
	out := make([]Link, 0, len(links))
	for _, l := range links {
		if strings.Contains(strings.ToLower(l.Name), q) ||
			strings.Contains(strings.ToLower(l.Description), q) ||
			strings.Contains(strings.ToLower(l.URL), q) {
			out = append(out, l)
		}
	}
	return out
}
