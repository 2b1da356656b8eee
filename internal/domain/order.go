package domain

// SameIDSet reports whether newIDs is a permutation of currentIDs: the
// same ids with the same multiplicity, in any order. Drag-and-drop
// handlers supply full reordered sequences, so membership must not change.
func SameIDSet(currentIDs, newIDs []string) bool {
	if len(currentIDs) != len(newIDs) {
		return false
	}
	counts := make(map[string]int, len(currentIDs))
	for _, id := range currentIDs {
		counts[id]++
	}
	for _, id := range newIDs {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}
	return true
}

// LinkIDs extracts the ordered ids of a link sequence.
func LinkIDs(links []Link) []string {
	ids := make([]string, len(links))
	for i, l := range links {
		ids[i] = l.ID
	}
	return ids
}

// SectionIDs extracts the ordered ids of a section sequence.
func SectionIDs(sections []Section) []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}

// ApplyEntryIDs extracts the ordered ids of an apply-entry sequence.
func ApplyEntryIDs(entries []ApplyEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
