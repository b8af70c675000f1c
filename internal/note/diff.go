package note

// SnapshotDiff compares two full store snapshots keyed by stable note id so
// the list view only redraws what actually changed. Content is compared on
// the fields that affect a list row: title, content type, media path and
// UpdatedAt.
type SnapshotDiff struct {
	Added   []int
	Removed []int
	Updated []int
}

// Empty reports whether the snapshots are row-equivalent.
func (d SnapshotDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Updated) == 0
}

// Diff computes the stable-id diff from old to new.
func Diff(oldList, newList []Note) SnapshotDiff {
	var d SnapshotDiff
	oldByID := make(map[int]Note, len(oldList))
	for _, n := range oldList {
		oldByID[n.ID] = n
	}
	seen := make(map[int]bool, len(newList))
	for _, n := range newList {
		seen[n.ID] = true
		old, ok := oldByID[n.ID]
		if !ok {
			d.Added = append(d.Added, n.ID)
			continue
		}
		if !rowEqual(old, n) {
			d.Updated = append(d.Updated, n.ID)
		}
	}
	for _, n := range oldList {
		if !seen[n.ID] {
			d.Removed = append(d.Removed, n.ID)
		}
	}
	return d
}

func rowEqual(a, b Note) bool {
	return a.Title == b.Title &&
		a.Type() == b.Type() &&
		MediaPath(a.Content) == MediaPath(b.Content) &&
		a.Snippet() == b.Snippet() &&
		a.UpdatedAt == b.UpdatedAt
}
