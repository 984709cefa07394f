package comparer

import "github.com/aleister1102/writealign/internal/models"

// GroupRows partitions n rows into intro, body and conclusion groups. Three or fewer rows
// form a single body group; otherwise intro and conclusion each take 20% of the rows,
// clamped to between one and two. Empty groups are omitted.
func GroupRows(n int) []models.RowGroup {
	if n <= 0 {
		return nil
	}
	if n <= 3 {
		return []models.RowGroup{{Label: models.GroupBody, Start: 0, End: n}}
	}

	edge := min(2, max(1, n/5))
	bodyEnd := max(edge, n-edge)

	candidates := []models.RowGroup{
		{Label: models.GroupIntro, Start: 0, End: edge},
		{Label: models.GroupBody, Start: edge, End: bodyEnd},
		{Label: models.GroupConclusion, Start: bodyEnd, End: n},
	}

	groups := make([]models.RowGroup, 0, len(candidates))
	for _, g := range candidates {
		if g.Size() > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// applyGroups labels every row with the group containing it
func applyGroups(rows []models.ComparisonRow, groups []models.RowGroup) {
	for _, g := range groups {
		for i := g.Start; i < g.End && i < len(rows); i++ {
			rows[i].Group = g.Label
		}
	}
}
