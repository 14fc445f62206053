package consumption

import "printagent/pkg/models"

// Merge collapses entries that target the same resource into one net entry,
// summing amounts and joining notes. Output keeps the first-seen order of
// resource names so the audit trail stays deterministic.
func Merge(entries []models.ConsumptionEntry) []models.ConsumptionEntry {
	merged := make(map[string]*models.ConsumptionEntry, len(entries))
	var names []string

	for _, entry := range entries {
		if existing, ok := merged[entry.ResourceName]; ok {
			existing.Amount += entry.Amount
			existing.Note += "; " + entry.Note
			continue
		}
		entry := entry
		merged[entry.ResourceName] = &entry
		names = append(names, entry.ResourceName)
	}

	out := make([]models.ConsumptionEntry, 0, len(names))
	for _, name := range names {
		out = append(out, *merged[name])
	}
	return out
}
