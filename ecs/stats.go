package ecs

import "sort"

// StorageStats is a snapshot of storage occupancy.
type StorageStats struct {
	TotalEntityCount int
	ComponentCounts  []ComponentCount
	SingletonTypes   []string
}

// ComponentCount reports how many entities carry one component type.
type ComponentCount struct {
	Type  string
	Count int
}

// CollectStats gathers a storage snapshot for diagnostics and debug UIs.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		TotalEntityCount: s.EntityCount(),
	}

	for typ, store := range s.stores {
		stats.ComponentCounts = append(stats.ComponentCounts, ComponentCount{
			Type:  typ.String(),
			Count: store.len(),
		})
	}
	sort.Slice(stats.ComponentCounts, func(i, j int) bool {
		return stats.ComponentCounts[i].Type < stats.ComponentCounts[j].Type
	})

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
