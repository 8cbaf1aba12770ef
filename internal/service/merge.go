// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-budget-keeper/models"

// Merge applies a batch of possibly-partial entity updates onto an existing
// collection and returns the new collection. It is pure: neither input is
// mutated.
//
// Each delta entry either removes its identifier (tombstone) or fully
// replaces the existing record; there is no field-level merging. A tombstone
// for an identifier the collection has never seen is dropped. Identifiers in
// the result are unique.
//
// The result keeps the current collection's order for surviving records and
// appends genuinely new records in delta order. Order is not part of the
// contract; read paths that care (transactions by date, payees by name) sort
// for themselves.
func Merge[E models.Entity](current, delta []E) []E {
	if len(delta) == 0 {
		return current
	}

	byID := make(map[string]E, len(current)+len(delta))
	order := make([]string, 0, len(current)+len(delta))
	for _, entity := range current {
		id := entity.EntityID()
		if _, seen := byID[id]; !seen {
			order = append(order, id)
		}
		byID[id] = entity
	}

	for _, entity := range delta {
		id := entity.EntityID()
		if entity.IsDeleted() {
			delete(byID, id)
			continue
		}
		if _, seen := byID[id]; !seen {
			order = append(order, id)
		}
		byID[id] = entity
	}

	// order may carry an id twice when a delta deletes and later re-adds the
	// same record; emit each surviving id once.
	merged := make([]E, 0, len(byID))
	for _, id := range order {
		if entity, ok := byID[id]; ok {
			merged = append(merged, entity)
			delete(byID, id)
		}
	}
	return merged
}
