package models

// Entity is the minimal structural capability shared by every record type
// that participates in differential sync: a stable unique identifier and a
// deletion marker. The YNAB delta protocol reports removals as tombstones:
// regular records with the deleted flag set.
type Entity interface {
	// EntityID returns the stable unique identifier of the record within its
	// collection.
	EntityID() string

	// IsDeleted reports whether the record is a tombstone, i.e. an update
	// that signals removal rather than upsert.
	IsDeleted() bool
}
