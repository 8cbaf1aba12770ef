// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the in-memory entity cache used by the repository
// layer: one keyed dataset per entity kind, each carrying the collection
// itself, the server-knowledge cursor it corresponds to, and the time of the
// last successful sync. The package contains storage only; all locking and
// sync logic lives in the service layer that owns the store.
package store

// Kind identifies one cached entity collection.
type Kind string

const (
	KindAccounts              Kind = "accounts"
	KindPayees                Kind = "payees"
	KindCategoryGroups        Kind = "category_groups"
	KindTransactions          Kind = "transactions"
	KindScheduledTransactions Kind = "scheduled_transactions"
)

// Kinds lists every cached entity kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindAccounts,
		KindPayees,
		KindCategoryGroups,
		KindTransactions,
		KindScheduledTransactions,
	}
}
