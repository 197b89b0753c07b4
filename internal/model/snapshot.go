package model

import "time"

// Snapshot is the export/import payload covering all three collections.
//
// On import, a nil field means the key was absent from the payload and the
// stored collection is left untouched; an empty non-nil slice replaces the
// collection with nothing. Unknown fields in an imported payload are
// ignored.
type Snapshot struct {
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
	Categories   *CategorySet  `json:"categories"`
	ExportDate   time.Time     `json:"exportDate"`
}
