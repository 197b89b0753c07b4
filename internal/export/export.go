// Package export renders repository snapshots into interchange formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Suvadipmandal/tally/internal/model"
)

// csvHeader is the transaction CSV column contract. Column order matters to
// downstream spreadsheet imports; change it and old sheets break.
var csvHeader = []string{"date", "description", "category", "type", "amount"}

// WriteTransactionsCSV writes transactions as CSV with the fixed column
// order date, description, category, type, amount. encoding/csv quotes
// description and category fields when they need it.
func WriteTransactionsCSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, t := range txns {
		record := []string{
			t.Date.String(),
			t.Description,
			t.Category,
			string(t.Type),
			t.Amount.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", t.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSnapshot writes a snapshot as indented JSON.
func WriteSnapshot(w io.Writer, snap model.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot from JSON. Unknown fields are ignored and
// missing top-level keys stay nil, so partial payloads import cleanly.
func ReadSnapshot(r io.Reader) (model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}
