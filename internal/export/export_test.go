package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suvadipmandal/tally/internal/model"
)

func TestWriteTransactionsCSV(t *testing.T) {
	txns := []model.Transaction{
		{
			ID:          "t1",
			Type:        model.TypeExpense,
			Amount:      1250,
			Category:    "Food",
			Description: "weekly groceries",
			Date:        model.NewDate(2024, time.January, 5),
		},
		{
			ID:          "t2",
			Type:        model.TypeIncome,
			Amount:      100000,
			Category:    "Salary",
			Description: `said "thanks", got paid`,
			Date:        model.NewDate(2024, time.January, 31),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, txns))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,description,category,type,amount", lines[0])
	assert.Equal(t, "2024-01-05,weekly groceries,Food,expense,12.50", lines[1])
	assert.Equal(t, `2024-01-31,"said ""thanks"", got paid",Salary,income,1000.00`, lines[2])
}

func TestWriteTransactionsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, nil))
	assert.Equal(t, "date,description,category,type,amount\n", buf.String())
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	cats := model.DefaultCategories()
	snap := model.Snapshot{
		Transactions: []model.Transaction{{
			ID: "t1", Type: model.TypeExpense, Amount: 5000,
			Category: "Food", Date: model.NewDate(2024, time.January, 5),
		}},
		Budgets:    []model.Budget{},
		Categories: &cats,
		ExportDate: time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, snap))

	decoded, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)
}

func TestReadSnapshotTolerant(t *testing.T) {
	t.Run("partial payload", func(t *testing.T) {
		snap, err := ReadSnapshot(strings.NewReader(`{"transactions": []}`))
		require.NoError(t, err)
		assert.NotNil(t, snap.Transactions)
		assert.Nil(t, snap.Budgets, "absent keys stay nil")
		assert.Nil(t, snap.Categories)
	})

	t.Run("unknown fields ignored", func(t *testing.T) {
		payload := `{"budgets": [], "appVersion": "2.1", "checksum": 12345}`
		snap, err := ReadSnapshot(strings.NewReader(payload))
		require.NoError(t, err)
		assert.NotNil(t, snap.Budgets)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := ReadSnapshot(strings.NewReader(`{not json`))
		require.Error(t, err)
	})
}
