package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/models"
)

func TestTradesCSV(t *testing.T) {
	trades := []models.Trade{
		{
			ID:                  "TRD-1",
			Symbol:              "RELIANCE",
			Direction:           models.DirectionLong,
			Quantity:            10,
			EntryPrice:          2500,
			ExitPrice:           2550,
			Strategy:            "Breakout",
			EntryDate:           time.Date(2024, 3, 15, 9, 45, 0, 0, time.UTC),
			NetPL:               460,
			TechnicalConfluence: []string{"VWAP", "Volume"},
			FollowedRules:       []string{"Wait for confirmation"},
			Notes:               "Clean break of resistance, held through a pullback",
		},
		{
			ID:        "TRD-2",
			Symbol:    "TCS",
			Direction: models.DirectionShort,
			Quantity:  5,
			EntryDate: time.Date(2024, 3, 16, 10, 15, 0, 0, time.UTC),
			NetPL:     -120,
		},
	}

	path := filepath.Join(t.TempDir(), "journal.csv")
	rows, err := TradesCSV(path, trades)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 trades

	header := records[0]
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %q missing from header %v", name, header)
		return -1
	}

	first := records[1]
	assert.Equal(t, "RELIANCE", first[col("symbol")])
	assert.Equal(t, "Long", first[col("direction")])
	assert.Equal(t, "2024-03-15 09:45", first[col("entry_date")])
	assert.Equal(t, "", first[col("exit_date")]) // zero exit date stays blank
	assert.Equal(t, "VWAP; Volume", first[col("technical_confluence")])
	assert.Equal(t, "Wait for confirmation", first[col("followed_rules")])

	second := records[2]
	assert.Equal(t, "TCS", second[col("symbol")])
	assert.Equal(t, "Short", second[col("direction")])
}

func TestTradesCSVEmptyJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	rows, err := TradesCSV(path, nil)
	require.NoError(t, err)
	assert.Zero(t, rows)

	// The file still exists with just the header row.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "symbol")
}

func TestTradesCSVBadPath(t *testing.T) {
	_, err := TradesCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), nil)
	require.Error(t, err)
}
