package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"tradejournal/internal/models"
)

// Property: For any valid trade, saving it to the database and retrieving it
// by ID should produce an equivalent trade (round-trip consistency).
func TestProperty_TradeRoundTripConsistency(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trades_property.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	symbols := []string{"RELIANCE", "TCS", "INFY", "HDFC", "ICICI", "SBIN"}
	strategies := []string{"Breakout", "Reversal", "Trend Following", "Scalping"}

	priceGen := gen.Float64Range(100.0, 5000.0)
	qtyGen := gen.Float64Range(1, 500)

	properties.Property("Trade round-trip: save then retrieve produces equivalent data", prop.ForAll(
		func(symbolIdx, strategyIdx int, entry, exit, qty float64, long bool, fomo int) bool {
			ctx := context.Background()

			direction := models.DirectionShort
			if long {
				direction = models.DirectionLong
			}

			trade := &models.Trade{
				Symbol:              symbols[symbolIdx%len(symbols)],
				Direction:           direction,
				Quantity:            qty,
				EntryPrice:          entry,
				ExitPrice:           exit,
				StopLoss:            entry * 0.98,
				TargetPrice:         entry * 1.04,
				Strategy:            strategies[strategyIdx%len(strategies)],
				EntryDate:           time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
				ExitDate:            time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
				ConfidenceLevel:     7,
				PreEmotion:          "Calm",
				ExitEmotion:         "Satisfied",
				FomoLevel:           fomo,
				TechnicalConfluence: []string{"Volume Spike", "Support Bounce"},
				FollowedRules:       []string{"Wait for confirmation"},
				WaitedForSetup:      models.WaitedYes,
				MarketSession:       models.SessionOpenHour,
			}
			trade.ComputeDerived(40)

			if err := store.SaveTrade(ctx, trade); err != nil {
				t.Logf("Failed to save trade: %v", err)
				return false
			}

			retrieved, err := store.GetTrade(ctx, trade.ID)
			if err != nil {
				t.Logf("Failed to get trade: %v", err)
				return false
			}

			if retrieved.Symbol != trade.Symbol ||
				retrieved.Direction != trade.Direction ||
				retrieved.Strategy != trade.Strategy ||
				retrieved.WaitedForSetup != trade.WaitedForSetup ||
				retrieved.MarketSession != trade.MarketSession ||
				retrieved.FomoLevel != trade.FomoLevel {
				t.Logf("Field mismatch: original=%+v, retrieved=%+v", trade, retrieved)
				return false
			}
			if !floatEqual(retrieved.NetPL, trade.NetPL, 0.001) ||
				!floatEqual(retrieved.GrossPL, trade.GrossPL, 0.001) ||
				!floatEqual(retrieved.RiskRewardRatio, trade.RiskRewardRatio, 0.001) {
				t.Logf("Derived value mismatch: original=%+v, retrieved=%+v", trade, retrieved)
				return false
			}
			if len(retrieved.TechnicalConfluence) != len(trade.TechnicalConfluence) ||
				len(retrieved.FollowedRules) != len(trade.FollowedRules) {
				t.Logf("Set length mismatch: original=%+v, retrieved=%+v", trade, retrieved)
				return false
			}

			return true
		},
		gen.IntRange(0, len(symbols)-1),
		gen.IntRange(0, len(strategies)-1),
		priceGen,
		priceGen,
		qtyGen,
		gen.Bool(),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

// Property: Setting confidence for the same date repeatedly keeps a single
// entry per day whose level matches the last write.
func TestProperty_ConfidenceOnePerDay(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "confidence_property.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("Confidence: last write wins, one entry per date", prop.ForAll(
		func(dayOffset, first, second int) bool {
			ctx := context.Background()
			date := time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC).AddDate(0, 0, dayOffset)

			if err := store.SetConfidence(ctx, date, first); err != nil {
				t.Logf("Failed first set: %v", err)
				return false
			}
			if err := store.SetConfidence(ctx, date, second); err != nil {
				t.Logf("Failed second set: %v", err)
				return false
			}

			entries, err := store.GetConfidence(ctx, date, date)
			if err != nil {
				t.Logf("Failed to get confidence: %v", err)
				return false
			}
			if len(entries) != 1 {
				t.Logf("Expected 1 entry for date, got %d", len(entries))
				return false
			}
			return entries[0].Level == second
		},
		gen.IntRange(0, 365),
		gen.IntRange(1, 10),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

// floatEqual compares two floats with a tolerance.
func floatEqual(a, b, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

func TestNoteUpsertReplacesContent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "notes.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	date := time.Date(2024, 6, 10, 9, 45, 0, 0, time.UTC)

	if err := store.SetNote(ctx, date, "first draft"); err != nil {
		t.Fatalf("Failed to set note: %v", err)
	}
	if err := store.SetNote(ctx, date, "revised entry"); err != nil {
		t.Fatalf("Failed to update note: %v", err)
	}

	notes, err := store.GetNotes(ctx, date, date)
	if err != nil {
		t.Fatalf("Failed to get notes: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("Expected 1 note, got %d", len(notes))
	}
	if notes[0].Content != "revised entry" {
		t.Errorf("Expected revised content, got %q", notes[0].Content)
	}
}
