package analytics

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"tradejournal/internal/models"
)

func TestAddMonthsWrapsYears(t *testing.T) {
	cases := []struct {
		year      int
		month     time.Month
		offset    int
		wantYear  int
		wantMonth time.Month
	}{
		{2024, time.January, -1, 2023, time.December},
		{2024, time.December, 1, 2025, time.January},
		{2024, time.June, 0, 2024, time.June},
		{2024, time.March, -15, 2022, time.December},
		{2024, time.March, 22, 2026, time.January},
	}
	for _, tc := range cases {
		y, m := AddMonths(tc.year, tc.month, tc.offset)
		if y != tc.wantYear || m != tc.wantMonth {
			t.Errorf("AddMonths(%d, %s, %d) = (%d, %s), want (%d, %s)",
				tc.year, tc.month, tc.offset, y, m, tc.wantYear, tc.wantMonth)
		}
	}
}

func TestBuildMonthLayout(t *testing.T) {
	e := New(DefaultConfig())

	// March 2024 starts on a Friday (weekday 5) and has 31 days.
	winner := tradeWithPL(1500)
	winner.EntryDate = time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)
	loser := tradeWithPL(-200)
	loser.EntryDate = time.Date(2024, 3, 12, 11, 0, 0, 0, time.UTC)

	cells := e.BuildMonth([]models.Trade{winner, loser}, 2024, time.March)

	if len(cells) != 5+31 {
		t.Fatalf("got %d cells, want %d", len(cells), 5+31)
	}
	for i := 0; i < 5; i++ {
		if cells[i].Day != 0 || cells[i].Tier != TierNoTrades {
			t.Errorf("spacer cell %d = %+v, want empty no-trades cell", i, cells[i])
		}
	}
	if c := cells[5]; c.Day != 1 || c.Tier != TierNoTrades {
		t.Errorf("day 1 cell = %+v, want empty day 1", c)
	}
	if c := cells[5+7]; c.Day != 8 || c.Tier != TierProfitHigh || len(c.Trades) != 1 {
		t.Errorf("day 8 cell = %+v, want profit-high with 1 trade", c)
	}
	if c := cells[5+11]; c.Day != 12 || c.Tier != TierLossLow {
		t.Errorf("day 12 cell = %+v, want loss-low", c)
	}
}

func TestBuildMonthLeapFebruary(t *testing.T) {
	e := New(DefaultConfig())

	// February 2024: leap year, starts on a Thursday.
	cells := e.BuildMonth(nil, 2024, time.February)
	if len(cells) != 4+29 {
		t.Fatalf("got %d cells, want %d", len(cells), 4+29)
	}
	if last := cells[len(cells)-1]; last.Day != 29 {
		t.Errorf("last day = %d, want 29", last.Day)
	}
}

// Property: BuildMonth produces a weekday-aligned grid for any month.
func TestProperty_BuildMonthGrid(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("spacers match the first weekday and days run 1..n", prop.ForAll(
		func(year int, monthNum int) bool {
			e := New(DefaultConfig())
			month := time.Month(monthNum)
			cells := e.BuildMonth(nil, year, month)

			first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			spacers := int(first.Weekday())

			for i := 0; i < spacers; i++ {
				if cells[i].Day != 0 {
					return false
				}
			}
			for i := spacers; i < len(cells); i++ {
				if cells[i].Day != i-spacers+1 {
					return false
				}
			}
			lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
			return len(cells) == spacers+lastDay
		},
		gen.IntRange(1990, 2100),
		gen.IntRange(1, 12),
	))

	properties.Property("AddMonths round-trips through its inverse offset", prop.ForAll(
		func(year int, monthNum int, offset int) bool {
			month := time.Month(monthNum)
			y, m := AddMonths(year, month, offset)
			backY, backM := AddMonths(y, m, -offset)
			return backY == year && backM == month
		},
		gen.IntRange(1990, 2100),
		gen.IntRange(1, 12),
		gen.IntRange(-600, 600),
	))

	properties.TestingRun(t)
}
