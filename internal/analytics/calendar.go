package analytics

import (
	"time"

	"tradejournal/internal/models"
)

// DayCell is one cell of a month calendar. Leading spacer cells carry
// Day 0 and the no-trades tier so a renderer can lay out a weekday-aligned
// grid directly.
type DayCell struct {
	Day    int
	Tier   DayTier
	Trades []models.Trade
}

// BuildMonth produces the calendar cells for the given year and month:
// one spacer per weekday preceding the 1st, then one cell per day with its
// severity tier and the trades entered that day.
func (e *Engine) BuildMonth(trades []models.Trade, year int, month time.Month) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := daysIn(year, month)

	byDay := make(map[int][]models.Trade)
	for _, t := range trades {
		y, m, d := t.EntryDate.Date()
		if y == year && m == month {
			byDay[d] = append(byDay[d], t)
		}
	}

	cells := make([]DayCell, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{Tier: TierNoTrades})
	}
	for d := 1; d <= days; d++ {
		dayTrades := byDay[d]
		var net float64
		for _, t := range dayTrades {
			net += t.NetPL
		}
		cells = append(cells, DayCell{
			Day:    d,
			Tier:   e.TierFor(net, len(dayTrades)),
			Trades: dayTrades,
		})
	}
	return cells
}

// AddMonths offsets a (year, month) pair by a signed number of months,
// wrapping across year boundaries in both directions.
func AddMonths(year int, month time.Month, offset int) (int, time.Month) {
	idx := year*12 + int(month) - 1 + offset
	y := idx / 12
	m := idx % 12
	if m < 0 {
		m += 12
		y--
	}
	return y, time.Month(m + 1)
}

// daysIn returns the number of days in a month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
