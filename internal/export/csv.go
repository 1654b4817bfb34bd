// Package export writes the journal to portable formats.
package export

import (
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"tradejournal/internal/errors"
	"tradejournal/internal/models"
)

// tradeRow is the flat CSV projection of a trade. Multi-value fields are
// joined with "; " so the file stays one row per trade.
type tradeRow struct {
	ID              string  `csv:"id"`
	Symbol          string  `csv:"symbol"`
	Direction       string  `csv:"direction"`
	Quantity        float64 `csv:"quantity"`
	EntryPrice      float64 `csv:"entry_price"`
	ExitPrice       float64 `csv:"exit_price"`
	StopLoss        float64 `csv:"stop_loss"`
	TargetPrice     float64 `csv:"target_price"`
	Strategy        string  `csv:"strategy"`
	EntryDate       string  `csv:"entry_date"`
	ExitDate        string  `csv:"exit_date"`
	GrossPL         float64 `csv:"gross_pl"`
	NetPL           float64 `csv:"net_pl"`
	RiskReward      float64 `csv:"risk_reward"`
	ConfidenceLevel int     `csv:"confidence_level"`
	PreEmotion      string  `csv:"pre_emotion"`
	PostEmotion     string  `csv:"post_emotion"`
	ExitEmotion     string  `csv:"exit_emotion"`
	ExitReason      string  `csv:"primary_exit_reason"`
	SleepQuality    int     `csv:"sleep_quality"`
	FomoLevel       int     `csv:"fomo_level"`
	PreStress       int     `csv:"pre_stress"`
	StressDuring    int     `csv:"stress_during"`
	Confluence      string  `csv:"technical_confluence"`
	FollowedRules   string  `csv:"followed_rules"`
	WaitedForSetup  string  `csv:"waited_for_setup"`
	WouldTakeAgain  string  `csv:"would_take_again"`
	MarketSession   string  `csv:"market_session"`
	Notes           string  `csv:"notes"`
	Lesson          string  `csv:"lesson"`
}

const dateLayout = "2006-01-02 15:04"

func toRow(t models.Trade) tradeRow {
	exitDate := ""
	if !t.ExitDate.IsZero() {
		exitDate = t.ExitDate.Format(dateLayout)
	}
	return tradeRow{
		ID:              t.ID,
		Symbol:          t.Symbol,
		Direction:       string(t.Direction),
		Quantity:        t.Quantity,
		EntryPrice:      t.EntryPrice,
		ExitPrice:       t.ExitPrice,
		StopLoss:        t.StopLoss,
		TargetPrice:     t.TargetPrice,
		Strategy:        t.Strategy,
		EntryDate:       t.EntryDate.Format(dateLayout),
		ExitDate:        exitDate,
		GrossPL:         t.GrossPL,
		NetPL:           t.NetPL,
		RiskReward:      t.RiskRewardRatio,
		ConfidenceLevel: t.ConfidenceLevel,
		PreEmotion:      t.PreEmotion,
		PostEmotion:     t.PostEmotion,
		ExitEmotion:     t.ExitEmotion,
		ExitReason:      t.PrimaryExitReason,
		SleepQuality:    t.SleepQuality,
		FomoLevel:       t.FomoLevel,
		PreStress:       t.PreStress,
		StressDuring:    t.StressDuring,
		Confluence:      strings.Join(t.TechnicalConfluence, "; "),
		FollowedRules:   strings.Join(t.FollowedRules, "; "),
		WaitedForSetup:  t.WaitedForSetup,
		WouldTakeAgain:  t.WouldTakeAgain,
		MarketSession:   t.MarketSession,
		Notes:           t.Notes,
		Lesson:          t.Lesson,
	}
}

// TradesCSV writes all trades to path as CSV, one row per trade. It returns
// the number of rows written.
func TradesCSV(path string, trades []models.Trade) (int, error) {
	rows := make([]tradeRow, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, toRow(t))
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, errors.NewExportError(path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return 0, errors.NewExportError(path, err)
	}
	if err := f.Close(); err != nil {
		return 0, errors.NewExportError(path, err)
	}
	return len(rows), nil
}
