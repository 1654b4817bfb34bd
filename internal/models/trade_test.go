package models

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestComputeDerived(t *testing.T) {
	cases := []struct {
		name      string
		trade     Trade
		wantGross float64
		wantNet   float64
		wantRR    float64
	}{
		{
			name: "long winner",
			trade: Trade{
				Direction: DirectionLong, Quantity: 10,
				EntryPrice: 100, ExitPrice: 110,
				StopLoss: 95, TargetPrice: 115,
			},
			wantGross: 100, wantNet: 60, wantRR: 3,
		},
		{
			name: "short winner",
			trade: Trade{
				Direction: DirectionShort, Quantity: 10,
				EntryPrice: 100, ExitPrice: 90,
			},
			wantGross: 100, wantNet: 60, wantRR: 0,
		},
		{
			name: "no stop means no ratio",
			trade: Trade{
				Direction: DirectionLong, Quantity: 5,
				EntryPrice: 50, ExitPrice: 52, TargetPrice: 60,
			},
			wantGross: 10, wantNet: -30, wantRR: 0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.trade.ComputeDerived(40)
			if math.Abs(tc.trade.GrossPL-tc.wantGross) > 1e-9 {
				t.Errorf("GrossPL = %f, want %f", tc.trade.GrossPL, tc.wantGross)
			}
			if math.Abs(tc.trade.NetPL-tc.wantNet) > 1e-9 {
				t.Errorf("NetPL = %f, want %f", tc.trade.NetPL, tc.wantNet)
			}
			if math.Abs(tc.trade.RiskRewardRatio-tc.wantRR) > 1e-9 {
				t.Errorf("RiskRewardRatio = %f, want %f", tc.trade.RiskRewardRatio, tc.wantRR)
			}
		})
	}
}

func TestFollowedRuleExactMatch(t *testing.T) {
	trade := Trade{FollowedRules: []string{"Wait for confirmation"}}
	if !trade.FollowedRule("Wait for confirmation") {
		t.Error("exact title should match")
	}
	if trade.FollowedRule("wait for confirmation") {
		t.Error("matching must be case-sensitive")
	}
	if trade.FollowedRule("Wait for confirmation ") {
		t.Error("matching must not fold whitespace")
	}
}

// Property: gross P&L mirrors when the direction flips, and net is always
// gross minus commission.
func TestProperty_DerivedFields(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("net = gross - commission for both directions", prop.ForAll(
		func(qty, entry, exit, commission float64) bool {
			long := Trade{Direction: DirectionLong, Quantity: qty, EntryPrice: entry, ExitPrice: exit}
			long.ComputeDerived(commission)
			short := Trade{Direction: DirectionShort, Quantity: qty, EntryPrice: entry, ExitPrice: exit}
			short.ComputeDerived(commission)

			if math.Abs(long.NetPL-(long.GrossPL-commission)) > 1e-6 {
				return false
			}
			return math.Abs(long.GrossPL+short.GrossPL) < 1e-6
		},
		gen.Float64Range(1, 1000),
		gen.Float64Range(1, 10000),
		gen.Float64Range(1, 10000),
		gen.Float64Range(0, 100),
	))

	properties.Property("risk:reward is reward over risk when both sides are set", prop.ForAll(
		func(entry, riskPts, rewardPts float64) bool {
			trade := Trade{
				Direction: DirectionLong, Quantity: 1,
				EntryPrice:  entry,
				ExitPrice:   entry,
				StopLoss:    entry - riskPts,
				TargetPrice: entry + rewardPts,
			}
			trade.ComputeDerived(0)
			return math.Abs(trade.RiskRewardRatio-rewardPts/riskPts) < 1e-6
		},
		gen.Float64Range(100, 10000),
		gen.Float64Range(1, 50),
		gen.Float64Range(1, 150),
	))

	properties.TestingRun(t)
}
