package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegalActions(t *testing.T) {
	tests := []struct {
		name      string
		st        Stake
		callValue int64
		want      []ActionType
	}{
		{"nothing owed", Stake{Balance: 1000}, 0, []ActionType{ActionFold, ActionCheck, ActionRise, ActionAllIn}},
		{"call owed", Stake{Balance: 1000}, 40, []ActionType{ActionFold, ActionCall, ActionRise, ActionAllIn}},
		{"already matched", Stake{Balance: 1000, Bet: 40}, 40, []ActionType{ActionFold, ActionCheck, ActionRise, ActionAllIn}},
		{"cannot cover call", Stake{Balance: 1000}, 2000, []ActionType{ActionFold, ActionAllIn}},
		{"cannot min-raise", Stake{Balance: 100}, 80, []ActionType{ActionFold, ActionCall, ActionAllIn}},
		{"partial bet short of call", Stake{Balance: 100, Bet: 50}, 120, []ActionType{ActionFold, ActionAllIn}},
		{"balance exactly covers call", Stake{Balance: 100}, 100, []ActionType{ActionFold, ActionCall, ActionAllIn}},
		{"bet above call value", Stake{Balance: 1000, Bet: 700}, 100, []ActionType{ActionFold, ActionCheck, ActionRise, ActionAllIn}},
		{"busted", Stake{}, 40, []ActionType{ActionFold, ActionCheck}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newFixture().resolver.LegalActions(tt.st, tt.callValue))
		})
	}
}

func TestLegalActionsResolveAsDeclared(t *testing.T) {
	r := newFixture().resolver
	stakes := []Stake{
		{Balance: 1000}, {Balance: 100, Bet: 50}, {Balance: 100}, {Balance: 1000, Bet: 700}, {Balance: 300, Bet: 260},
	}
	for _, st := range stakes {
		for _, cv := range []int64{0, 40, 100, 120, 280, 2000} {
			for _, at := range r.LegalActions(st, cv) {
				a := Action{Type: at}
				out := r.Decide(a, st, cv)
				assert.Equal(t, StatusFor(at, false), out.Status, "stake %+v cv %d action %s", st, cv, at)
			}
		}
	}
}
