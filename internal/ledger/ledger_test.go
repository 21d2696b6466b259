package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddToPotAccumulates(t *testing.T) {
	l := New()
	l.AddToPot(100)
	l.AddToPot(250)

	assert.Equal(t, int64(350), l.Pot())
}

func TestAddToPotIgnoresNonPositive(t *testing.T) {
	l := New()
	l.AddToPot(0)
	l.AddToPot(-40)

	assert.Zero(t, l.Pot())
}

func TestSetCallValueClampsNegative(t *testing.T) {
	l := New()
	l.SetCallValue(-5)

	assert.Zero(t, l.CallValue())
}

func TestResetRoundKeepsPot(t *testing.T) {
	l := New()
	l.AddToPot(300)
	l.SetCallValue(80)

	l.ResetRound()

	assert.Equal(t, int64(300), l.Pot())
	assert.Zero(t, l.CallValue())
}
