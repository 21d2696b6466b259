package game

import (
	"errors"
	"fmt"
	"strings"
)

// ActionType is what a player declares on their turn.
type ActionType string

const (
	ActionFold  ActionType = "fold"
	ActionCheck ActionType = "check"
	ActionCall  ActionType = "call"
	ActionRise  ActionType = "rise"
	ActionAllIn ActionType = "allin"
)

var ErrUnknownAction = errors.New("unknown_action")

func ParseActionType(s string) (ActionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold":
		return ActionFold, nil
	case "check":
		return ActionCheck, nil
	case "call":
		return ActionCall, nil
	case "rise", "raise", "bet":
		return ActionRise, nil
	case "allin", "all_in", "all-in":
		return ActionAllIn, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

func (t ActionType) Valid() bool {
	switch t {
	case ActionFold, ActionCheck, ActionCall, ActionRise, ActionAllIn:
		return true
	}
	return false
}

// Action is a declared move. RiseAmount only matters for ActionRise, where
// zero asks for the default raise.
type Action struct {
	Type       ActionType `json:"action"`
	RiseAmount int64      `json:"amount,omitempty"`
}

func Fold() Action  { return Action{Type: ActionFold} }
func Check() Action { return Action{Type: ActionCheck} }
func Call() Action  { return Action{Type: ActionCall} }
func AllIn() Action { return Action{Type: ActionAllIn} }

func Rise(amount int64) Action {
	if amount < 0 {
		amount = 0
	}
	return Action{Type: ActionRise, RiseAmount: amount}
}

func (a Action) String() string {
	if a.Type == ActionRise {
		return fmt.Sprintf("%s %d", a.Type, a.RiseAmount)
	}
	return string(a.Type)
}
