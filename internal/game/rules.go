package game

// LegalActions lists the actions that resolve to what they declare for a
// player facing callValue. It is advisory: the resolver accepts any action
// and clamps the result instead of rejecting it.
func (r *Resolver) LegalActions(st Stake, callValue int64) []ActionType {
	st.Balance = max(st.Balance, 0)
	st.Bet = max(st.Bet, 0)
	callValue = max(callValue, 0)

	actions := []ActionType{ActionFold}
	if st.Bet >= callValue || st.Balance == 0 {
		actions = append(actions, ActionCheck)
	} else if r.Decide(Call(), st, callValue).Status == StatusCall {
		actions = append(actions, ActionCall)
	}
	if st.Balance == 0 {
		return actions
	}
	if r.Decide(Rise(0), st, callValue).Status == StatusRise {
		actions = append(actions, ActionRise)
	}
	return append(actions, ActionAllIn)
}
