package game

// Policy is a Truco bot. Calls within a hand arrive in order: AcceptElevenHand
// when the bot sits at eleven points, then ShouldRaise and ChooseCard for each
// trick, and RaiseResponse whenever the opponent asks for more.
//
// Implementations may keep counters across calls; a fresh instance is needed
// for each match.
type Policy interface {
	Name() string
	AcceptElevenHand(intel Intel) bool
	ShouldRaise(intel Intel) bool
	// ChooseCard returns a card from intel.Hand. It panics on an empty hand.
	ChooseCard(intel Intel) CardToPlay
	RaiseResponse(intel Intel) RaiseResponse
}
