// Package game holds the read-only view of a Truco hand that bots decide on,
// and the contract every bot implements.
//
// # Basic Usage
//
// Build a snapshot for the decision at hand and pass it to a policy:
//
//	intel := game.NewIntel(deck.MustParseCard("5h")).
//	    WithHand(deck.MustParseCards("6c2d3s")).
//	    WithOpponentCard(deck.MustParseCard("3d")).
//	    WithScores(4, 7).
//	    Build()
//	play := policy.ChooseCard(intel)
//
// # Snapshot Shape
//
// The hand shrinks by one card per completed trick, and RoundResults holds one
// entry per completed trick. The snapshot is not validated: callers are
// responsible for handing over a consistent view. Policies never mutate it.
package game
