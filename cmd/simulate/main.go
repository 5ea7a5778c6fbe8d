package main

import (
	"flag"
	"log"
	"time"

	"rpsls/internal/game/match"
	"rpsls/internal/game/move"
	"rpsls/internal/game/opponent"
)

// Headless driver: plays full matches with random move sources on both
// sides and prints aggregate results. Useful for eyeballing the engine
// without sitting through the interactive session.
func main() {
	matches := flag.Int("matches", 100, "number of matches to simulate")
	points := flag.Int("points", match.DefaultPointsToWin, "score needed to win a match")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "rng seed")
	flag.Parse()

	catalog, err := move.NewCatalog()
	if err != nil {
		log.Fatalf("Could not build move catalog: %v", err)
	}

	user := opponent.NewRandom(catalog, *seed)
	rival := opponent.NewRandom(catalog, *seed+1)

	var userWins, rivalWins, totalRounds, tiedRounds, tiebreakers int

	log.Printf("[Simulate] Running %d matches to %d points (seed %d).", *matches, *points, *seed)

	for i := 0; i < *matches; i++ {
		ctrl, err := match.NewController(*points)
		if err != nil {
			log.Fatalf("Could not create match controller: %v", err)
		}

		sawTiebreaker := false
		for !ctrl.Finished() {
			outcome := match.Resolve(catalog, user.NextMove(), rival.NextMove())
			st, err := ctrl.ApplyRound(outcome)
			if err != nil {
				log.Fatalf("[Simulate] Match %s: %v", st.MatchID, err)
			}

			totalRounds++
			if outcome == match.Tie {
				tiedRounds++
			}
			if st.Tiebreaker {
				sawTiebreaker = true
			}
		}

		if sawTiebreaker {
			tiebreakers++
		}
		if ctrl.State().GrandWinner == match.UserWins {
			userWins++
		} else {
			rivalWins++
		}
	}

	log.Printf("[Simulate] Done. user=%d opponent=%d (of %d matches)", userWins, rivalWins, *matches)
	log.Printf("[Simulate] Rounds played: %d (%d tied). Matches that hit a tiebreaker: %d.",
		totalRounds, tiedRounds, tiebreakers)
}
