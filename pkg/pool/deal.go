package pool

import "math/rand"

const (
	// MinCard and MaxCard bound the face values of a standard deck.
	MinCard = 1
	MaxCard = 13
)

// Deal draws n card values uniformly from MinCard..MaxCard.
func Deal(rng *rand.Rand, n int) []float64 {
	if n < 0 {
		n = 0
	}
	cards := make([]float64, n)
	for i := range cards {
		cards[i] = float64(rng.Intn(MaxCard-MinCard+1) + MinCard)
	}
	return cards
}
