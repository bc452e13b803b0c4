package rng

// Generator provides a simple random number.
// The shoe shuffle takes a Generator so real play can use Crypto while
// tests inject a Seeded generator for deterministic orderings.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
