package deck

// CountValue returns the hi-lo contribution of a drawn card:
// +1 for 2–6, 0 for 7–9, and -1 for tens, faces, and aces.
func CountValue(card *Card) int {
	switch value := card.BlackjackValue(); {
	case value <= 6:
		return 1
	case value <= 9:
		return 0
	default:
		return -1
	}
}
