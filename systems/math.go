package systems

// sign returns -1, 0 or +1 following the sign of v.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// angleSign is sign(v) with zero treated as positive, so a flat ball
// always gets a usable vertical direction after a strike.
func angleSign(v float64) float64 {
	if s := sign(v); s != 0 {
		return s
	}
	return 1
}
