package pitch

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// reversed returns a copy of v in reverse order.
func reversed(v []float64) []float64 {
	w := make([]float64, len(v))
	for i, x := range v {
		w[len(v)-1-i] = x
	}
	return w
}
