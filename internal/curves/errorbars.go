package curves

// buildErrorbars broadcasts each uncertainty slice to one value per sample.
func (s *samples) buildErrorbars(xErr, yErr []float64) (Errorbars, error) {
	x, err := broadcast(xErr, len(s.x))
	if err != nil {
		return Errorbars{}, err
	}
	y, err := broadcast(yErr, len(s.x))
	if err != nil {
		return Errorbars{}, err
	}
	return Errorbars{X: x, Y: y}, nil
}

func broadcast(v []float64, n int) ([]float64, error) {
	switch len(v) {
	case 0:
		return nil, nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = v[0]
		}
		return out, nil
	case n:
		return append([]float64(nil), v...), nil
	}
	return nil, ErrLength
}

// HasErrorbars reports whether any uncertainty is attached.
func (e Errorbars) HasErrorbars() bool {
	return len(e.X) > 0 || len(e.Y) > 0
}
