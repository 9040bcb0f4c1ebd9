package parallel

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits height rows into at most n contiguous bands of nearly equal
// size. It returns nil when there is nothing to split.
func Bands(height, n int) []Band {
	if height <= 0 || n <= 0 {
		return nil
	}
	n = min(n, height)
	bands := make([]Band, n)
	for i := range n {
		bands[i] = Band{Y0: i * height / n, Y1: (i + 1) * height / n}
	}
	return bands
}

// Rows calls fn once per band of rows, spreading the bands over the pool's
// workers, and returns when every call is done.
func (p *WorkerPool) Rows(height int, fn func(y0, y1 int)) {
	bands := Bands(height, p.workers)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Y0, b.Y1) }
	}
	p.ExecuteAll(work)
}
