package parallel

// Band is a half-open range [Start, End) of rows, pixels or samples.
type Band struct {
	Start, End int
}

// Len returns the number of elements in the band.
func (b Band) Len() int {
	return b.End - b.Start
}

// Split divides [0, n) into consecutive bands of at most size elements.
// The last band may be shorter. n <= 0 yields no bands; size <= 0 yields
// a single band covering everything.
func Split(n, size int) []Band {
	if n <= 0 {
		return nil
	}
	if size <= 0 || size >= n {
		return []Band{{0, n}}
	}

	bands := make([]Band, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		bands = append(bands, Band{start, min(start+size, n)})
	}
	return bands
}

// Scale multiplies both ends of every band by k, turning row bands into
// pixel or sample bands.
func Scale(bands []Band, k int) []Band {
	out := make([]Band, len(bands))
	for i, b := range bands {
		out[i] = Band{b.Start * k, b.End * k}
	}
	return out
}
