package extract

// Range is the half-open row interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Partition splits [0, n) into parts contiguous ranges of ceil(n/parts)
// rows each. Trailing ranges are empty when n does not fill every part.
// The result always has exactly max(parts, 1) entries.
func Partition(n, parts int) []Range {
	if parts < 1 {
		parts = 1
	}
	if n < 0 {
		n = 0
	}

	chunk := (n + parts - 1) / parts
	ranges := make([]Range, parts)
	for i := range ranges {
		start := min(i*chunk, n)
		end := min(start+chunk, n)
		ranges[i] = Range{Start: start, End: end}
	}
	return ranges
}

// Blocks splits [0, n) into consecutive ranges of grain rows; the last
// block may be shorter.
func Blocks(n, grain int) []Range {
	if grain < 1 {
		grain = 1
	}
	if n <= 0 {
		return nil
	}

	blocks := make([]Range, 0, (n+grain-1)/grain)
	for start := 0; start < n; start += grain {
		blocks = append(blocks, Range{Start: start, End: min(start+grain, n)})
	}
	return blocks
}

// autoGrain picks a block size giving each worker several blocks, so the
// scheduler can balance rows of uneven density.
func autoGrain(height, workers int) int {
	const blocksPerWorker = 4
	grain := height / (workers * blocksPerWorker)
	if grain < 1 {
		return 1
	}
	return grain
}
