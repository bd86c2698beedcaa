package colorhash

// SegmentCount is the number of segments a padded digest is split into.
const SegmentCount = 6

// Pad wraps the digest with a literal '0' on each side.
func Pad(digest string) string {
	return "0" + digest + "0"
}

// Split partitions s into n contiguous parts. The first n-1 parts are
// len(s)/n long and the last part absorbs the remainder, so concatenating
// the parts always yields s. n < 1 is treated as 1.
func Split(s string, n int) []string {
	if n < 1 {
		n = 1
	}
	partLen := len(s) / n
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		start := i * partLen
		end := start + partLen
		if i == n-1 {
			end = len(s)
		}
		parts[i] = s[start:end]
	}
	return parts
}

// Segment pads the digest and splits it into SegmentCount parts.
func Segment(digest string) []string {
	return Split(Pad(digest), SegmentCount)
}
