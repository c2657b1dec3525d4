package types

// HistoryCapacity is the number of markers kept in a background processing history:
// the newest one plus HistoryCapacity-1 retained entries.
const HistoryCapacity = 16

// PrependRecent puts v in front of rs and drops the oldest entries so that at most cap
// items remain. rs is ordered most recent first and is not modified.
func PrependRecent[T any](rs []T, v T, cap int) []T {
	if cap <= 0 {
		return []T{}
	}
	keep := len(rs)
	if keep > cap-1 {
		keep = cap - 1
	}
	out := make([]T, 0, keep+1)
	out = append(out, v)
	return append(out, rs[:keep]...)
}
