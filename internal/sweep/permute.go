package sweep

// Permutations enumerates batting orders over ids in lexicographic order
// of the input positions. A positive limit caps how many are produced;
// zero means all of them.
func Permutations(ids []string, limit int) [][]string {
	n := len(ids)
	if n == 0 {
		return nil
	}

	var out [][]string
	perm := make([]string, 0, n)
	used := make([]bool, n)

	var visit func() bool
	visit = func() bool {
		if len(perm) == n {
			out = append(out, append([]string(nil), perm...))
			return limit <= 0 || len(out) < limit
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			perm = append(perm, ids[i])
			more := visit()
			perm = perm[:len(perm)-1]
			used[i] = false
			if !more {
				return false
			}
		}
		return true
	}
	visit()
	return out
}

// FixedLeadoffPermutations holds the first ID in the leadoff slot and
// permutes the remaining slots, cutting the search space by a factor of
// the pool size.
func FixedLeadoffPermutations(ids []string, limit int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	tails := Permutations(ids[1:], limit)
	out := make([][]string, len(tails))
	for i, tail := range tails {
		order := make([]string, 0, len(ids))
		order = append(order, ids[0])
		out[i] = append(order, tail...)
	}
	return out
}
