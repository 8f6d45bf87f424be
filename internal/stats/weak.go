package stats

import "sort"

// WeakestKeys returns up to n keys with any reached slot, lowest accuracy first.
func WeakestKeys(keys []KeyStat, n int) []KeyStat {
	candidates := make([]KeyStat, 0, len(keys))
	for _, k := range keys {
		if k.Right+k.Wrong > 0 {
			candidates = append(candidates, k)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai := candidates[i].Accuracy()
		aj := candidates[j].Accuracy()
		if ai == aj {
			ti := candidates[i].Right + candidates[i].Wrong
			tj := candidates[j].Right + candidates[j].Wrong
			if ti == tj {
				return candidates[i].Char < candidates[j].Char
			}
			return ti > tj
		}
		return ai < aj
	})
	if n <= 0 || n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}
