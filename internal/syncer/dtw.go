package syncer

import "math"

// DTWPath computes a simplified dynamic time warping path between two
// binary signals. The cost of matching two windows is 0 when their values
// agree and 1 otherwise. The returned path is a monotone sequence of
// (audioIndex, subtitleIndex) pairs.
//
// Memory grows with len(a)*len(b); callers gate this behind an opt-in flag
// for long inputs.
func DTWPath(a, b []float64) [][2]int {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil
	}

	cost := make([][]float64, n+1)
	for i := range cost {
		cost[i] = make([]float64, m+1)
	}
	for j := 1; j <= m; j++ {
		cost[0][j] = math.Inf(1)
	}
	for i := 1; i <= n; i++ {
		cost[i][0] = math.Inf(1)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			match := 0.0
			if a[i-1] != b[j-1] {
				match = 1.0
			}
			cost[i][j] = match + min3(cost[i-1][j], cost[i][j-1], cost[i-1][j-1])
		}
	}

	// Backtrack from the corner, preferring diagonal moves.
	var path [][2]int
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, [2]int{i - 1, j - 1})
		best := min3(cost[i-1][j], cost[i][j-1], cost[i-1][j-1])
		switch best {
		case cost[i-1][j-1]:
			i--
			j--
		case cost[i-1][j]:
			i--
		default:
			j--
		}
	}

	reverse(path)
	return path
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func reverse(path [][2]int) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
