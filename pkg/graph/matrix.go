package graph

// buildTransition derives the row-normalized transition matrix from a
// symmetric adjacency matrix. Each row is divided by its sum; a row
// with sum 0 remains all-zero. The input is never modified, so a
// snapshot handed out earlier stays valid.
func buildTransition(adjacency [][]float64) [][]float64 {
	n := len(adjacency)
	transition := make([][]float64, n)

	for i, row := range adjacency {
		transition[i] = make([]float64, n)

		rowSum := 0.0
		for _, w := range row {
			rowSum += w
		}
		if rowSum == 0 {
			continue
		}

		for j, w := range row {
			if w != 0 {
				transition[i][j] = w / rowSum
			}
		}
	}

	return transition
}
