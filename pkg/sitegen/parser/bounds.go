package parser

// Region is a rectangular cell range, 1-based and inclusive.
type Region struct {
	R1, C1 int
	R2, C2 int
}

// clip restricts rows to the region. Rows and columns outside are dropped.
func (r Region) clip(rows [][]string) [][]string {
	var out [][]string
	for rowIdx := r.R1 - 1; rowIdx < r.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		var cut []string
		if r.C1-1 < len(row) {
			end := r.C2
			if end > len(row) {
				end = len(row)
			}
			cut = row[r.C1-1 : end]
		}
		out = append(out, cut)
	}
	return out
}

// findDataBounds finds the bounding box of non-empty cells, -1 when there is none.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
