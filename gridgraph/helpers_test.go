package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/haulroute/gridgraph"
	"github.com/katalvlaran/haulroute/terrain"
)

// parseMap builds a Grid from rows of single-character cells:
//
//	'.' hole, 'P' plain, 'M' mountain, 'F' rainforest, 'U' urban,
//	'R' risky plain, 'X' risky mountain.
//
// Labels are "r<row>c<col>".
func parseMap(rows ...string) *gridgraph.Grid {
	cells := make([][]*terrain.Region, len(rows))
	for y, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		cells[y] = make([]*terrain.Region, len(row))
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			r := terrain.New(y, x, fmt.Sprintf("r%dc%d", y, x))
			switch ch {
			case 'M':
				r.Mountain = true
			case 'F':
				r.Rainforest = true
			case 'U':
				r.Urban = true
			case 'R':
				r.Risky = true
			case 'X':
				r.Mountain, r.Risky = true, true
			}
			cells[y][x] = r
		}
	}
	g, err := gridgraph.NewGrid(cells)
	if err != nil {
		panic(err)
	}

	return g
}
