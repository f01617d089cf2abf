package bedpe

import (
	"sort"
	"strconv"
	"strings"
)

// ChromRank maps a chromosome name to its conventional sort rank: autosomes
// numerically, then X, Y, XY, and MT, then everything else. A leading "chr"
// prefix is ignored.
func ChromRank(chrom string) int {
	name := strings.TrimPrefix(chrom, "chr")

	switch name {
	case "X":
		return 23
	case "Y":
		return 24
	case "XY":
		return 253
	case "M", "MT":
		return 254
	}

	if n, err := strconv.Atoi(name); err == nil && n > 0 {
		return n
	}

	return 255
}

// SortChroms orders chromosome names in place by ChromRank, breaking ties
// lexically so the order is total and reruns are byte-identical.
func SortChroms(chroms []string) {
	sort.Slice(chroms, func(i, j int) bool {
		ri, rj := ChromRank(chroms[i]), ChromRank(chroms[j])
		if ri != rj {
			return ri < rj
		}
		return chroms[i] < chroms[j]
	})
}
