package bedpe

// Pixel is one contact-matrix position as a (row bin, col bin) pair of
// 0-based bin indices.
type Pixel [2]int

// Cluster is the set of pixels covered by one loop call, in row-major order.
type Cluster []Pixel

// RowToCluster converts a single BEDPE row to a sparse cluster at the given
// matrix resolution in base pairs. Each anchor interval is expanded to every
// bin it overlaps, from floor(start/resolution) through
// ceil(end/resolution)-1 inclusive, and the cluster is the full rectangle of
// pixels formed by crossing the two anchors' bin ranges. An anchor contained
// in a single bin contributes exactly that bin, so point anchors yield a
// one-pixel cluster.
func RowToCluster(row Row, resolution int) Cluster {
	rowMin := row.Start1 / resolution
	rowMax := ceilDiv(row.End1, resolution) - 1
	colMin := row.Start2 / resolution
	colMax := ceilDiv(row.End2, resolution) - 1

	if rowMax < rowMin || colMax < colMin {
		return Cluster{}
	}

	cluster := make(Cluster, 0, (rowMax-rowMin+1)*(colMax-colMin+1))
	for i := rowMin; i <= rowMax; i++ {
		for j := colMin; j <= colMax; j++ {
			cluster = append(cluster, Pixel{i, j})
		}
	}

	return cluster
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// ClustersByChrom partitions rows by chromosome and converts each to a
// cluster. Only cis rows are kept; trans rows are dropped. Within each
// chromosome, clusters appear in input row order.
func ClustersByChrom(rows []Row, resolution int) map[string][]Cluster {
	out := make(map[string][]Cluster)
	for _, row := range rows {
		if !row.Cis() {
			continue
		}
		out[row.Chrom1] = append(out[row.Chrom1], RowToCluster(row, resolution))
	}

	return out
}
