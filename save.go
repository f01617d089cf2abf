package bedpe

import (
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
)

// ClusterFileName returns the output path for one chromosome's cluster file.
func ClusterFileName(outdir, chrom string) string {
	return filepath.Join(outdir, chrom+"_clusters.json")
}

// SaveClusters writes one chromosome's clusters to outfile in the sparse
// JSON format: an array of clusters, each cluster an array of [row, col] bin
// index pairs. An existing file is overwritten. Output is byte-identical
// across runs for identical input.
func SaveClusters(clusters []Cluster, outfile string) error {
	data, err := Marshal(clusters)
	if err != nil {
		return pfx.Err(err)
	}

	if err := os.WriteFile(outfile, data, 0o644); err != nil {
		return pfx.Err(err)
	}

	return nil
}
