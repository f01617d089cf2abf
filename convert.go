package bedpe

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/carbocation/pfx"
)

// Config holds the conversion settings that the original tool hard-coded.
type Config struct {
	// BedpePath is the BEDPE file to read loop calls from.
	BedpePath string

	// OutDir receives one {chrom}_clusters.json file per chromosome, plus
	// the cluster index when WriteIndex is set.
	OutDir string

	// Resolution is the contact matrix resolution in base pairs.
	Resolution int

	// PlaceholderScore is the dummy statistic recorded in the cluster index
	// for every chromosome. The sparse JSON files themselves carry only
	// pixels; no statistical testing happens here.
	PlaceholderScore float64

	// WriteIndex controls whether a clusters.sqlite index is written next to
	// the cluster files.
	WriteIndex bool
}

// DefaultConfig matches the historical no-argument invocation.
func DefaultConfig() Config {
	return Config{
		BedpePath:        "loops.bedpe",
		OutDir:           ".",
		Resolution:       10000,
		PlaceholderScore: 1.0,
		WriteIndex:       true,
	}
}

// ChromSummary describes one chromosome's written cluster file. Field tags
// follow the cluster index schema so sqlx can scan rows directly.
type ChromSummary struct {
	Chromosome string  `db:"chromosome"`
	NClusters  int     `db:"n_clusters"`
	NPixels    int     `db:"n_pixels"`
	MinBin     int     `db:"min_bin"`
	MaxBin     int     `db:"max_bin"`
	Score      float64 `db:"score"`
	FileName   string  `db:"file_name"`
}

type Summary struct {
	Chromosomes []ChromSummary
}

// Convert runs the whole pipeline: load the BEDPE file, keep cis rows, group
// them by chromosome, convert each row to a sparse cluster, and write one
// JSON file per chromosome into cfg.OutDir. Chromosomes are processed in
// ChromRank order. Any failure aborts the conversion immediately; no rows
// are skipped and no partially converted chromosome set is reported as
// success.
func Convert(cfg Config) (*Summary, error) {
	if cfg.Resolution <= 0 {
		return nil, pfx.Err(fmt.Errorf("resolution must be positive, got %d", cfg.Resolution))
	}

	b, err := Open(cfg.BedpePath)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer b.Close()

	rows, err := ReadAllRows(b)
	if err != nil {
		return nil, pfx.Err(err)
	}

	byChrom := ClustersByChrom(rows, cfg.Resolution)

	chroms := make([]string, 0, len(byChrom))
	for chrom := range byChrom {
		chroms = append(chroms, chrom)
	}
	SortChroms(chroms)

	summary := &Summary{}
	for _, chrom := range chroms {
		clusters := byChrom[chrom]
		outfile := ClusterFileName(cfg.OutDir, chrom)
		if err := SaveClusters(clusters, outfile); err != nil {
			return nil, pfx.Err(err)
		}

		summary.Chromosomes = append(summary.Chromosomes, summarize(chrom, clusters, cfg, outfile))
	}

	if cfg.WriteIndex {
		meta := IndexMetadata{
			SourcePath:   cfg.BedpePath,
			Resolution:   cfg.Resolution,
			CreationTime: Time(time.Now()),
		}
		indexPath := filepath.Join(cfg.OutDir, IndexFileName)
		if err := WriteClusterIndex(indexPath, meta, summary.Chromosomes); err != nil {
			return nil, pfx.Err(err)
		}
	}

	return summary, nil
}

func summarize(chrom string, clusters []Cluster, cfg Config, outfile string) ChromSummary {
	cs := ChromSummary{
		Chromosome: chrom,
		NClusters:  len(clusters),
		Score:      cfg.PlaceholderScore,
		FileName:   filepath.Base(outfile),
	}

	first := true
	for _, cluster := range clusters {
		cs.NPixels += len(cluster)
		for _, px := range cluster {
			for _, bin := range px {
				if first || bin < cs.MinBin {
					cs.MinBin = bin
				}
				if first || bin > cs.MaxBin {
					cs.MaxBin = bin
				}
				first = false
			}
		}
	}

	return cs
}
