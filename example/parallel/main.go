package main

import (
	"flag"
	"log"
	"sync"

	bedpe "github.com/thomasgilgenast/bedpe-to-clusters"
)

// Writes each chromosome's cluster file from its own goroutine. The
// chromosome outputs are fully independent, so this needs no coordination
// beyond collecting errors.
func main() {
	cfg := bedpe.DefaultConfig()
	flag.StringVar(&cfg.BedpePath, "bedpe", cfg.BedpePath, "Filename of the .bedpe file to convert")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory to write the per-chromosome cluster files into")
	flag.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "Contact matrix resolution in base pairs")
	flag.Parse()

	b, err := bedpe.Open(cfg.BedpePath)
	if err != nil {
		log.Fatalln(err)
	}
	defer b.Close()

	rows, err := bedpe.ReadAllRows(b)
	if err != nil {
		log.Fatalln(err)
	}

	byChrom := bedpe.ClustersByChrom(rows, cfg.Resolution)

	errs := make(chan error)
	var wg sync.WaitGroup
	for chrom, clusters := range byChrom {
		wg.Add(1)
		go func(chrom string, clusters []bedpe.Cluster) {
			defer wg.Done()

			outfile := bedpe.ClusterFileName(cfg.OutDir, chrom)
			if err := bedpe.SaveClusters(clusters, outfile); err != nil {
				errs <- err
				return
			}
			log.Println(chrom+":", len(clusters), "clusters ->", outfile)
		}(chrom, clusters)
	}

	go func() {
		wg.Wait()
		close(errs)
	}()

	for err := range errs {
		log.Fatalln(err)
	}

	log.Println("Wrote", len(byChrom), "cluster files to", cfg.OutDir)
}
