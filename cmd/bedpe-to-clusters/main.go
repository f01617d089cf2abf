package main

import (
	"flag"
	"log"

	bedpe "github.com/thomasgilgenast/bedpe-to-clusters"
)

func main() {
	cfg := bedpe.DefaultConfig()
	flag.StringVar(&cfg.BedpePath, "bedpe", cfg.BedpePath, "Filename of the .bedpe file to convert (.gz and .zst are decompressed transparently)")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory to write the per-chromosome cluster files into")
	flag.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "Contact matrix resolution in base pairs")
	flag.Float64Var(&cfg.PlaceholderScore, "score", cfg.PlaceholderScore, "Placeholder statistic recorded in the cluster index")
	flag.BoolVar(&cfg.WriteIndex, "index", cfg.WriteIndex, "Also write a clusters.sqlite index of the output files")
	flag.Parse()

	summary, err := bedpe.Convert(cfg)
	if err != nil {
		log.Fatalln(err)
	}

	for _, cs := range summary.Chromosomes {
		log.Printf("%s: %d clusters (%d pixels) -> %s\n", cs.Chromosome, cs.NClusters, cs.NPixels, cs.FileName)
	}
	log.Println("Wrote", len(summary.Chromosomes), "cluster files to", cfg.OutDir)
}
