package bedpe

// Row is one BEDPE record: a pair of genomic anchor intervals. Columns beyond
// the standard six are ignored at parse time.
type Row struct {
	Chrom1 string
	Start1 int
	End1   int
	Chrom2 string
	Start2 int
	End2   int
}

// Cis reports whether both anchors lie on the same chromosome.
func (r Row) Cis() bool {
	return r.Chrom1 == r.Chrom2
}
