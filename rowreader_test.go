package bedpe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func writeTempBedpe(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRowReader(t *testing.T) {
	contents := "# comment\n" +
		"chrom1\tstart1\tend1\tchrom2\tstart2\tend2\n" +
		"chr1\t100\t200\tchr1\t5100\t5200\tloop_A\t0.9\n" +
		"chr2\t300\t400\tchr3\t600\t700\n"
	path := writeTempBedpe(t, "loops.bedpe", contents)

	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	rr := b.NewRowReader()

	first := rr.Read()
	if first == nil {
		t.Fatal("expected a first row, got nil:", rr.Error())
	}
	want := Row{Chrom1: "chr1", Start1: 100, End1: 200, Chrom2: "chr1", Start2: 5100, End2: 5200}
	if *first != want {
		t.Errorf("got %+v, expected %+v", *first, want)
	}
	if !first.Cis() {
		t.Error("first row should be cis")
	}

	second := rr.Read()
	if second == nil {
		t.Fatal("expected a second row, got nil:", rr.Error())
	}
	if second.Cis() {
		t.Error("second row should be trans")
	}

	if rr.Read() != nil {
		t.Error("expected nil after last row")
	}
	if err := rr.Error(); err != nil {
		t.Error("unexpected terminal error:", err)
	}
	if rr.RowsSeen != 2 {
		t.Errorf("RowsSeen = %d, expected 2", rr.RowsSeen)
	}
}

func TestRowReaderShortLine(t *testing.T) {
	path := writeTempBedpe(t, "short.bedpe", "chr1\t100\t200\tchr1\n")

	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	rr := b.NewRowReader()
	if row := rr.Read(); row != nil {
		t.Fatal("expected no row from a 4-column line, got", row)
	}

	var perr *ParseError
	if !errors.As(rr.Error(), &perr) {
		t.Fatalf("expected a *ParseError, got %v", rr.Error())
	}
	if perr.Line != 1 {
		t.Errorf("ParseError.Line = %d, expected 1", perr.Line)
	}
}

func TestRowReaderBadCoordinate(t *testing.T) {
	contents := "chr1\t100\t200\tchr1\t5100\t5200\n" +
		"chr1\t100\tnotanumber\tchr1\t5100\t5200\n"
	path := writeTempBedpe(t, "bad.bedpe", contents)

	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	rr := b.NewRowReader()
	if rr.Read() == nil {
		t.Fatal("expected the first row to parse:", rr.Error())
	}
	if rr.Read() != nil {
		t.Fatal("expected the second row to fail")
	}

	var perr *ParseError
	if !errors.As(rr.Error(), &perr) {
		t.Fatalf("expected a *ParseError, got %v", rr.Error())
	}
	if perr.Line != 2 {
		t.Errorf("ParseError.Line = %d, expected 2", perr.Line)
	}
}

func TestRowReaderGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loops.bedpe.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write([]byte("chr1\t100\t200\tchr1\t5100\t5200\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	rows, err := ReadAllRows(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Chrom1 != "chr1" || rows[0].Start2 != 5100 {
		t.Errorf("unexpected rows from gzip input: %+v", rows)
	}
}

func TestRowReaderZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loops.bedpe.zst")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write([]byte("chr1\t100\t200\tchr1\t5100\t5200\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	rows, err := ReadAllRows(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].End2 != 5200 {
		t.Errorf("unexpected rows from zstd input: %+v", rows)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.bedpe")); err == nil {
		t.Error("expected an error opening a missing file")
	}
}
