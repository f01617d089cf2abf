package bedpe

import (
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// BEDPE is the main object used for parsing BEDPE files
type BEDPE struct {
	FilePath string
	File     *os.File

	// reader yields decompressed file contents. It is the file itself
	// unless the filename indicates a compressed stream.
	reader io.Reader
	gz     *gzip.Reader
	zr     *zstd.Decoder
}

// Open attempts to read a BEDPE file located at path. If successful, this
// returns a new BEDPE object. Otherwise, it returns an error. Files ending in
// .gz or .zst are decompressed transparently.
func Open(path string) (*BEDPE, error) {
	b := &BEDPE{
		FilePath: path,
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	b.File = file
	b.reader = file

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, pfx.Err(err)
		}
		b.gz = gz
		b.reader = gz
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, pfx.Err(err)
		}
		b.zr = zr
		b.reader = zr
	}

	return b, nil
}

func (b *BEDPE) Close() error {
	if b.zr != nil {
		b.zr.Close()
	}
	if b.gz != nil {
		if err := b.gz.Close(); err != nil {
			b.File.Close()
			return pfx.Err(err)
		}
	}

	return b.File.Close()
}

// ReadAllRows consumes the full file through a RowReader, returning every
// data row. Any parse or I/O failure aborts the read with no partial result.
func ReadAllRows(b *BEDPE) ([]Row, error) {
	rr := b.NewRowReader()

	var rows []Row
	for {
		row := rr.Read()
		if row == nil {
			break
		}
		rows = append(rows, *row)
	}

	if err := rr.Error(); err != nil {
		return nil, pfx.Err(err)
	}

	return rows, nil
}
