package bedpe

import (
	"bufio"
	"strconv"
	"strings"
)

type RowReader struct {
	RowsSeen int
	b        *BEDPE
	scanner  *bufio.Scanner
	lineNum  int
	sawData  bool
	err      error
}

func (b *BEDPE) NewRowReader() *RowReader {
	rr := &RowReader{
		scanner: bufio.NewScanner(b.reader),
		b:       b,
	}

	return rr
}

func (rr *RowReader) Error() error {
	return rr.err
}

// Read returns the next data row, or nil once the file is exhausted or a
// terminal error has occurred. Check Error after the nil return.
func (rr *RowReader) Read() *Row {
	if rr.err != nil {
		return nil
	}

	for rr.scanner.Scan() {
		rr.lineNum++
		line := rr.scanner.Text()

		if skippableLine(line) {
			continue
		}

		row, err := parseRow(line)
		if err != nil {
			// A leading line with named (non-numeric) coordinate columns is
			// a header, not data.
			if !rr.sawData && isHeaderLine(line) {
				continue
			}
			rr.err = &ParseError{Line: rr.lineNum, Text: line, Err: err}
			return nil
		}

		rr.sawData = true
		rr.RowsSeen++
		return row
	}

	if err := rr.scanner.Err(); err != nil {
		rr.err = err
	}

	return nil
}

func skippableLine(line string) bool {
	return line == "" ||
		strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "track") ||
		strings.HasPrefix(line, "browser")
}

func isHeaderLine(line string) bool {
	fields := strings.Split(line, "\t")
	if len(fields) < 6 {
		return false
	}

	for _, i := range []int{1, 2, 4, 5} {
		if _, err := strconv.Atoi(fields[i]); err == nil {
			return false
		}
	}

	return true
}

func parseRow(line string) (*Row, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 6 {
		return nil, errColumnCount(len(fields))
	}

	start1, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, err
	}
	end1, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, err
	}
	start2, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, err
	}
	end2, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, err
	}

	return &Row{
		Chrom1: fields[0],
		Start1: start1,
		End1:   end1,
		Chrom2: fields[3],
		Start2: start2,
		End2:   end2,
	}, nil
}
