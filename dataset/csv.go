package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sartorproj/golinfit/errs"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	XColumn   string // Column name for x (default: "x")
	YColumn   string // Column name for y (default: "y")
	HasHeader bool   // Whether CSV has header row (default: true)
	Delimiter rune   // Field delimiter (default: ',')
	SkipRows  int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		XColumn:   "x",
		YColumn:   "y",
		HasHeader: true,
		Delimiter: ',',
	}
}

// missingTokens load as NaN.
var missingTokens = map[string]bool{
	"":     true,
	"NA":   true,
	"NaN":  true,
	"nan":  true,
	"null": true,
}

// LoadCSV loads a pair from a CSV file. The pair is named after the file.
func LoadCSV(filename string, opts *CSVOptions) (*Pair, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	p, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	p.Name = filename

	return p, nil
}

// LoadCSVFromReader loads a pair from an io.Reader.
//
// Missing cells (empty, NA, NaN, null) load as NaN so the caller decides
// whether to drop them. Any other unparseable cell is an error. Without a
// header the first column is x and the second is y.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Pair, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	xIdx, yIdx := 0, 1
	if opts.HasHeader {
		header, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil, errs.ErrNoData
		}
		if err != nil {
			return nil, err
		}

		xIdx = columnIndex(header, opts.XColumn)
		if xIdx < 0 {
			return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, opts.XColumn)
		}
		yIdx = columnIndex(header, opts.YColumn)
		if yIdx < 0 {
			return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, opts.YColumn)
		}
	}

	var x, y []float64
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		xv, err := parseCell(record, xIdx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		yv, err := parseCell(record, yIdx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		x = append(x, xv)
		y = append(y, yv)
	}

	if len(x) == 0 {
		return nil, errs.ErrNoData
	}

	return &Pair{X: x, Y: y}, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(strings.Trim(h, "\"")) == name {
			return i
		}
	}
	return -1
}

func parseCell(record []string, idx int) (float64, error) {
	if idx >= len(record) {
		return math.NaN(), nil
	}

	s := strings.TrimSpace(strings.Trim(record[idx], "\""))
	if missingTokens[s] {
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse %q", errs.ErrInvalidInput, s)
	}
	return v, nil
}
