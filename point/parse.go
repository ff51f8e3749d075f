package point

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Tags recognized in the last field of an input record.
const (
	tagAgent  = "A"
	tagAnchor = "S"
)

// ErrNoPoints is returned when the input contains no records.
var ErrNoPoints = errors.New("input contains no points")

// ReadFile reads a localization problem from a CSV file. See Parse for
// the record format.
func ReadFile(path string) ([]Truth, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads node records from r, one per line:
//
//	coord_1, coord_2, ..., coord_dim, type
//
// where type is "A" (agent) or "S" (anchor). A record without a type
// tag is an agent. The dimension is inferred from the first record and
// must be uniform. Record order defines node IDs and the canonical
// output order.
func Parse(r io.Reader) ([]Truth, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var truths []Truth
	dim := -1

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ErrMalformedRecord{Line: line, Field: "", cause: err}
		}

		t, err := fromRecord(len(truths), line, record)
		if err != nil {
			return nil, err
		}

		if dim < 0 {
			dim = t.Dim()
		} else if t.Dim() != dim {
			return nil, &ErrDimensionMismatch{Line: line, Expected: dim, Actual: t.Dim()}
		}

		truths = append(truths, t)
	}

	if len(truths) == 0 {
		return nil, ErrNoPoints
	}

	return truths, nil
}

func fromRecord(id, line int, record []string) (Truth, error) {
	coords := make([]float64, 0, len(record))
	typ := Agent

	for i, field := range record {
		field = strings.TrimSpace(field)

		x, err := strconv.ParseFloat(field, 64)
		if err == nil {
			coords = append(coords, x)
			continue
		}

		// First non-numeric field is the type tag; it must be the last.
		if i != len(record)-1 {
			return Truth{}, &ErrMalformedRecord{Line: line, Field: record[i+1], cause: fmt.Errorf("field after type tag %q", field)}
		}

		switch field {
		case tagAnchor:
			typ = Anchor
		case tagAgent:
			typ = Agent
		default:
			return Truth{}, &ErrMalformedRecord{Line: line, Field: field, cause: fmt.Errorf("unrecognized type tag")}
		}
	}

	if len(coords) == 0 {
		return Truth{}, &ErrMalformedRecord{Line: line, Field: strings.Join(record, ","), cause: fmt.Errorf("no coordinates")}
	}

	return NewTruth(id, typ, coords...), nil
}
