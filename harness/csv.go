package harness

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes rows in the results format:
//
//	sample,algorithm,sigma,rmse,seconds
func WriteCSV(rows []Row, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"sample", "algorithm", "sigma", "rmse", "seconds"}); err != nil {
		return fmt.Errorf("harness: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Sample,
			row.Solver,
			strconv.FormatFloat(row.Sigma, 'g', -1, 64),
			strconv.FormatFloat(row.RMSE, 'g', -1, 64),
			strconv.FormatFloat(row.Seconds, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("harness: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("harness: %w", err)
	}
	return nil
}
