package dataset

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vytor/chessrank/internal/models"
)

// ParseCSV reads a delimited file with a header row and returns its
// normalized rows. A structurally broken file is the one fatal input
// condition: the error aborts the whole import and no partial table is
// produced. Cell-level problems never error; they become null cells.
func ParseCSV(r io.Reader) ([]models.Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Uploaded sheets routinely have ragged rows; let normalization pad
	// the short ones instead of failing the import.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		records = append(records, rec)
	}

	return Normalize(header, records), nil
}
