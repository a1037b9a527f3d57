package contact

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadContactsCSV reads contacts from a CSV file with a header row.
// Recognised columns are name, email, phone and url (case-insensitive);
// unknown columns are ignored and rows with no name are skipped.
func LoadContactsCSV(path string) ([]Info, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	out, err := ReadContactsCSV(fp)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return out, nil
}

// ReadContactsCSV is LoadContactsCSV for an already open reader.
func ReadContactsCSV(r io.Reader) ([]Info, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv has no header")
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("csv header has no name column")
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Info{}
	for _, row := range rows[1:] {
		c := Info{
			Name:  get(row, "name"),
			Email: get(row, "email"),
			Phone: get(row, "phone"),
			URL:   get(row, "url"),
		}
		if c.Name == "" {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
