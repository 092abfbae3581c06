package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNotObject = errors.New("record is not a JSON object")

// Record is one cleaned row. Columns keeps the order in which the server
// sent the keys; Values holds the decoded cells (json.Number for numbers).
type Record struct {
	Columns []string
	Values  map[string]any
}

// NewRecord builds a Record from alternating column/value pairs.
func NewRecord(pairs ...any) Record {
	r := Record{Values: make(map[string]any, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		col := fmt.Sprint(pairs[i])
		if _, dup := r.Values[col]; !dup {
			r.Columns = append(r.Columns, col)
		}
		r.Values[col] = pairs[i+1]
	}
	return r
}

// Get returns the value of column and whether it is present.
func (r Record) Get(column string) (any, bool) {
	v, ok := r.Values[column]
	return v, ok
}

func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	// null leaves the record untouched
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errNotObject
	}

	rec := Record{Values: map[string]any{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("column %q: %w", key, err)
		}
		if _, dup := rec.Values[key]; !dup {
			rec.Columns = append(rec.Columns, key)
		}
		rec.Values[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = rec
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.Values[col])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CleanedDataset is the upload response: cleaned rows plus mapping errors.
type CleanedDataset struct {
	Records []Record `json:"cleaned_data"`
	Errors  []string `json:"errors"`
}

// Columns returns the header of the dataset, taken from the first record
// that has any columns.
func (d *CleanedDataset) Columns() []string {
	if d == nil {
		return nil
	}
	for _, rec := range d.Records {
		if len(rec.Columns) > 0 {
			return rec.Columns
		}
	}
	return nil
}

// Len returns the number of cleaned rows.
func (d *CleanedDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
