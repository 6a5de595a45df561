package powerspec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTable parses a whitespace-delimited two-column (k, P) text table,
// the format the Boltzmann codes emit. Blank lines and lines starting
// with '#' are skipped; extra columns beyond the second are ignored. The
// parsed table must satisfy the Table invariants or ErrBadTable is
// returned.
func ReadTable(r io.Reader) (Table, error) {
	var t Table
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return Table{}, fmt.Errorf("%w: line %d has %d columns, want 2", ErrBadTable, line, len(fields))
		}
		k, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Table{}, fmt.Errorf("%w: line %d: %v", ErrBadTable, line, err)
		}
		p, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Table{}, fmt.Errorf("%w: line %d: %v", ErrBadTable, line, err)
		}
		t.K = append(t.K, k)
		t.P = append(t.P, p)
	}
	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("powerspec: reading table: %w", err)
	}
	if err := t.validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// WriteTable writes the table as two space-separated columns, one row per
// line, in %.18e notation. The precision is enough to round-trip float64
// exactly through ReadTable. Backup and rename semantics around the
// destination are the caller's job.
func WriteTable(w io.Writer, t Table) error {
	if err := t.validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for i := range t.K {
		if _, err := fmt.Fprintf(bw, "%.18e %.18e\n", t.K[i], t.P[i]); err != nil {
			return fmt.Errorf("powerspec: writing table: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("powerspec: writing table: %w", err)
	}
	return nil
}
