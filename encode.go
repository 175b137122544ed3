package momentum

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Input sheets are positional: the column meanings are fixed even though
// the delimiter and date formats vary between exports.
const (
	colSerial     = 0
	colStock      = 1
	colEntryPrice = 2
	colExitPrice  = 3
	colEntryDate  = 6
	colExitDate   = 7
	minColumns    = 8
)

// DecodeTrades decodes trade records from a CSV or TSV stream.
//
// The decoder is deliberately forgiving about format: it sniffs the
// delimiter, tolerates a UTF-8 BOM, stops at the first blank line (broker
// sheets often carry footers below one), and recovers per row. Rows that
// cannot be decoded are reported in the returned error slice with their row
// number; decoding continues for the rest.
func DecodeTrades(r io.Reader) ([]Trade, []error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(strings.Trim(line, "\t,;")) == "" {
			break // footer section starts here
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, []error{fmt.Errorf("could not read input: %w", err)}
	}
	if len(lines) == 0 {
		return nil, nil
	}

	lines[0] = strings.TrimPrefix(lines[0], "\ufeff")
	delim := sniffDelimiter(lines)

	var trades []Trade
	var errs []error
	for i, line := range lines[1:] { // line 0 is the header
		row, err := splitRow(line, delim)
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		// Exporters drop empty trailing columns; pad them back as long as
		// the row reaches the entry date. A shorter row is truly malformed.
		if len(row) <= colEntryDate {
			errs = append(errs, fmt.Errorf("row %d: want %d columns, got %d", i+1, minColumns, len(row)))
			continue
		}
		for len(row) < minColumns {
			row = append(row, "")
		}
		t, err := decodeRow(row)
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d (%s): %w", i+1, strings.TrimSpace(row[colSerial]), err))
			continue
		}
		trades = append(trades, t)
	}
	return trades, errs
}

// sniffDelimiter inspects the first lines and picks the delimiter.
// Tab wins if present at all, then comma, then semicolon.
func sniffDelimiter(lines []string) rune {
	sample := lines
	if len(sample) > 5 {
		sample = sample[:5]
	}
	counts := map[rune]int{'\t': 0, ',': 0, ';': 0}
	for _, line := range sample {
		for d := range counts {
			counts[d] += strings.Count(line, string(d))
		}
	}
	switch {
	case counts['\t'] > 0:
		return '\t'
	case counts[','] > 0:
		return ','
	default:
		return ';'
	}
}

func splitRow(line string, delim rune) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	return cr.Read()
}

func decodeRow(row []string) (Trade, error) {
	var t Trade
	t.Name = strings.TrimSpace(row[colStock])
	if t.Name == "" {
		return t, fmt.Errorf("missing stock name")
	}

	entryPrice := strings.TrimSpace(row[colEntryPrice])
	if entryPrice == "" {
		return t, fmt.Errorf("missing entry price")
	}
	var err error
	if t.EntryPrice, err = ParseMoney(entryPrice); err != nil {
		return t, fmt.Errorf("invalid entry price %q: %w", entryPrice, err)
	}

	entryDate := strings.TrimSpace(row[colEntryDate])
	if entryDate == "" {
		return t, fmt.Errorf("missing entry date")
	}
	if t.EntryDate, err = ParseDate(entryDate); err != nil {
		return t, err
	}

	// The exit side is optional: price and date must come together.
	exitPrice := strings.TrimSpace(row[colExitPrice])
	exitDate := strings.TrimSpace(row[colExitDate])
	if exitDate != "" {
		if t.ExitDate, err = ParseDate(exitDate); err != nil {
			return t, err
		}
		if exitPrice == "" {
			return t, fmt.Errorf("exit date %s without an exit price", t.ExitDate)
		}
		if t.ExitPrice, err = ParseMoney(exitPrice); err != nil {
			return t, fmt.Errorf("invalid exit price %q: %w", exitPrice, err)
		}
	}

	return t, t.Validate()
}
