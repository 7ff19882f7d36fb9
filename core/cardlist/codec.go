package cardlist

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"mtg-utils/core/reconcile"
)

// Entry is a single card line.
type Entry struct {
	Quantity int
	Name     string
}

// String formats the entry as it appears in a list file.
func (e Entry) String() string {
	return strconv.Itoa(e.Quantity) + " " + e.Name
}

// List is an ordered sequence of entries as read from or written to a file.
type List []Entry

// Total returns the sum of all quantities.
func (l List) Total() int {
	total := 0
	for _, e := range l {
		total += e.Quantity
	}
	return total
}

// Map collapses the list into a quantity map, summing repeated names.
func (l List) Map() reconcile.QuantityMap {
	m := make(reconcile.QuantityMap, len(l))
	for _, e := range l {
		m.Add(e.Name, e.Quantity)
	}
	return m.Normalize()
}

// ParseError reports a line that does not match "<quantity> <name>".
type ParseError struct {
	Source string
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.Source, e.Line, e.Reason, e.Text)
}

// ParseLine parses a single "<quantity> <name>" line.
func ParseLine(line string) (Entry, error) {
	qty, name, found := strings.Cut(line, " ")
	if !found {
		return Entry{}, fmt.Errorf("missing space between quantity and name")
	}
	n, err := strconv.Atoi(qty)
	if err != nil || strings.TrimLeft(qty, "0123456789") != "" {
		return Entry{}, fmt.Errorf("invalid quantity")
	}
	if n <= 0 {
		return Entry{}, fmt.Errorf("quantity must be positive")
	}
	if strings.TrimSpace(name) == "" {
		return Entry{}, fmt.Errorf("missing card name")
	}
	return Entry{Quantity: n, Name: name}, nil
}

// Parse reads a list, failing on the first malformed line.
// source names the input in error messages.
func Parse(r io.Reader, source string) (List, error) {
	var list List
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := ParseLine(line)
		if err != nil {
			return nil, &ParseError{Source: source, Line: lineNo, Text: line, Reason: err.Error()}
		}
		list = append(list, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return list, nil
}

// Write emits one "<quantity> <name>" line per entry, with no blank lines.
func Write(w io.Writer, list List) error {
	bw := bufio.NewWriter(w)
	for _, e := range list {
		if _, err := bw.WriteString(e.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FromMap builds a list from m ordered by less on card names.
func FromMap(m reconcile.QuantityMap, less func(a, b string) bool) List {
	list := make(List, 0, len(m))
	for name, qty := range m {
		if qty <= 0 {
			continue
		}
		list = append(list, Entry{Quantity: qty, Name: name})
	}
	sort.Slice(list, func(i, j int) bool {
		return less(list[i].Name, list[j].Name)
	})
	return list
}

// ByName orders names ascending.
func ByName(a, b string) bool {
	return a < b
}

// LibraryOrder orders names ascending with the snow-covered basics last.
func LibraryOrder(a, b string) bool {
	return reconcile.LibraryLess(a, b)
}
