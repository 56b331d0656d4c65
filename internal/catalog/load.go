package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/llehouerou/movierec/internal/logging"
)

// Column names the loader requires in the header row.
const (
	ColumnGenre       = "genre"
	ColumnTitle       = "original_title"
	ColumnYear        = "year"
	ColumnRating      = "avg_vote"
	ColumnDescription = "description"
)

var requiredColumns = []string{
	ColumnGenre,
	ColumnTitle,
	ColumnYear,
	ColumnRating,
	ColumnDescription,
}

// LoadError reports that a catalog could not be loaded. Every load fault
// (missing file, bad CSV, missing column, unparseable number) is reported
// through this one type.
type LoadError struct {
	Path string // empty when loading from a reader
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" && errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("file '%s' not found", e.Path)
	}
	if e.Path == "" {
		return fmt.Sprintf("error loading data: %v", e.Err)
	}
	return fmt.Sprintf("error loading data from '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a CSV file into a catalog.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	records, err := readRecords(bufio.NewReader(f))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	c := New(records)
	logging.Info().
		Str("path", path).
		Int("records", c.Len()).
		Int("genres", len(c.Genres())).
		Msg("catalog loaded")
	return c, nil
}

// Read parses CSV data from r into a catalog.
func Read(r io.Reader) (*Catalog, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return New(records), nil
}

// columns maps required column names to their header positions.
type columns struct {
	genre, title, year, rating, description int
	width                                   int
}

func readRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	// Short rows are allowed: a missing trailing genre cell means no genres.
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, err
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		rec, err := cols.parse(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func mapColumns(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := pos[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}

	return columns{
		genre:       pos[ColumnGenre],
		title:       pos[ColumnTitle],
		year:        pos[ColumnYear],
		rating:      pos[ColumnRating],
		description: pos[ColumnDescription],
		width:       len(header),
	}, nil
}

func (c columns) parse(row []string) (Record, error) {
	if len(row) > c.width {
		return Record{}, fmt.Errorf("%d fields, header has %d", len(row), c.width)
	}
	cell := func(i int) string {
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	year, err := parseYear(cell(c.year))
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", ColumnYear, err)
	}
	rating, rated, err := parseRating(cell(c.rating))
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", ColumnRating, err)
	}

	return Record{
		Title:       cell(c.title),
		Year:        year,
		Rating:      rating,
		Unrated:     !rated,
		Description: cell(c.description),
		Genres:      ParseGenres(cell(c.genre)),
	}, nil
}

// parseRating reports rated=false for a blank cell. Any other cell must be a
// finite number.
func parseRating(s string) (v float64, rated bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("invalid number %q", s)
	}
	return v, true, nil
}

// parseYear accepts plain integers, integral floats ("1999.0") and cells with
// a trailing digit run such as "TV Movie 2019". A blank cell is year 0.
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return int(f), nil
	}

	end := len(s)
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end || (start > 0 && s[start-1] != ' ') {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	v, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return v, nil
}
