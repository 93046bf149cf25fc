// Package stations holds the catalog of stations that can be queried.
// A default catalog is embedded; a CSV with the same layout can replace it.
package stations

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

//go:embed stations.csv
var embeddedCSV string

// ErrEmptyCatalog is returned when a catalog source holds no stations
var ErrEmptyCatalog = errors.New("station catalog is empty")

// Catalog is an ordered, read-only list of stations
type Catalog struct {
	stations []models.Station
	byID     map[string]int
	folded   []string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(strings.NewReader(embeddedCSV))
		if err != nil {
			panic(fmt.Sprintf("embedded station catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadFile reads a catalog from a CSV file
func LoadFile(path string) (*Catalog, error) {
	// #nosec G304 -- path is an explicit user-supplied catalog
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open station catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load reads a catalog with an `id,name,region` header. Rows with an empty
// id or name are skipped; a repeated id keeps its first row.
func Load(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCatalog
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}
	cols, err := columns(header)
	if err != nil {
		return nil, err
	}

	c := &Catalog{byID: make(map[string]int)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}

		st := models.Station{
			ID:     field(rec, cols["id"]),
			Name:   field(rec, cols["name"]),
			Region: field(rec, cols["region"]),
		}
		if st.ID == "" || st.Name == "" {
			continue
		}
		if _, dup := c.byID[st.ID]; dup {
			continue
		}

		c.byID[st.ID] = len(c.stations)
		c.stations = append(c.stations, st)
		c.folded = append(c.folded, fold(st.Name+" "+st.Region))
	}

	if len(c.stations) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

func columns(header []string) (map[string]int, error) {
	cols := map[string]int{"region": -1}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"id", "name"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("catalog header lacks %q column", required)
		}
	}
	return cols, nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// Len returns the number of stations
func (c *Catalog) Len() int {
	return len(c.stations)
}

// All returns every station in catalog order
func (c *Catalog) All() []models.Station {
	out := make([]models.Station, len(c.stations))
	copy(out, c.stations)
	return out
}

// Search returns the stations whose name or region contains query,
// ignoring case and accents, in catalog order. An empty query matches all.
func (c *Catalog) Search(query string) []models.Station {
	q := fold(query)
	if q == "" {
		return c.All()
	}

	var out []models.Station
	for i, f := range c.folded {
		if strings.Contains(f, q) {
			out = append(out, c.stations[i])
		}
	}
	return out
}

// Lookup resolves a station by id, or by name ignoring case and accents.
// A name that matches a single station as a substring also resolves.
func (c *Catalog) Lookup(idOrName string) (models.Station, bool) {
	key := strings.TrimSpace(idOrName)
	if key == "" {
		return models.Station{}, false
	}
	if i, ok := c.byID[key]; ok {
		return c.stations[i], true
	}

	q := fold(key)
	for _, st := range c.stations {
		if fold(st.Name) == q {
			return st, true
		}
	}

	matches := c.Search(key)
	if len(matches) == 1 {
		return matches[0], true
	}
	return models.Station{}, false
}

// Resolve is Lookup for command-line arguments: an unknown numeric argument
// is taken as a station id the upstream service will validate.
func (c *Catalog) Resolve(arg string) (models.Station, error) {
	if st, ok := c.Lookup(arg); ok {
		return st, nil
	}

	arg = strings.TrimSpace(arg)
	if _, err := strconv.Atoi(arg); err == nil {
		return models.Station{ID: arg}, nil
	}

	if matches := c.Search(arg); len(matches) > 1 {
		return models.Station{}, &AmbiguousError{Query: arg, Matches: matches}
	}
	return models.Station{}, fmt.Errorf("unknown station %q", arg)
}

// AmbiguousError is returned when a name matches several stations
type AmbiguousError struct {
	Query   string
	Matches []models.Station
}

func (e *AmbiguousError) Error() string {
	names := make([]string, 0, len(e.Matches))
	for _, m := range e.Matches {
		names = append(names, m.Name)
	}
	return fmt.Sprintf("station %q is ambiguous: %s", e.Query, strings.Join(names, ", "))
}

// fold lower-cases s and strips diacritics, so "Forli" matches "Forlì"
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
