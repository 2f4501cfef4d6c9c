package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/graphinglib/internal/curves"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrNotFound  = errors.New("storage: dataset not found")
	ErrInvalidID = errors.New("storage: invalid dataset id")
)

// Series is anything with labelled (x, y) samples.
type Series interface {
	Label() string
	X() []float64
	Y() []float64
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID      string    `json:"id"`
	Label   string    `json:"label"`
	Kind    string    `json:"kind"`
	Created time.Time `json:"created"`
	Points  int       `json:"points"`
	XMin    float64   `json:"x_min"`
	XMax    float64   `json:"x_max"`
	YMin    float64   `json:"y_min"`
	YMax    float64   `json:"y_max"`
	Source  string    `json:"source,omitempty"`
}

var unsafeID = regexp.MustCompile(`[^a-z0-9_-]+`)

// newID derives a directory-safe id from the label plus a short random suffix.
func newID(label string) string {
	slug := strings.Trim(unsafeID.ReplaceAllString(strings.ToLower(label), "-"), "-")
	if slug == "" {
		slug = "dataset"
	}
	return slug + "-" + uuid.NewString()[:8]
}

// Save writes the series under a new id and returns its metadata.
func (s *Store) Save(kind, source string, series Series) (*Metadata, error) {
	x, y := series.X(), series.Y()
	if len(x) != len(y) {
		return nil, fmt.Errorf("storage: %d x values for %d y values", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("storage: %q has no samples", series.Label())
	}

	meta := Metadata{
		ID:      newID(series.Label()),
		Label:   series.Label(),
		Kind:    kind,
		Created: time.Now().UTC(),
		Points:  len(x),
		Source:  source,
	}
	meta.XMin, meta.XMax = bounds(x)
	meta.YMin, meta.YMax = bounds(y)

	dir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	if err := writeDataset(dir, &meta, x, y); err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	return &meta, nil
}

func writeDataset(dir string, meta *Metadata, x, y []float64) error {
	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(dir, "samples.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := range x {
		row := []string{
			strconv.FormatFloat(x[i], 'g', -1, 64),
			strconv.FormatFloat(y[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// bounds spans the finite values of v; it is zero when there are none.
func bounds(v []float64) (lo, hi float64) {
	finite := make([]float64, 0, len(v))
	for _, f := range v {
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			finite = append(finite, f)
		}
	}
	if len(finite) == 0 {
		return 0, 0
	}
	return floats.Min(finite), floats.Max(finite)
}

// checkID rejects ids that would leave the store directory.
func checkID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// List returns every readable dataset, oldest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	sets := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		sets = append(sets, *meta)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Created.Before(sets[j].Created) })
	return sets, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples reads the stored x and y columns.
func (s *Store) LoadSamples(id string) (x, y []float64, err error) {
	if err := checkID(id); err != nil {
		return nil, nil, err
	}
	path := filepath.Join(s.baseDir, id, "samples.csv")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return ReadColumns(path, 0, 1)
}

// LoadCurve rebuilds a stored dataset as a Curve with its saved label.
func (s *Store) LoadCurve(id string, opts ...curves.Option) (*curves.Curve, error) {
	meta, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	x, y, err := s.LoadSamples(id)
	if err != nil {
		return nil, err
	}
	return curves.NewCurve(x, y, meta.Label, opts...)
}

func (s *Store) Delete(id string) error {
	if _, err := s.Load(id); err != nil {
		return err
	}
	return os.RemoveAll(filepath.Join(s.baseDir, id))
}
