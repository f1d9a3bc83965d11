package routine

import (
	_ "embed"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/errors"
	"gopkg.in/yaml.v3"
)

// Exercise is a concrete exercise record. Catalog entries are authored, others are generated from a template line.
type Exercise struct {
	ID          string     `json:"id"                    yaml:"id"`
	Name        string     `json:"name"                  yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description"`
	Category    string     `json:"category"              yaml:"category"`
	Difficulty  axis.Level `json:"difficulty"            yaml:"difficulty"`
	Unit        Unit       `json:"unit"                  yaml:"unit"`
	Equipment   []string   `json:"equipment"             yaml:"equipment"`
	XPReward    int        `json:"expReward"             yaml:"xp_reward"`
	CoinsReward int        `json:"coinsReward"           yaml:"coins_reward"`
	Generated   bool       `json:"generated"             yaml:"-"`
}

// Catalog is an immutable set of exercises looked up by case-insensitive name.
type Catalog struct {
	byName    map[string]Exercise
	exercises []Exercise
}

// NewCatalog indexes exercises. Names must be non-empty and unique ignoring case.
func NewCatalog(exercises []Exercise) (*Catalog, error) {
	c := &Catalog{
		byName:    make(map[string]Exercise, len(exercises)),
		exercises: make([]Exercise, 0, len(exercises)),
	}
	for i, e := range exercises {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if key == "" {
			return nil, errors.New("exercise without name", slog.Int("index", i))
		}
		if _, ok := c.byName[key]; ok {
			return nil, errors.New("duplicate exercise", slog.String("name", e.Name))
		}
		if e.Unit == "" {
			e.Unit = UnitReps
		}
		if e.Difficulty == "" {
			e.Difficulty = axis.Beginner
		}
		c.byName[key] = e
		c.exercises = append(c.exercises, e)
	}
	return c, nil
}

// Find returns the exercise named name, compared case-insensitively. A nil catalog is empty.
func (c *Catalog) Find(name string) (Exercise, bool) {
	if c == nil {
		return Exercise{}, false
	}
	e, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Exercise{}, false
	}
	e.Equipment = slices.Clone(e.Equipment)
	return e, true
}

// Len returns the number of exercises in c.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.exercises)
}

type catalogFile struct {
	Exercises []Exercise `yaml:"exercises"`
}

// ReadCatalog decodes a YAML catalog with a top-level "exercises" list. Unknown fields are rejected.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f catalogFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode catalog")
	}
	for i := range f.Exercises {
		if f.Exercises[i].Difficulty == "" {
			continue
		}
		l, err := axis.ParseLevel(string(f.Exercises[i].Difficulty))
		if err != nil {
			return nil, errors.Wrap(err, "parse difficulty", slog.String("name", f.Exercises[i].Name))
		}
		f.Exercises[i].Difficulty = l
	}
	return NewCatalog(f.Exercises)
}

//go:embed catalog.yaml
var builtinCatalog string

// BuiltinCatalog returns the catalog shipped with the binary.
func BuiltinCatalog() (*Catalog, error) {
	return ReadCatalog(strings.NewReader(builtinCatalog))
}

// LoadCatalog reads a YAML catalog from path. An empty path yields an empty catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(nil)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog", slog.String("path", path))
	}
	defer f.Close()
	c, err := ReadCatalog(f)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog", slog.String("path", path))
	}
	return c, nil
}
