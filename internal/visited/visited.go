// Package visited resolves the list of visited country names against the
// world dataset and finds an image for each.
package visited

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"visitglobe/internal/geom"
)

// TotalCountries is the number of UN recognised countries.
const TotalCountries = 195

var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

// List is the document stored in visited.yaml.
type List struct {
	Countries []string `yaml:"countries"`
}

// Entry is a visited country matched to the dataset.
type Entry struct {
	ID             string
	Name           string
	NormalizedName string
	Image          string
}

// LoadList reads visited.yaml. A file whose countries key is missing or not a
// list yields an empty list.
func LoadList(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return List{}, errors.Wrap(err, "read visited list")
	}
	return ParseList(data)
}

func ParseList(data []byte) (List, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return List{}, errors.Wrap(err, "visited list yaml")
	}
	node, ok := doc["countries"]
	if !ok || node.Kind != yaml.SequenceNode {
		return List{}, nil
	}
	var l List
	if err := node.Decode(&l.Countries); err != nil {
		return List{}, errors.Wrap(err, "visited list countries")
	}
	return l, nil
}

// NormalizeName lower-cases a display name and joins words with underscores,
// the form used in visited.yaml and image file names.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}

// DisplayName turns a normalised name back into title case words.
func DisplayName(normalized string) string {
	words := strings.Split(normalized, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		switch w {
		case "and", "of", "the":
			if i > 0 {
				continue
			}
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ScanImages lists image files in dir, sorted. A missing directory is empty.
func ScanImages(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "scan images")
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// imageFor returns the first image named after the country, as in
// "belgium_1.jpg" or "belgium.png".
func imageFor(normalized string, images []string) string {
	for _, img := range images {
		base := strings.ToLower(img)
		if strings.HasPrefix(base, normalized+"_") || strings.HasPrefix(base, normalized+".") {
			return img
		}
	}
	return ""
}

// Resolve matches list names to countries by normalised name. Unknown names
// are logged and skipped. Entry names are the title-cased list names, so the
// dataset's spelling does not leak into progress views.
func Resolve(l List, countries []geom.Country, images []string, logger *zap.Logger) []Entry {
	if logger == nil {
		logger = zap.NewNop()
	}
	byName := make(map[string]geom.Country, len(countries))
	for _, c := range countries {
		byName[NormalizeName(c.Name)] = c
	}
	var out []Entry
	seen := make(map[string]bool)
	for _, raw := range l.Countries {
		n := NormalizeName(raw)
		c, ok := byName[n]
		if !ok {
			logger.Warn("unknown country in visited list", zap.String("name", raw))
			continue
		}
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, Entry{
			ID:             c.ID,
			Name:           DisplayName(n),
			NormalizedName: n,
			Image:          imageFor(n, images),
		})
	}
	return out
}

// Set is the set of visited country IDs.
type Set map[string]Entry

// NewSet indexes entries by ID; later duplicates win.
func NewSet(entries []Entry) Set {
	s := make(Set, len(entries))
	for _, e := range entries {
		s[e.ID] = e
	}
	return s
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Summary is the progress over all countries.
type Summary struct {
	Visited int
	Total   int
}

// Summarize counts s against TotalCountries.
func Summarize(s Set) Summary {
	return Summary{Visited: len(s), Total: TotalCountries}
}

func (s Summary) Remaining() int {
	if s.Visited > s.Total {
		return 0
	}
	return s.Total - s.Visited
}

func (s Summary) String() string {
	return fmt.Sprintf("%d / %d countries visited", s.Visited, s.Total)
}
