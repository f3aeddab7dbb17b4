package batch

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pair is one search job: transform Start into Target.
type Pair struct {
	Start  string `yaml:"start"`
	Target string `yaml:"target"`
}

// longer returns the length of the longer endpoint, the cost driver of a
// search (it determines the default growth cap, hence the state space).
func (p Pair) longer() int {
	if len(p.Start) > len(p.Target) {
		return len(p.Start)
	}

	return len(p.Target)
}

// LoadPairs reads a pair list from path. Files ending in .yaml or .yml are
// parsed as a YAML list of {start, target} entries; anything else as plain
// text, one "start target" per line, with blank lines and #-comments
// skipped. Word validation happens later, at the codec boundary.
func LoadPairs(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPairFile, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAMLPairs(data)
	default:
		return parseTextPairs(data)
	}
}

func parseTextPairs(data []byte) ([]Pair, error) {
	var pairs []Pair
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want \"start target\", got %q", ErrBadPairLine, line, text)
		}
		pairs = append(pairs, Pair{Start: fields[0], Target: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPairFile, err)
	}

	return pairs, nil
}

func parseYAMLPairs(data []byte) ([]Pair, error) {
	var pairs []Pair
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPairFile, err)
	}

	return pairs, nil
}

// SortPairs orders pairs in place by the scheduling heuristic: ascending
// by the longer endpoint length, ties broken lexicographically by start
// then target. Cheap searches run first; the order is deterministic.
func SortPairs(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		if li, lj := pairs[i].longer(), pairs[j].longer(); li != lj {
			return li < lj
		}
		if pairs[i].Start != pairs[j].Start {
			return pairs[i].Start < pairs[j].Start
		}

		return pairs[i].Target < pairs[j].Target
	})
}
