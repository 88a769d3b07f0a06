package problem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	// ErrUnknownKind indicates a document whose kind names no engine.
	ErrUnknownKind = errors.New("problem: unknown kind")

	// ErrInvalidSpec indicates a spec that cannot be turned into an engine input.
	ErrInvalidSpec = errors.New("problem: invalid spec")
)

// Kind selects the engine a document is solved with.
type Kind string

const (
	KindBellmanFord Kind = "bellman-ford"
	KindDijkstra    Kind = "dijkstra"
	KindMultistage  Kind = "multistage"
	KindTSP         Kind = "tsp"
)

// Kinds lists every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindBellmanFord, KindDijkstra, KindMultistage, KindTSP}
}

// ParseKind matches s case-insensitively against the supported kinds.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Document is the raw, untyped form of a problem file.
type Document struct {
	Kind string         `yaml:"kind" json:"kind" validate:"required"`
	Name string         `yaml:"name" json:"name"`
	Spec map[string]any `yaml:"spec" json:"spec" validate:"required"`
}

// Load reads a YAML document from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse yaml: %v", ErrInvalidSpec, err)
	}
	if err := validateStruct(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadFile reads a document from path. Files ending in .json are parsed as
// JSON, everything else as YAML. JSON numbers are kept as json.Number so that
// large integers survive until Decode.
func LoadFile(path string) (*Document, error) {
	if strings.ToLower(filepath.Ext(path)) != ".json" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open problem: %w", err)
		}
		defer f.Close()

		return Load(f)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open problem: %w", err)
	}
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse json: %v", ErrInvalidSpec, err)
	}
	if err := validateStruct(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
