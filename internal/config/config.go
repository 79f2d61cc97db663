// SPDX-License-Identifier: MIT

// Package config loads YAML run definitions for nested-logit evaluations.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvchoice/field"
	"github.com/katalvlaran/lvchoice/nested"
)

// Default values applied to fields left empty in the YAML document.
const (
	DefaultOutputDir = "."
	DefaultWorkers   = 1
)

var (
	// ErrInvalid indicates a run definition that parses but cannot be executed.
	ErrInvalid = errors.New("config: invalid run definition")

	// ErrMissingLeaf indicates a tree leaf without an input path.
	ErrMissingLeaf = errors.New("config: leaf has no input")
)

// ShapeConfig is the YAML form of field.Shape.
type ShapeConfig struct {
	Rank int `yaml:"rank"`
	N    int `yaml:"n"`
}

// NodeConfig is the YAML form of nested.Node.
type NodeConfig struct {
	Level    int      `yaml:"level"`
	Code     string   `yaml:"code"`
	Scale    float64  `yaml:"scale"`
	Children []string `yaml:"children"`
}

// Node converts the YAML entry to the engine's nest type.
func (n NodeConfig) Node() nested.Node {
	return nested.Node{
		Level:    n.Level,
		Code:     n.Code,
		Scale:    n.Scale,
		Children: append([]string(nil), n.Children...),
	}
}

// Run describes one nested evaluation: the tree, where leaf utilities live,
// and where results go.
//
//	shape: {rank: 2, n: 3399}
//	output_dir: out
//	logsum: out/root_logsum.bin
//	workers: 4
//	tree:
//	  - {level: 0, code: ROOT, scale: 1.0, children: [AU, TR]}
//	  - {level: 1, code: TR, scale: 0.75, children: [WB, WX]}
//	leaves: {AU: in/801.bin, WB: in/803.bin, WX: in/802.bin}
//
// Relative paths resolve against the directory of the YAML file.
type Run struct {
	Shape     ShapeConfig       `yaml:"shape"`
	OutputDir string            `yaml:"output_dir,omitempty"`
	Logsum    string            `yaml:"logsum,omitempty"`
	Workers   int               `yaml:"workers,omitempty"`
	Tree      []NodeConfig      `yaml:"tree"`
	Leaves    map[string]string `yaml:"leaves"`
}

// Load reads, defaults and validates the run definition at path.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.resolve(filepath.Dir(path))

	return r, nil
}

// Parse decodes a run definition. Unknown keys are rejected.
func Parse(data []byte) (*Run, error) {
	var r Run
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	r.applyDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

func (r *Run) applyDefaults() {
	if r.OutputDir == "" {
		r.OutputDir = DefaultOutputDir
	}
	if r.Workers == 0 {
		r.Workers = DefaultWorkers
	}
}

// resolve makes relative paths relative to base.
func (r *Run) resolve(base string) {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}

		return filepath.Join(base, p)
	}
	r.OutputDir = join(r.OutputDir)
	r.Logsum = join(r.Logsum)
	for code, p := range r.Leaves {
		r.Leaves[code] = join(p)
	}
}

// Validate checks what can be checked without touching the filesystem.
func (r *Run) Validate() error {
	if err := r.FieldShape().Validate(); err != nil {
		return fmt.Errorf("shape: %w: %w", ErrInvalid, err)
	}
	if r.Workers < 0 {
		return fmt.Errorf("workers %d: %w", r.Workers, ErrInvalid)
	}
	if len(r.Tree) == 0 {
		return fmt.Errorf("tree is empty: %w", ErrInvalid)
	}
	if len(r.Leaves) == 0 {
		return fmt.Errorf("leaves are empty: %w", ErrInvalid)
	}
	for code, p := range r.Leaves {
		if p == "" {
			return fmt.Errorf("leaf %q has an empty path: %w", code, ErrInvalid)
		}
	}

	return nil
}

// FieldShape converts the YAML shape.
func (r *Run) FieldShape() field.Shape {
	return field.Shape{Rank: r.Shape.Rank, N: r.Shape.N}
}

// BuildTree validates the tree and checks every leaf has an input path.
func (r *Run) BuildTree() (*nested.Tree, error) {
	nodes := make([]nested.Node, len(r.Tree))
	for i, n := range r.Tree {
		nodes[i] = n.Node()
	}
	t, err := nested.NewTree(nodes...)
	if err != nil {
		return nil, err
	}
	for _, code := range t.Leaves() {
		if _, ok := r.Leaves[code]; !ok {
			return nil, fmt.Errorf("%q: %w", code, ErrMissingLeaf)
		}
	}

	return t, nil
}
