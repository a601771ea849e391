// Package manifest handles pith.toml class declarations.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/pith/object"
)

// Manifest represents a pith.toml file: project metadata plus an
// ordered list of class declarations.
type Manifest struct {
	Project Project     `toml:"project"`
	Classes []ClassDecl `toml:"class"`

	// Dir is the directory containing the pith.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// ClassDecl declares one class: ordered fields with literal defaults,
// and the names of the methods the class is expected to carry. Method
// bodies are Go functions supplied at build time.
type ClassDecl struct {
	Name    string      `toml:"name"`
	Fields  []FieldDecl `toml:"field"`
	Methods []string    `toml:"methods"`
}

// FieldDecl declares one field with an optional TOML literal default.
// An absent default binds the field to nil.
type FieldDecl struct {
	Name    string      `toml:"name"`
	Default interface{} `toml:"default"`
}

// Load parses a pith.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "pith.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	for i, c := range m.Classes {
		if c.Name == "" {
			return nil, fmt.Errorf("%s: class %d has no name", path, i)
		}
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a pith.toml file, then
// loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", startDir, err)
	}

	for {
		path := filepath.Join(dir, "pith.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Build registers every declared class into the given table. Method
// bodies are resolved from funcs, keyed "Class.method". Declared
// methods with no entry in funcs are bound to a stub returning
// object.NotFound; their keys are returned so callers can decide
// whether unbound methods are fatal.
func (m *Manifest) Build(classes *object.ClassTable, funcs map[string]object.MethodFunc) ([]string, error) {
	if classes == nil {
		return nil, fmt.Errorf("manifest: nil class table")
	}

	var unbound []string
	for _, decl := range m.Classes {
		fields := make([]object.FieldInit, len(decl.Fields))
		for i, f := range decl.Fields {
			fields[i] = object.FieldInit{Name: f.Name, Init: object.Lit(object.Value(f.Default))}
		}

		defs := make([]object.MethodDef, 0, len(decl.Methods))
		for _, name := range decl.Methods {
			key := decl.Name + "." + name
			fn, ok := funcs[key]
			if !ok {
				unbound = append(unbound, key)
				fn = unboundMethod
			}
			defs = append(defs, object.MethodDef{Name: name, Fn: fn})
		}

		classes.Register(object.NewClass(decl.Name, fields, defs))
	}
	return unbound, nil
}

// unboundMethod stands in for a declared method with no Go binding.
func unboundMethod(self *object.Instance, args []object.Value) object.Value {
	return object.NotFound
}
