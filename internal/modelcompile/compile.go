// Package modelcompile is the offline pipeline that turns a BudouX-format
// JSON score file into a Go source file holding a package model.Model
// literal: sorted, binary-searchable constant tables plus a base score.
//
// It mirrors the role of the original project's codegen step, substituting
// Go's text/template and go/format for the original's hand-rolled string
// template and C array syntax.
package modelcompile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LangSpec names one language's source JSON file and the identifiers its
// compiled Go file should use.
type LangSpec struct {
	// JSONFile is the file name (not path) under the models directory,
	// e.g. "zh-hans.json".
	JSONFile string
	// OutFile is the file name (not path) to write under the output
	// directory, e.g. "zh_hans.go".
	OutFile string
	// VarName is the exported model.Model variable name, e.g. "ZhHans".
	VarName string
	// Comment is a short human-readable language name used in the
	// generated doc comment, e.g. "Simplified Chinese".
	Comment string
}

// DefaultLangs is the set of languages the runtime and cmd/budouxgen ship
// by default.
var DefaultLangs = []LangSpec{
	{JSONFile: "ja.json", OutFile: "ja.go", VarName: "Ja", Comment: "Japanese"},
	{JSONFile: "ja_knbc.json", OutFile: "ja_knbc.go", VarName: "JaKNBC", Comment: "Japanese/KNBC"},
	{JSONFile: "th.json", OutFile: "th.go", VarName: "Th", Comment: "Thai"},
	{JSONFile: "zh-hans.json", OutFile: "zh_hans.go", VarName: "ZhHans", Comment: "Simplified Chinese"},
	{JSONFile: "zh-hant.json", OutFile: "zh_hant.go", VarName: "ZhHant", Comment: "Traditional Chinese"},
}

// entry is an intermediate (packed key, score) pair shared by all three
// table widths before emission narrows Key to its final type. Its fields
// are exported so the emission template (text/template only ever sees
// exported fields) can read Score directly.
type entry struct {
	Key   uint64
	Score int
}

// compiledModel holds one language's fully encoded, sorted tables, ready for
// emission.
type compiledModel struct {
	spec   LangSpec
	tables map[string][]entry // table name -> sorted entries
	base   int
}

// Compile reads every lang.JSONFile under modelsDir, encodes and sorts its
// tables, and writes the corresponding lang.OutFile under outDir. It writes
// each file to a temporary path first and renames it into place, so a
// failure partway through never leaves a truncated file behind.
func Compile(modelsDir, outDir string, langs []LangSpec) error {
	for _, spec := range langs {
		cm, err := compileOne(modelsDir, spec)
		if err != nil {
			return err
		}
		if err := writeModel(outDir, cm); err != nil {
			return err
		}
		tracer().Infof("modelcompile: wrote %s (%s, base=%d)",
			filepath.Join(outDir, spec.OutFile), spec.VarName, cm.base)
	}
	return nil
}

func compileOne(modelsDir string, spec LangSpec) (*compiledModel, error) {
	raw, err := loadJSON(modelsDir, spec.JSONFile)
	if err != nil {
		return nil, err
	}

	cm := &compiledModel{spec: spec, tables: make(map[string][]entry, len(tableNames))}
	sum := 0

	for _, table := range tableNames {
		elems := raw[table]
		entries := make([]entry, 0, len(elems))
		for key, score := range elems {
			packed, err := encodeKey(table, key)
			if err != nil {
				if errors.Is(err, errKeyLengthOutOfRange) {
					tracer().Errorf("modelcompile: %v: discarding entry", err)
					continue
				}
				return nil, err
			}
			entries = append(entries, entry{Key: packed, Score: score})
			sum += score
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
		cm.tables[table] = entries
	}

	cm.base = -sum
	return cm, nil
}

// writeModel renders cm as Go source and atomically installs it at
// outDir/cm.spec.OutFile.
func writeModel(outDir string, cm *compiledModel) error {
	src, err := renderModel(cm)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, cm.spec.OutFile, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, outDir, err)
	}

	dest := filepath.Join(outDir, cm.spec.OutFile)
	tmp, err := os.CreateTemp(outDir, ".modelcompile-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once renamed away

	if _, err := tmp.Write(src); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s: %v", ErrWrite, dest, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, dest, err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, dest, err)
	}
	return nil
}

// entry1Key, entry2Key and entry3Key convert a packed key to the storage type
// of its table so the template doesn't need to know which width applies;
// they mirror model.Entry1/Entry2/Entry3's own Key field types.
func entry1Key(e entry) uint32 { return uint32(e.Key) }
func entry2Key(e entry) uint64 { return e.Key }
func entry3Key(e entry) uint64 { return e.Key }
