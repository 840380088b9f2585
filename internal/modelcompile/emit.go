package modelcompile

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// modelTemplate renders one language's compiledModel into a Go source file
// declaring a package model Model literal. go/format.Source is responsible
// for indentation and gofmt-equivalent layout; the template itself only
// needs to be syntactically valid Go, not prettily aligned.
var modelTemplate = template.Must(template.New("model").Funcs(template.FuncMap{
	"entry1Key": entry1Key,
	"entry2Key": entry2Key,
	"entry3Key": entry3Key,
}).Parse(`// Code generated by internal/modelcompile from models/{{.Spec.JSONFile}}; treat as
// generated data. Regenerate with ` + "`go run ./cmd/budouxgen`" + `.

package model

// {{.Spec.VarName}} is a small, hand-authored score model for {{.Spec.Comment}}.
// It is NOT the published BudouX model (see DESIGN.md); it exists to
// exercise every table role end-to-end with plausible, human-checkable data.
var {{.Spec.VarName}} = Model{
{{- range .Unigrams}}
	{{.Name}}: []Entry1{
{{- range .Entries}}
		{Key: {{entry1Key .}}, Score: {{.Score}}},
{{- end}}
	},
{{- end}}
{{- range .Bigrams}}
	{{.Name}}: []Entry2{
{{- range .Entries}}
		{Key: {{entry2Key .}}, Score: {{.Score}}},
{{- end}}
	},
{{- end}}
{{- range .Trigrams}}
	{{.Name}}: []Entry3{
{{- range .Entries}}
		{Key: {{entry3Key .}}, Score: {{.Score}}},
{{- end}}
	},
{{- end}}
	Base: {{.Base}},
}
`))

// namedTable pairs a table's field name with its sorted entries, in the
// order the template walks them.
type namedTable struct {
	Name    string
	Entries []entry
}

// renderModel produces gofmt'd Go source for cm.
func renderModel(cm *compiledModel) ([]byte, error) {
	data := struct {
		Spec     LangSpec
		Unigrams []namedTable
		Bigrams  []namedTable
		Trigrams []namedTable
		Base     int
	}{Spec: cm.spec, Base: cm.base}

	for _, name := range tableNames {
		t := namedTable{Name: name, Entries: cm.tables[name]}
		switch gramSize(name) {
		case 1:
			data.Unigrams = append(data.Unigrams, t)
		case 2:
			data.Bigrams = append(data.Bigrams, t)
		case 3:
			data.Trigrams = append(data.Trigrams, t)
		}
	}

	var buf bytes.Buffer
	if err := modelTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("modelcompile: rendering %s: %w", cm.spec.VarName, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("modelcompile: formatting %s: %w", cm.spec.VarName, err)
	}
	return formatted, nil
}
