// Command formbind-lint checks form definition documents for problems the
// loader only warns about or degrades around: unparseable documents, missing
// or duplicate field names, unknown type expressions, choice fields without
// choices, and list fields whose object items have no item block.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-formbind/pkg/definition"
	"github.com/goliatone/go-formbind/pkg/schema"
)

type finding struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nLint form definition documents (YAML or JSON).\n")
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"examples/basic/article.yml"}
	}

	var findings []finding
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		findings = append(findings, lintDocument(path, data)...)
	}

	if len(findings) == 0 {
		return
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].file != findings[j].file {
			return findings[i].file < findings[j].file
		}
		if findings[i].location != findings[j].location {
			return findings[i].location < findings[j].location
		}
		return findings[i].message < findings[j].message
	})
	for _, f := range findings {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", f.file, f.location, f.message)
	}
	os.Exit(1)
}

func lintDocument(file string, data []byte) []finding {
	doc, err := definition.ParseDocument(data, file)
	if err != nil {
		return []finding{{file: file, location: "document", message: err.Error()}}
	}

	root := strings.TrimSpace(doc.Form)
	var findings []finding
	if root == "" {
		root = "document"
		findings = append(findings, finding{file: file, location: root, message: "form name is required"})
	}
	return append(findings, lintFields(file, root, doc.Fields)...)
}

func lintFields(file, location string, specs []definition.FieldSpec) []finding {
	var findings []finding
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		loc := location
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			findings = append(findings, finding{file: file, location: location, message: "field has no name"})
		} else {
			loc = location + "." + name
			if _, dup := seen[name]; dup {
				findings = append(findings, finding{file: file, location: loc, message: fmt.Sprintf("duplicate field %q", name)})
			}
			seen[name] = struct{}{}
		}
		findings = append(findings, lintSpec(file, loc, spec)...)
	}
	return findings
}

func lintSpec(file, location string, spec definition.FieldSpec) []finding {
	var findings []finding

	category := classifySpec(spec)
	if expr := strings.TrimSpace(spec.Type); expr != "" && category.Kind == schema.KindUnknown {
		findings = append(findings, finding{
			file:     file,
			location: location,
			message:  fmt.Sprintf("unknown type expression %q", spec.Type),
		})
	}

	switch category.Kind {
	case schema.KindChoice:
		if len(spec.Choices) == 0 {
			findings = append(findings, finding{file: file, location: location, message: "choice field declares no choices"})
		}
	case schema.KindObject:
		if len(spec.Fields) == 0 {
			findings = append(findings, finding{file: file, location: location, message: "object field declares no fields"})
		}
		findings = append(findings, lintFields(file, location, spec.Fields)...)
	case schema.KindList:
		switch {
		case spec.Item != nil:
			findings = append(findings, lintSpec(file, location+".item", *spec.Item)...)
		case category.Item != nil && category.Item.Kind == schema.KindObject:
			findings = append(findings, finding{file: file, location: location, message: "list declares object items but no item block"})
		}
	}
	return findings
}

// classifySpec mirrors the loader's shape inference so the lint agrees with
// what compilation would do: an explicit type expression wins, otherwise
// nested fields make an object, an item block makes a list, choices make a
// choice, and everything else is a string.
func classifySpec(spec definition.FieldSpec) schema.Category {
	expr := strings.TrimSpace(spec.Type)
	if expr == "" {
		switch {
		case len(spec.Fields) > 0:
			return schema.Category{Kind: schema.KindObject}
		case spec.Item != nil:
			return schema.Category{Kind: schema.KindList}
		case len(spec.Choices) > 0:
			return schema.Category{Kind: schema.KindChoice}
		default:
			return schema.Category{Kind: schema.KindString}
		}
	}
	return schema.Classify(expr)
}
