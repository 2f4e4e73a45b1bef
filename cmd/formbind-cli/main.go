// Command formbind-cli drives the form pipeline from the terminal: load a
// form source, then render it, decode a submission against it, mint a blank
// list item, or print its default value tree.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-formbind/pkg/defaults"
	pkgopenapi "github.com/goliatone/go-formbind/pkg/openapi"
	"github.com/goliatone/go-formbind/pkg/orchestrator"
	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/renderers/tui"
)

func main() {
	definition := flag.String("definition", "", "form definition document (YAML or JSON)")
	openapiPath := flag.String("openapi", "", "OpenAPI document path")
	component := flag.String("component", "", "OpenAPI component schema to convert")
	operation := flag.String("operation", "", "OpenAPI operation ID to convert")
	form := flag.String("form", "", "form name (defaults to the only registered form)")
	mode := flag.String("mode", "render", "render | decode | blank-item | defaults")
	renderer := flag.String("renderer", "vanilla", "renderer for render mode: vanilla | tui")
	method := flag.String("method", "POST", "submit method for rendered forms")
	action := flag.String("action", "", "submit URL for rendered forms")
	output := flag.String("output", "", "output file (stdout if empty)")
	body := flag.String("body", "", "submission body file, '-' for stdin (decode mode)")
	itemPath := flag.String("path", "", "dot-separated list path, e.g. chapters or chapters.0.tags (blank-item mode)")
	flag.Parse()

	ctx := context.Background()

	orch, err := orchestrator.New(sourceOptions(*definition, *openapiPath, *component, *operation)...)
	if err != nil {
		log.Fatalf("configure forms: %v", err)
	}
	formName := resolveFormName(orch, *form)

	switch *mode {
	case "render":
		runRender(ctx, orch, formName, *renderer, *method, *action, *output)
	case "decode":
		runDecode(orch, formName, *body, *output)
	case "blank-item":
		runBlankItem(orch, formName, *itemPath, *output)
	case "defaults":
		runDefaults(orch, formName, *output)
	default:
		log.Fatalf("unknown mode %q (want render, decode, blank-item, or defaults)", *mode)
	}
}

// sourceOptions maps the source flags onto orchestrator options. Exactly one
// source is required.
func sourceOptions(definition, openapiPath, component, operation string) []orchestrator.Option {
	switch {
	case definition != "" && openapiPath != "":
		log.Fatal("-definition and -openapi are mutually exclusive")
	case definition != "":
		return []orchestrator.Option{orchestrator.WithDefinitionFile(definition)}
	case openapiPath != "":
		data, err := os.ReadFile(openapiPath)
		if err != nil {
			log.Fatalf("read %s: %v", openapiPath, err)
		}
		doc, err := pkgopenapi.DocumentFromData(openapiPath, data)
		if err != nil {
			log.Fatalf("load %s: %v", openapiPath, err)
		}
		switch {
		case component != "":
			return []orchestrator.Option{orchestrator.WithOpenAPIComponents(doc, component)}
		case operation != "":
			return []orchestrator.Option{orchestrator.WithOpenAPIOperations(doc, operation)}
		default:
			log.Fatal("-openapi needs -component or -operation")
		}
	default:
		log.Fatal("a form source is required: -definition or -openapi")
	}
	return nil
}

func resolveFormName(orch *orchestrator.Orchestrator, name string) string {
	if name != "" {
		return name
	}
	forms := orch.Forms()
	if len(forms) == 1 {
		return forms[0]
	}
	log.Fatalf("-form is required (registered: %s)", strings.Join(forms, ", "))
	return ""
}

func runRender(ctx context.Context, orch *orchestrator.Orchestrator, formName, rendererName, method, action, output string) {
	// The TUI renderer reconstructs against the schema it prompts for, so it
	// is built per form and swapped in through its own registry.
	if rendererName == "tui" {
		s, ok := orch.Schema(formName)
		if !ok {
			log.Fatalf("form %q not found", formName)
		}
		session, err := tui.New(tui.WithSchema(s))
		if err != nil {
			log.Fatalf("configure tui: %v", err)
		}
		registry := render.NewRegistry()
		registry.MustRegister(session)
		orch, err = orchestrator.New(
			orchestrator.WithSchemas(s),
			orchestrator.WithRegistry(registry),
			orchestrator.WithDefaultRenderer("tui"),
		)
		if err != nil {
			log.Fatalf("configure tui pipeline: %v", err)
		}
	}

	out, err := orch.Render(ctx, orchestrator.Request{
		Form:     formName,
		Renderer: rendererName,
		Method:   method,
		Action:   action,
	})
	if err != nil {
		log.Fatalf("render %s: %v", formName, err)
	}
	writeOutput(out, output)
}

func runDecode(orch *orchestrator.Orchestrator, formName, bodyPath, output string) {
	body, err := readBody(bodyPath)
	if err != nil {
		log.Fatalf("read submission: %v", err)
	}

	tree, err := orch.Decode(orchestrator.Request{Form: formName, Body: body})
	if err != nil {
		log.Fatalf("decode %s: %v", formName, err)
	}
	writeJSON(tree, output)
}

func runBlankItem(orch *orchestrator.Orchestrator, formName, itemPath, output string) {
	if strings.TrimSpace(itemPath) == "" {
		log.Fatal("-path is required for blank-item mode")
	}

	item, token, err := orch.BlankItem(formName, strings.Split(itemPath, "."))
	if err != nil {
		log.Fatalf("blank item for %s: %v", itemPath, err)
	}
	writeJSON(map[string]any{"token": token, "item": item}, output)
}

func runDefaults(orch *orchestrator.Orchestrator, formName, output string) {
	s, ok := orch.Schema(formName)
	if !ok {
		log.Fatalf("form %q not found", formName)
	}
	writeJSON(defaults.New().Tree(s), output)
}

func readBody(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func writeJSON(value any, output string) {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Fatalf("marshal output: %v", err)
	}
	writeOutput(append(payload, '\n'), output)
}

func writeOutput(data []byte, output string) {
	if output == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", output, err)
	}
	fmt.Printf("written to %s\n", output)
}
