package scaffold

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.ts.tmpl"))

// TemplateValues are the tunable parts of the generated files.
type TemplateValues struct {
	TypeScript string
	TSNode     string
	NodeTypes  string
	Target     string
	Module     string
}

// DefaultTemplateValues returns the versions and compiler settings used when
// settings leave them empty.
func DefaultTemplateValues() TemplateValues {
	return TemplateValues{
		TypeScript: "^5.0.0",
		TSNode:     "^10.9.0",
		NodeTypes:  "^20.0.0",
		Target:     "ES2020",
		Module:     "commonjs",
	}
}

// withDefaults fills empty fields from DefaultTemplateValues.
func (v TemplateValues) withDefaults() TemplateValues {
	d := DefaultTemplateValues()
	if v.TypeScript == "" {
		v.TypeScript = d.TypeScript
	}
	if v.TSNode == "" {
		v.TSNode = d.TSNode
	}
	if v.NodeTypes == "" {
		v.NodeTypes = d.NodeTypes
	}
	if v.Target == "" {
		v.Target = d.Target
	}
	if v.Module == "" {
		v.Module = d.Module
	}
	return v
}

type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Scripts         packageScripts    `json:"scripts"`
	Keywords        []string          `json:"keywords"`
	Author          string            `json:"author"`
	License         string            `json:"license"`
	DevDependencies map[string]string `json:"devDependencies"`
}

type packageScripts struct {
	Build string `json:"build"`
	Start string `json:"start"`
	Dev   string `json:"dev"`
	Test  string `json:"test"`
}

type tsconfigJSON struct {
	CompilerOptions compilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

type compilerOptions struct {
	Target                           string `json:"target"`
	Module                           string `json:"module"`
	OutDir                           string `json:"outDir"`
	RootDir                          string `json:"rootDir"`
	Strict                           bool   `json:"strict"`
	EsModuleInterop                  bool   `json:"esModuleInterop"`
	SkipLibCheck                     bool   `json:"skipLibCheck"`
	ForceConsistentCasingInFileNames bool   `json:"forceConsistentCasingInFileNames"`
}

// RenderPackageJSON renders package.json for pkgName.
func RenderPackageJSON(pkgName string, v TemplateValues) ([]byte, error) {
	v = v.withDefaults()
	return marshalJSON(packageJSON{
		Name:        pkgName,
		Version:     "1.0.0",
		Description: "",
		Main:        "dist/index.js",
		Scripts: packageScripts{
			Build: "tsc",
			Start: "node dist/index.js",
			Dev:   "ts-node src/index.ts",
			Test:  `echo "Error: no test specified" && exit 1`,
		},
		Keywords: []string{},
		Author:   "",
		License:  "ISC",
		DevDependencies: map[string]string{
			"@types/node": v.NodeTypes,
			"ts-node":     v.TSNode,
			"typescript":  v.TypeScript,
		},
	})
}

// RenderTSConfig renders tsconfig.json.
func RenderTSConfig(v TemplateValues) ([]byte, error) {
	v = v.withDefaults()
	return marshalJSON(tsconfigJSON{
		CompilerOptions: compilerOptions{
			Target:                           v.Target,
			Module:                           v.Module,
			OutDir:                           "./dist",
			RootDir:                          "./src",
			Strict:                           true,
			EsModuleInterop:                  true,
			SkipLibCheck:                     true,
			ForceConsistentCasingInFileNames: true,
		},
		Include: []string{"src/**/*"},
		Exclude: []string{"node_modules", "tests"},
	})
}

// RenderIndex renders src/index.ts.
func RenderIndex(pkgName string) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, struct{ PackageName string }{pkgName}); err != nil {
		return nil, fmt.Errorf("rendering index.ts: %w", err)
	}
	return buf.Bytes(), nil
}

// marshalJSON indents with two spaces, keeps "&&" readable and ends with a
// newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
