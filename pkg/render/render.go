/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/jcriveros/devaci/pkg/errors"
)

// Renderer renders templates into class-keyed documents.
type Renderer struct {
	funcs template.FuncMap
}

// NewRenderer creates a Renderer with the standard function set.
func NewRenderer() *Renderer {
	return &Renderer{funcs: Funcs()}
}

// Render renders template text under the given name with vars as the
// template context and decodes the result.
func (r *Renderer) Render(name, text string, vars map[string]any) (map[string]any, error) {
	tmpl, err := template.New(name).Funcs(r.funcs).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, "template parse failed", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, "template execution failed", err)
	}
	// Undefined variables render as empty strings so the guards drop them,
	// instead of the "<no value>" marker reaching the controller.
	out := strings.ReplaceAll(buf.String(), "<no value>", "")
	doc, err := DecodeDocument([]byte(out))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, "rendered output is not valid YAML", err)
	}
	return doc, nil
}

// RenderFile renders the template at path. The template name in error
// messages is the file's base name, matching how runs are logged.
func (r *Renderer) RenderFile(path string, vars map[string]any) (map[string]any, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, "cannot read template", err)
	}
	return r.Render(filepath.Base(path), string(text), vars)
}

// LoadVars reads a YAML variables file into a template context. An empty
// path yields an empty context.
func LoadVars(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	vars := map[string]any{}
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, err
	}
	return vars, nil
}
