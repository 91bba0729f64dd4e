package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aymerick/raymond"

	"github.com/carson-networks/statement-server/internal/statement"
)

const templateExtension = ".handlebars"

// TemplateNotFoundError reports a template name that does not resolve
// to a file in the template directory.
type TemplateNotFoundError struct {
	Name string
	Path string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found at %s", e.Name, e.Path)
}

// RenderingError reports a template read, parse, or execution failure.
type RenderingError struct {
	Name  string
	Cause error
}

func (e *RenderingError) Error() string {
	return fmt.Sprintf("rendering template %q: %v", e.Name, e.Cause)
}

func (e *RenderingError) Unwrap() error { return e.Cause }

// Renderer compiles named handlebars templates from a fixed directory.
type Renderer struct {
	templatesDir string
}

func NewRenderer(templatesDir string) *Renderer {
	return &Renderer{templatesDir: templatesDir}
}

// Render loads the named template, parses it with the statement helper
// registry, and executes it against ctx. The template is parsed fresh
// on every call so no engine state crosses requests.
func (r *Renderer) Render(name string, ctx statement.RenderContext) (string, error) {
	path := filepath.Join(r.templatesDir, name+templateExtension)

	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateNotFoundError{Name: name, Path: path}
		}
		return "", &RenderingError{Name: name, Cause: err}
	}

	tpl, err := raymond.Parse(string(source))
	if err != nil {
		return "", &RenderingError{Name: name, Cause: err}
	}
	registerHelpers(tpl)

	markup, err := tpl.Exec(map[string]any(ctx))
	if err != nil {
		return "", &RenderingError{Name: name, Cause: err}
	}

	return markup, nil
}
