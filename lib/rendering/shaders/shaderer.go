package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/fosdem/trianglix/lib/rendering"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	BuiltinVertex   = "default.vert"
	BuiltinFragment = "default.frag"
)

// Shaderer renders the built-in shader sources.
type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	GLSLVersion      string
	PositionLocation int
	ColourLocation   int
}

func DefaultShaderData() *ShaderData {
	return &ShaderData{
		GLSLVersion:      "330 core",
		PositionLocation: rendering.PositionLocation,
		ColourLocation:   rendering.ColourLocation,
	}
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %w", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
