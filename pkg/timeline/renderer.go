package timeline

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/folio/handler/payload"
	"github.com/folio/pkg/portal"
)

//go:embed templates/timeline.html templates/timeline.css templates/timeline.js
var templatesFS embed.FS

type Section struct {
	Eyebrow   string
	Title     string
	Highlight string
	CTALabel  string
	CTAHref   string
}

func DefaultSection() Section {
	return Section{
		Eyebrow:   "What I have done so far",
		Title:     "Work",
		Highlight: "Experience.",
		CTALabel:  "Let's Work Together",
		CTAHref:   "#contact",
	}
}

// Renderer turns experience records into the timeline markup. It is immutable
// once built and safe for concurrent use.
type Renderer struct {
	template *template.Template
	section  Section
	lang     string
	title    string
	styles   template.CSS
	script   template.JS
}

type Option func(*Renderer)

func WithSection(section Section) Option {
	return func(r *Renderer) {
		r.section = section
	}
}

func WithLang(locale string) Option {
	return func(r *Renderer) {
		r.lang = portal.HTMLLang(locale)
	}
}

func WithTitle(title string) Option {
	return func(r *Renderer) {
		if title != "" {
			r.title = title
		}
	}
}

type document struct {
	View
	Section Section
	Lang    string
	Title   string
	Styles  template.CSS
	Script  template.JS
}

func NewRenderer(opts ...Option) (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/timeline.html")
	if err != nil {
		return nil, fmt.Errorf("timeline: parsing template: %w", err)
	}

	styles, err := templatesFS.ReadFile("templates/timeline.css")
	if err != nil {
		return nil, fmt.Errorf("timeline: reading styles: %w", err)
	}

	script, err := templatesFS.ReadFile("templates/timeline.js")
	if err != nil {
		return nil, fmt.Errorf("timeline: reading script: %w", err)
	}

	r := &Renderer{
		template: tmpl,
		section:  DefaultSection(),
		lang:     portal.HTMLLang(""),
		title:    "Work Experience",
		styles:   template.CSS(styles),
		script:   template.JS(script),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// RenderSection writes the <section id="experience"> fragment only.
func (r *Renderer) RenderSection(w io.Writer, records []payload.ExperienceData) error {
	if err := r.template.ExecuteTemplate(w, "section", r.document(records)); err != nil {
		return fmt.Errorf("timeline: rendering section: %w", err)
	}

	return nil
}

// RenderPage writes a standalone HTML document around the section, carrying
// the stylesheet and the script that starts the entrance animations.
func (r *Renderer) RenderPage(w io.Writer, records []payload.ExperienceData) error {
	if err := r.template.ExecuteTemplate(w, "page", r.document(records)); err != nil {
		return fmt.Errorf("timeline: rendering page: %w", err)
	}

	return nil
}

func (r *Renderer) document(records []payload.ExperienceData) document {
	return document{
		View:    Build(records),
		Section: r.section,
		Lang:    r.lang,
		Title:   r.title,
		Styles:  r.styles,
		Script:  r.script,
	}
}
