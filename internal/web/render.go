package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/ops"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/source"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title     string
	AppName   string
	Version   string
	Nav       string
	Mode      source.Mode
	User      *model.User
	Workspace *model.Workspace
	Toasts    []ops.Notification
}

type DashboardPageData struct {
	PageData
	Dashboard ops.Dashboard
	NewLeads  int
}

type WorkspacesPageData struct {
	PageData
	Workspaces []model.Workspace
}

type ProjectsPageData struct {
	PageData
	Projects []model.Project
}

type ProjectPageData struct {
	PageData
	Project model.ProjectDetails
}

type AgencyPageData struct {
	PageData
	Leads     []model.Lead
	Clients   []model.Client
	Proposals []model.Proposal
	Calendar  []model.CalendarItem
}

// DocumentPageData renders one markdown document with its outline.
type DocumentPageData struct {
	PageData
	Heading      string
	Subtitle     string
	Tags         []string
	RenderedHTML template.HTML
	Outline      []OutlineEntry
}

type KnowledgePageData struct {
	PageData
	Articles []model.Article
	Tags     []string
	Query    string
	Selected []string
}

type OrionPageData struct {
	PageData
	Session   *model.OrionSession
	Artifacts []model.Artifact
	Types     []model.ArtifactType
}

type IntegrationsPageData struct {
	PageData
	Connected bool
	Repos     []model.Repo
}

type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
	md        goldmark.Markdown
	log       zerolog.Logger
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string, logger zerolog.Logger) *Renderer {
	funcMap := template.FuncMap{
		"formatDate": formatDate,
		"join":       strings.Join,
		"contains": func(list []string, s string) bool {
			for _, v := range list {
				if v == s {
					return true
				}
			}
			return false
		},
		"pretty": prettyJSON,
	}

	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"dashboard":    "dashboard.html",
		"workspaces":   "workspaces.html",
		"projects":     "projects.html",
		"project":      "project.html",
		"agency":       "agency.html",
		"document":     "document.html",
		"knowledge":    "knowledge.html",
		"orion":        "orion.html",
		"integrations": "integrations.html",
		"error":        "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		log: logger,
	}
}

func (r *Renderer) renderPage(w http.ResponseWriter, name string, data any) {
	r.renderPageStatus(w, http.StatusOK, name, data)
}

func (r *Renderer) renderPageStatus(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		r.log.Error().Str("template", name).Msg("template not found")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.log.Error().Err(err).Str("template", name).Msg("template execution error")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error response with content negotiation.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, page PageData, err error) {
	aErr, ok := errors.As(err)
	if !ok {
		aErr = errors.NewInternal(err)
	}
	status := aErr.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	if strings.Contains(req.Header.Get("Accept"), "application/json") {
		renderJSON(w, status, map[string]any{
			"error": map[string]any{
				"code":    string(aErr.Code),
				"message": aErr.Message,
				"status":  status,
			},
		})
		return
	}

	page.Title = fmt.Sprintf("Error %d", status)
	r.renderPageStatus(w, status, "error", ErrorPageData{
		PageData:   page,
		StatusCode: status,
		Message:    aErr.Message,
	})
}

func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// OutlineEntry is one heading of a rendered document.
type OutlineEntry struct {
	Level int
	Text  string
	ID    string
}

// renderMarkdown converts markdown to HTML and collects its headings.
func (r *Renderer) renderMarkdown(md string) (template.HTML, []OutlineEntry) {
	src := []byte(md)
	doc := r.md.Parser().Parse(text.NewReader(src))

	var outline []OutlineEntry
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		e := OutlineEntry{Level: h.Level, Text: headingText(h, src)}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				e.ID = string(b)
			}
		}
		outline = append(outline, e)
		return ast.WalkSkipChildren, nil
	})

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return template.HTML(template.HTMLEscapeString(md)), outline
	}
	return template.HTML(buf.String()), outline
}

func headingText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// formatDate shows RFC 3339 timestamps as "2006-01-02 15:04" and leaves
// anything else as is.
func formatDate(s string) string {
	t, err := time.Parse(model.TimeFormat, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
