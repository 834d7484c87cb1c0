package server

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/basecamp/cookie-composer/pkg/cookie"
)

//go:embed pages
var pages embed.FS

// SampleCookies are written by the create page when no cookies are given.
var SampleCookies = []Pair{
	{Name: "one", Value: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_6) AppleWebKit/537.36 (KHTML, like Gecko)"},
	{Name: "two", Value: "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0"},
	{Name: "three", Value: "hey! this one's simple :)"},
}

type Pair struct {
	Name  string
	Value string
}

type Pages struct {
	template *template.Template
	defaults CookieDefaults
	mux      *http.ServeMux
}

func NewPages(defaults CookieDefaults) *Pages {
	p := &Pages{
		template: template.Must(template.ParseFS(pages, "pages/*.html")),
		defaults: defaults,
		mux:      http.NewServeMux(),
	}

	p.mux.HandleFunc("GET /{$}", p.list)
	p.mux.HandleFunc("GET /create", p.create)
	p.mux.HandleFunc("GET /remove", p.remove)
	p.mux.HandleFunc("GET /up", p.up)

	return p
}

func (p *Pages) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mux.ServeHTTP(w, r)
}

// Private

func (p *Pages) list(w http.ResponseWriter, r *http.Request) {
	cookies := cookie.Parse(CookieContext(w, r))
	p.render(w, "index.html", sortedPairs(cookies))
}

func (p *Pages) create(w http.ResponseWriter, r *http.Request) {
	pairs := SampleCookies
	if query := r.URL.Query(); len(query) > 0 {
		pairs = []Pair{}
		for name := range query {
			pairs = append(pairs, Pair{Name: name, Value: query.Get(name)})
		}
		slices.SortFunc(pairs, comparePairs)
	}

	for _, pair := range pairs {
		err := SetCookie(w, r, pair.Name, pair.Value, p.defaults.WriteOptions()...)
		if err != nil {
			p.renderError(w, r, err)
			return
		}
	}

	p.render(w, "create.html", pairs)
}

func (p *Pages) remove(w http.ResponseWriter, r *http.Request) {
	pairs := sortedPairs(cookie.Parse(CookieContext(w, r)))

	for _, pair := range pairs {
		err := DestroyCookie(w, r, pair.Name, p.defaults.SlotOptions()...)
		if err != nil {
			p.renderError(w, r, err)
			return
		}
	}

	p.render(w, "remove.html", pairs)
}

func (p *Pages) up(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (p *Pages) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := p.template.ExecuteTemplate(w, name, data)
	if err != nil {
		slog.Error("Failed to render page", "name", name, "error", err)
	}
}

func (p *Pages) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, cookie.ErrInvalidName) {
		status = http.StatusBadRequest
	}
	SetErrorResponse(w, r, status, struct{ Message string }{err.Error()})
}

func sortedPairs(cookies map[string]string) []Pair {
	pairs := make([]Pair, 0, len(cookies))
	for name, value := range cookies {
		pairs = append(pairs, Pair{Name: name, Value: value})
	}
	slices.SortFunc(pairs, comparePairs)
	return pairs
}

func comparePairs(a, b Pair) int {
	return strings.Compare(a.Name, b.Name)
}
