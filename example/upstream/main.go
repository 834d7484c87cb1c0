package main

import (
	"cmp"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/basecamp/cookie-composer/pkg/cookie"
)

func upHandler(w http.ResponseWriter, r *http.Request) {
	slog.Info("Health request", "method", r.Method, "url", r.URL)
	w.WriteHeader(http.StatusOK)
}

func themeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := cookie.Context{
		Request:  cookie.HTTPRequest(r),
		Response: cookie.HTTPHeader(w.Header()),
	}

	theme := cmp.Or(r.URL.Query().Get("theme"), cookie.Parse(ctx)["theme"], "light")

	// The second write replaces the first, so only one theme header is sent.
	err := cookie.Set(ctx, "theme", "light", cookie.WithPath("/"))
	if err == nil {
		err = cookie.Set(ctx, "theme", theme, cookie.WithPath("/"), cookie.WithMaxAge(int((30 * 24 * time.Hour).Seconds())))
	}
	if err != nil {
		slog.Error("Unable to set theme cookie", "theme", theme, "error", err)
	}

	w.Header().Add("Content-Type", "text/html")
	fmt.Fprintf(w, "<body>Theme is <strong>%s</strong></body>\n", html.EscapeString(theme))

	slog.Info("Request", "theme", theme, "set_cookie", w.Header()["Set-Cookie"], "method", r.Method, "url", r.URL)
}

func signOutHandler(w http.ResponseWriter, r *http.Request) {
	ctx := cookie.Context{Response: cookie.HTTPHeader(w.Header())}
	err := cookie.Destroy(ctx, "theme", cookie.WithPath("/"))
	if err != nil {
		slog.Error("Unable to remove theme cookie", "error", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func main() {
	port := cmp.Or(os.Getenv("PORT"), "80")

	http.HandleFunc("/up", upHandler)
	http.HandleFunc("/sign_out", signOutHandler)
	http.HandleFunc("/", themeHandler)

	panic(http.ListenAndServe(":"+port, nil))
}
