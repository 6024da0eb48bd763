package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"magnetlog/internal/http/flash"
	"magnetlog/internal/http/handlers"
	"magnetlog/internal/repos"
	"magnetlog/internal/services"
)

// newTestApp wires the real handler stack against an in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(flash.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	deps := handlers.NewDeps(db, authSvc)
	requireUser := handlers.RequireUser(authSvc)

	app.Get("/", deps.HomeHandler.Home)
	app.Get("/get_catches", deps.CatchHandler.List)
	app.Get("/register", deps.AuthHandler.RegisterForm)
	app.Post("/register", deps.AuthHandler.Register)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", deps.AuthHandler.Login)
	app.Get("/logout", deps.AuthHandler.Logout)
	app.Get("/profile/:email", requireUser, deps.ProfileHandler.View)
	app.Get("/add_catch", requireUser, deps.CatchHandler.AddForm)
	app.Post("/add_catch", requireUser, deps.CatchHandler.Add)
	app.Get("/edit_catch/:catch_id", requireUser, deps.CatchHandler.EditForm)
	app.Post("/edit_catch/:catch_id", requireUser, deps.CatchHandler.Edit)

	return app, db
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// browser is a minimal cookie jar for driving form flows through app.Test.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func newBrowser(t *testing.T, app *fiber.App) *browser {
	return &browser{t: t, app: app, cookies: map[string]string{}}
}

func (b *browser) do(req *http.Request) *http.Response {
	b.t.Helper()
	// Raw header: AddCookie would quote values containing spaces (flash notices)
	pairs := make([]string, 0, len(b.cookies))
	for name, val := range b.cookies {
		pairs = append(pairs, name+"="+val)
	}
	if len(pairs) > 0 {
		req.Header.Set("Cookie", strings.Join(pairs, "; "))
	}
	resp, err := b.app.Test(req)
	if err != nil {
		b.t.Fatal(err)
	}
	for _, c := range resp.Cookies() {
		// Expired or blanked cookies clear the jar entry
		if c.Value == "" || c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c.Value
	}
	return resp
}

func (b *browser) get(path string) *http.Response {
	return b.do(httptest.NewRequest("GET", path, nil))
}

// post fetches a CSRF token via formPath, then submits the form.
func (b *browser) post(formPath, path string, form url.Values) *http.Response {
	b.t.Helper()
	_ = b.get(formPath)
	tok := b.cookies["csrf_"]
	if tok == "" {
		b.t.Fatal("csrf token missing")
	}
	form.Set("csrf", tok)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) sid() string { return b.cookies["sid"] }

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}
