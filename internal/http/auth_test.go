package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"magnetlog/internal/repos"
)

func registerForm(name, email, pass string) url.Values {
	return url.Values{"name": {name}, "email": {email}, "password": {pass}}
}

func loginForm(email, pass string) url.Values {
	return url.Values{"email": {email}, "password": {pass}}
}

func TestRegisterStoresHashedPasswordAndLowercasedEmail(t *testing.T) {
	app, db := newTestApp(t)
	b := newBrowser(t, app)

	resp := b.post("/register", "/register", registerForm("Mia", "Mia@Example.com", "hunter2secret"))
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on register, got %d", resp.StatusCode)
	}

	var email, hash string
	row := db.QueryRow(`SELECT email, password_hash FROM users`)
	if err := row.Scan(&email, &hash); err != nil {
		t.Fatalf("scan user: %v", err)
	}
	if email != "mia@example.com" {
		t.Fatalf("stored email not lowercased: %q", email)
	}
	if strings.Contains(hash, "hunter2secret") || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("password not bcrypt-hashed: %q", hash)
	}
}

func TestRegisterDuplicateEmailIsCaseInsensitive(t *testing.T) {
	app, _ := newTestApp(t)

	b1 := newBrowser(t, app)
	resp := b1.post("/register", "/register", registerForm("Mia", "mia@example.com", "hunter2secret"))
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("first register should redirect, got %d", resp.StatusCode)
	}

	b2 := newBrowser(t, app)
	resp = b2.post("/register", "/register", registerForm("Other Mia", "MIA@EXAMPLE.COM", "different9pass"))
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("case-differing duplicate should 409, got %d", resp.StatusCode)
	}
	if !strings.Contains(bodyOf(t, resp), "already exists") {
		t.Fatal("duplicate notice missing from re-rendered form")
	}
}

func TestRegisterMissingFieldReRenders(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)

	resp := b.post("/register", "/register", registerForm("Mia", "", "hunter2secret"))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing email should 400, got %d", resp.StatusCode)
	}
}

// Unknown email and wrong password must be indistinguishable.
func TestLoginFailuresDoNotLeakEnumeration(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)
	b.post("/register", "/register", registerForm("Mia", "mia@example.com", "hunter2secret"))
	b.get("/logout")

	wrongPass := b.post("/login", "/login", loginForm("mia@example.com", "not-the-pass"))
	unknown := b.post("/login", "/login", loginForm("nobody@example.com", "whatever123"))

	if wrongPass.StatusCode != http.StatusUnauthorized || unknown.StatusCode != http.StatusUnauthorized {
		t.Fatalf("both failures should 401, got %d and %d", wrongPass.StatusCode, unknown.StatusCode)
	}
	msg := "Incorrect email and/or password"
	if !strings.Contains(bodyOf(t, wrongPass), msg) || !strings.Contains(bodyOf(t, unknown), msg) {
		t.Fatal("failure notices differ between unknown user and wrong password")
	}
}

// Login matches the stored email exactly, so the mixed-case spelling that was
// accepted at registration does not log in.
func TestLoginRequiresExactEmailMatch(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)
	b.post("/register", "/register", registerForm("Mia", "Mia@Example.com", "hunter2secret"))
	b.get("/logout")

	resp := b.post("/login", "/login", loginForm("Mia@Example.com", "hunter2secret"))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("mixed-case login should fail exact match, got %d", resp.StatusCode)
	}

	resp = b.post("/login", "/login", loginForm("mia@example.com", "hunter2secret"))
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("lowercased login should succeed, got %d", resp.StatusCode)
	}
}

// Registration binds the session to the email exactly as submitted; login
// binds it lowercased.
func TestSessionEmailCasingDiffersBetweenRegisterAndLogin(t *testing.T) {
	app, db := newTestApp(t)
	userRepo := repos.NewUserRepo(db)
	b := newBrowser(t, app)

	b.post("/register", "/register", registerForm("Mia", "Mia@Example.com", "hunter2secret"))
	got, err := userRepo.SessionEmail(b.sid())
	if err != nil {
		t.Fatal(err)
	}
	if got != "Mia@Example.com" {
		t.Fatalf("session after register should keep raw casing, got %q", got)
	}

	b.get("/logout")
	b.post("/login", "/login", loginForm("mia@example.com", "hunter2secret"))
	got, err = userRepo.SessionEmail(b.sid())
	if err != nil {
		t.Fatal(err)
	}
	if got != "mia@example.com" {
		t.Fatalf("session after login should be lowercased, got %q", got)
	}
}

func TestLogoutClearsSessionAndProfileStopsServingPriorUser(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)
	b.post("/register", "/register", registerForm("Mia", "mia@example.com", "hunter2secret"))

	resp := b.get("/profile/mia@example.com")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile while logged in should 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(bodyOf(t, resp), "mia@example.com") {
		t.Fatal("profile should show the session user's email")
	}

	resp = b.get("/logout")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("logout should redirect, got %d", resp.StatusCode)
	}

	resp = b.get("/profile/mia@example.com")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("profile after logout should redirect to login, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

// Logging out twice is a no-op success, not an error.
func TestLogoutWithoutSessionIsNoop(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)

	resp := b.get("/logout")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("anonymous logout should still redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestProfileForOtherEmailRedirectsToOwn(t *testing.T) {
	app, _ := newTestApp(t)
	b := newBrowser(t, app)
	b.post("/register", "/register", registerForm("Mia", "mia@example.com", "hunter2secret"))

	resp := b.get("/profile/intruder@example.com")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("foreign profile should redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); !strings.Contains(loc, "mia@example.com") {
		t.Fatalf("expected redirect to own profile, got %q", loc)
	}
}
