package usecase

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"career-compass/internal/config"
	"career-compass/internal/engine"
	"career-compass/internal/pkg/jwt"
)

type fakeNotifier struct {
	events   []string
	payloads []any
}

func (f *fakeNotifier) Broadcast(event string, payload any) {
	f.events = append(f.events, event)
	f.payloads = append(f.payloads, payload)
}

func adminFixture(t *testing.T, password string) (config.AdminConfig, jwt.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	cfg := config.AdminConfig{Email: "admin@careercompass.co.ke", PasswordHash: string(hash)}
	return cfg, jwt.NewHMACService("test-secret", time.Hour)
}

func TestAdminLogin(t *testing.T) {
	cfg, jwtSvc := adminFixture(t, "opensesame")
	u := NewAdminUsecase(cfg, jwtSvc, &engine.Holder{}, nil, nil, nil, testLogger())

	token, err := u.Login(context.Background(), "Admin@CareerCompass.co.ke", "opensesame")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := jwtSvc.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Email != "admin@careercompass.co.ke" {
		t.Errorf("claims email = %q", claims.Email)
	}
	if claims.TokenType != jwt.TokenTypeAdmin {
		t.Errorf("token type = %q, want %q", claims.TokenType, jwt.TokenTypeAdmin)
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	cfg, jwtSvc := adminFixture(t, "opensesame")
	u := NewAdminUsecase(cfg, jwtSvc, &engine.Holder{}, nil, nil, nil, testLogger())

	cases := []struct {
		name, email, password string
	}{
		{"wrong password", cfg.Email, "wrong"},
		{"wrong email", "someone@else.com", "opensesame"},
		{"empty email", "", "opensesame"},
		{"empty password", cfg.Email, ""},
	}
	for _, c := range cases {
		if _, err := u.Login(context.Background(), c.email, c.password); err != ErrUnauthorized {
			t.Errorf("%s: err = %v, want ErrUnauthorized", c.name, err)
		}
	}
}

func TestAdminLoginRejectsUnconfiguredAccount(t *testing.T) {
	_, jwtSvc := adminFixture(t, "opensesame")
	u := NewAdminUsecase(config.AdminConfig{}, jwtSvc, &engine.Holder{}, nil, nil, nil, testLogger())

	if _, err := u.Login(context.Background(), "admin@careercompass.co.ke", "opensesame"); err != ErrUnauthorized {
		t.Fatalf("err = %v, want ErrUnauthorized when no admin is configured", err)
	}
}

func TestAdminReloadSwapsEngineAndInvalidatesCache(t *testing.T) {
	cfg, jwtSvc := adminFixture(t, "opensesame")
	holder := &engine.Holder{}
	cache := newFakeCache()
	cache.store["recommend:full:stale"] = []byte("{}")
	notify := &fakeNotifier{}

	loader := func(ctx context.Context) *engine.Engine {
		return engine.Load(ctx, engine.LoadParams{})
	}
	u := NewAdminUsecase(cfg, jwtSvc, holder, loader, cache, notify, testLogger())

	result, err := u.Reload(context.Background())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	e := holder.Get()
	if !e.Ready() {
		t.Fatal("holder must carry the fresh engine")
	}
	if result.Occupations != e.Occupations().Len() || result.Courses != e.Courses().Len() {
		t.Errorf("result counts %+v do not match the engine", result)
	}
	if result.Dimensions == 0 {
		t.Error("dimension count must be reported")
	}

	if len(cache.patterns) != 1 || cache.patterns[0] != "recommend:*" {
		t.Errorf("cache patterns = %v, want one recommend:* invalidation", cache.patterns)
	}
	if len(notify.events) != 1 || notify.events[0] != "catalogue.reloaded" {
		t.Errorf("events = %v, want catalogue.reloaded", notify.events)
	}
}

func TestAdminReloadWithoutLoader(t *testing.T) {
	cfg, jwtSvc := adminFixture(t, "opensesame")
	u := NewAdminUsecase(cfg, jwtSvc, &engine.Holder{}, nil, nil, nil, testLogger())

	if _, err := u.Reload(context.Background()); err != ErrInternal {
		t.Fatalf("err = %v, want ErrInternal when no loader is wired", err)
	}
}

func TestAdminReloadFailedLoadKeepsOldEngine(t *testing.T) {
	cfg, jwtSvc := adminFixture(t, "opensesame")
	holder := readyHolder(t)
	old := holder.Get()

	loader := func(ctx context.Context) *engine.Engine { return nil }
	u := NewAdminUsecase(cfg, jwtSvc, holder, loader, nil, nil, testLogger())

	if _, err := u.Reload(context.Background()); err != ErrInternal {
		t.Fatalf("err = %v, want ErrInternal for a failed load", err)
	}
	if holder.Get() != old {
		t.Error("a failed reload must not replace the running engine")
	}
}
