package usecase

import (
	"context"
	"crypto/subtle"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"career-compass/internal/config"
	"career-compass/internal/engine"
	"career-compass/internal/pkg/jwt"
)

// Notifier publishes engine lifecycle events to connected clients.
type Notifier interface {
	Broadcast(event string, payload any)
}

// ReloadResult summarizes the catalogue snapshot after an admin reload.
type ReloadResult struct {
	Occupations       int     `json:"occupations"`
	Courses           int     `json:"courses"`
	Dimensions        int     `json:"dimensions"`
	SemanticAvailable bool    `json:"semantic_available"`
	ReloadMS          float64 `json:"reload_ms"`
}

type AdminUsecase interface {
	Login(ctx context.Context, email, password string) (string, error)
	Reload(ctx context.Context) (ReloadResult, error)
}

type Admin struct {
	cfg     config.AdminConfig
	jwt     jwt.Service
	engines *engine.Holder
	reload  func(ctx context.Context) *engine.Engine
	cache   SearchCache
	notify  Notifier
	logger  *log.Logger
}

func NewAdminUsecase(
	cfg config.AdminConfig,
	jwtSvc jwt.Service,
	engines *engine.Holder,
	reload func(ctx context.Context) *engine.Engine,
	cache SearchCache,
	notify Notifier,
	logger *log.Logger,
) *Admin {
	return &Admin{
		cfg:     cfg,
		jwt:     jwtSvc,
		engines: engines,
		reload:  reload,
		cache:   cache,
		notify:  notify,
		logger:  logger,
	}
}

// Login checks the configured admin credential and issues a session token.
// Email comparison is constant time alongside the bcrypt check so both
// failure modes cost the same.
func (u *Admin) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", ErrUnauthorized
	}
	if u.cfg.Email == "" || u.cfg.PasswordHash == "" {
		return "", ErrUnauthorized
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(u.cfg.Email))) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(u.cfg.PasswordHash), []byte(password)) == nil
	if !emailOK || !passOK {
		return "", ErrUnauthorized
	}

	token, err := u.jwt.GenerateAdminToken(email)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}

// Reload rebuilds the engine from the catalogue sources and swaps it in
// atomically. Requests in flight keep the old snapshot; new requests see the
// fresh one. The recommendation cache is invalidated afterwards.
func (u *Admin) Reload(ctx context.Context) (ReloadResult, error) {
	if u.reload == nil {
		return ReloadResult{}, ErrInternal
	}

	t0 := time.Now()
	e := u.reload(ctx)
	if !e.Ready() {
		return ReloadResult{}, ErrInternal
	}
	u.engines.Set(e)

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, recommendCachePattern); err != nil && u.logger != nil {
			u.logger.Printf("[Admin] cache invalidation failed: %v", err)
		}
	}

	result := ReloadResult{
		Occupations:       e.Occupations().Len(),
		Courses:           e.Courses().Len(),
		Dimensions:        len(e.Dimensions()),
		SemanticAvailable: e.SemanticAvailable(),
		ReloadMS:          float64(time.Since(t0).Milliseconds()),
	}

	if u.notify != nil {
		u.notify.Broadcast("catalogue.reloaded", result)
	}
	if u.logger != nil {
		u.logger.Printf("[Admin] catalogue reloaded | occupations=%d courses=%d in=%vms",
			result.Occupations, result.Courses, result.ReloadMS)
	}

	return result, nil
}
