package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"crm/config"
	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      bcrypt.MinCost,
			AccessTokenTTL:  30 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			StateTokenTTL:   10 * time.Minute,
		},
		Scraper: &config.ScraperConfig{DefaultMaxReviews: 50},
	}
	cfg.SecretKey.Access = "test-secret"

	return cfg
}

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	tokens, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	return tokens
}

// memStore is an in-memory database. Execute serializes transactions and
// restores the previous state when fn fails.
type memStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*entity.User
	tokens  map[string]*entity.RefreshToken
	reviews []*entity.Review
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[uuid.UUID]*entity.User),
		tokens: make(map[string]*entity.RefreshToken),
	}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make(map[uuid.UUID]*entity.User, len(s.users))
	for id, u := range s.users {
		users[id] = cloneUser(u)
	}
	tokens := make(map[string]*entity.RefreshToken, len(s.tokens))
	for hash, tok := range s.tokens {
		tokens[hash] = tok
	}
	reviews := append([]*entity.Review(nil), s.reviews...)

	if err := fn(memFactory{s}); err != nil {
		s.users, s.tokens, s.reviews = users, tokens, reviews

		return err
	}

	return nil
}

func (s *memStore) userCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users)
}

func (s *memStore) user(id uuid.UUID) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneUser(s.users[id])
}

func (s *memStore) tokenCount(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, tok := range s.tokens {
		if tok.UserID == userID {
			n++
		}
	}

	return n
}

func (s *memStore) putToken(tok *entity.RefreshToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[tok.TokenHash] = tok
}

func (s *memStore) putUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.users[u.ID] = cloneUser(u)
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u

	return &c
}

type memFactory struct{ s *memStore }

func (f memFactory) NewUserRepository() repository.UserRepository {
	return &memUserRepo{s: f.s}
}

func (f memFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return &memTokenRepo{s: f.s}
}

func (f memFactory) NewReviewRepository() repository.ReviewRepository {
	return &memReviewRepo{s: f.s}
}

// The repos below run inside Execute, which already holds the store lock.

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Active && match(u) {
			return cloneUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)

	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *memUserRepo) UsernameExists(_ context.Context, username string, excludeID uuid.UUID) (bool, error) {
	_, err := r.find(func(u *entity.User) bool { return u.Username == username && u.ID != excludeID })

	return err == nil, nil
}

func (r *memUserRepo) checkUnique(user *entity.User) error {
	for _, u := range r.s.users {
		if !u.Active || u.ID == user.ID {
			continue
		}
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}

	return nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = entity.NormalizeEmail(user.Email)
	if err := r.checkUnique(user); err != nil {
		return err
	}

	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = cloneUser(user)

	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	existing, ok := r.s.users[user.ID]
	if !ok || !existing.Active {
		return repository.ErrUserNotFound
	}
	if err := r.checkUnique(user); err != nil {
		return err
	}

	stored := cloneUser(user)
	stored.PasswordHash = existing.PasswordHash
	stored.UpdatedAt = time.Now().UTC()
	user.UpdatedAt = stored.UpdatedAt
	r.s.users[user.ID] = stored

	return nil
}

func (r *memUserRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, passwordHash string) error {
	existing, ok := r.s.users[id]
	if !ok || !existing.Active {
		return repository.ErrUserNotFound
	}

	hash := passwordHash
	existing.PasswordHash = &hash
	existing.UpdatedAt = time.Now().UTC()

	return nil
}

func (r *memUserRepo) SoftDelete(_ context.Context, user *entity.User) error {
	existing, ok := r.s.users[user.ID]
	if !ok || !existing.Active {
		return repository.ErrUserNotFound
	}

	user.Tombstone(time.Now().UTC())
	r.s.users[user.ID] = cloneUser(user)

	return nil
}

type memTokenRepo struct{ s *memStore }

func (r *memTokenRepo) Create(_ context.Context, token *entity.RefreshToken) error {
	if _, ok := r.s.tokens[token.TokenHash]; ok {
		return repository.ErrDuplicateRefreshToken
	}
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now().UTC()
	r.s.tokens[token.TokenHash] = token

	return nil
}

func (r *memTokenRepo) FindValidByHash(_ context.Context, tokenHash string, now time.Time) (*entity.RefreshToken, error) {
	tok, ok := r.s.tokens[tokenHash]
	if !ok || !tok.IsValidAt(now) {
		return nil, repository.ErrRefreshTokenNotFound
	}

	return tok, nil
}

func (r *memTokenRepo) ConsumeValidByHash(ctx context.Context, tokenHash string, now time.Time) (*entity.RefreshToken, error) {
	tok, err := r.FindValidByHash(ctx, tokenHash, now)
	if err != nil {
		return nil, err
	}
	delete(r.s.tokens, tokenHash)

	return tok, nil
}

func (r *memTokenRepo) DeleteByHash(_ context.Context, tokenHash string) (bool, error) {
	_, ok := r.s.tokens[tokenHash]
	delete(r.s.tokens, tokenHash)

	return ok, nil
}

func (r *memTokenRepo) DeleteAllByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for hash, tok := range r.s.tokens {
		if tok.UserID == userID {
			delete(r.s.tokens, hash)
			n++
		}
	}

	return n, nil
}

func (r *memTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for hash, tok := range r.s.tokens {
		if !tok.ExpiresAt.After(now) {
			delete(r.s.tokens, hash)
			n++
		}
	}

	return n, nil
}

type memReviewRepo struct{ s *memStore }

func (r *memReviewRepo) CreateBatch(_ context.Context, reviews []*entity.Review) error {
	r.s.reviews = append(r.s.reviews, reviews...)

	return nil
}

func (r *memReviewRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, review := range r.s.reviews {
		if review.UserID == userID {
			out = append(out, review)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (r *memReviewRepo) CountByRating(_ context.Context, userID uuid.UUID) (map[int]int64, error) {
	counts := make(map[int]int64)
	for _, review := range r.s.reviews {
		if review.UserID == userID {
			counts[review.Rating]++
		}
	}

	return counts, nil
}

func (r *memReviewRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	kept := r.s.reviews[:0:0]
	var n int64
	for _, review := range r.s.reviews {
		if review.UserID == userID {
			n++

			continue
		}
		kept = append(kept, review)
	}
	r.s.reviews = kept

	return n, nil
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event *service.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}

	return out
}

// fakeGoogle serves both the ID-token verifier and the code exchanger.
type fakeGoogle struct {
	users      map[string]*service.OAuthUser // keyed by ID token
	codes      map[string]string             // code -> ID token
	configured bool
}

func newFakeGoogle() *fakeGoogle {
	return &fakeGoogle{
		users:      make(map[string]*service.OAuthUser),
		codes:      make(map[string]string),
		configured: true,
	}
}

func (g *fakeGoogle) VerifyIDToken(_ context.Context, idToken string) (*service.OAuthUser, error) {
	u, ok := g.users[idToken]
	if !ok {
		return nil, errInvalidExternal
	}

	return u, nil
}

func (g *fakeGoogle) Configured() bool { return g.configured }

func (g *fakeGoogle) AuthCodeURL(state string) string {
	return "https://accounts.example.test/auth?state=" + state
}

func (g *fakeGoogle) Exchange(_ context.Context, code string) (string, error) {
	idToken, ok := g.codes[code]
	if !ok {
		return "", errInvalidExternal
	}

	return idToken, nil
}

// fakeScraper returns canned items or an error.
type fakeScraper struct {
	configured bool
	items      []service.ScrapedReview
	err        error
	gotURL     string
	gotMax     int
}

func (s *fakeScraper) Configured() bool { return s.configured }

func (s *fakeScraper) Scrape(_ context.Context, url string, maxReviews int) ([]service.ScrapedReview, error) {
	s.gotURL, s.gotMax = url, maxReviews
	if s.err != nil {
		return nil, s.err
	}

	return s.items, nil
}
