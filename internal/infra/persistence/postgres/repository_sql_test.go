package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures every statement gorm builds.
type sqlRecorder struct {
	logger.Interface

	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, r.statements)

	return r.statements[len(r.statements)-1]
}

// newDryRunDB builds statements against the postgres dialect without a server.
func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	rec := &sqlRecorder{Interface: logger.Discard}
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=crm dbname=crm sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)

	return db, rec
}

func TestUserRepository_UpdatePasswordHashWritesOnlyPassword(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewUserRepository(db)

	_ = repo.UpdatePasswordHash(context.Background(), uuid.New(), "new-hash")

	sql := rec.last(t)
	assert.True(t, strings.HasPrefix(sql, `UPDATE "users" SET`), sql)
	assert.Contains(t, sql, `"password_hash"='new-hash'`)
	assert.Contains(t, sql, `"updated_at"`)
	assert.Contains(t, sql, `"active"`)
	assert.NotContains(t, sql, `"phone"`)
	assert.NotContains(t, sql, `"email"`)
}

func TestUserRepository_UpdateNeverWritesPassword(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewUserRepository(db)
	hash := "stale-hash"
	phone := "555-0100"

	_ = repo.Update(context.Background(), &entity.User{
		ID:           uuid.New(),
		Email:        "Jane@Example.com",
		Username:     "jane",
		PasswordHash: &hash,
		Phone:        &phone,
		Active:       true,
	})

	sql := rec.last(t)
	assert.True(t, strings.HasPrefix(sql, `UPDATE "users" SET`), sql)
	assert.Contains(t, sql, `"phone"='555-0100'`)
	assert.Contains(t, sql, `"email"='jane@example.com'`)
	assert.NotContains(t, sql, "password_hash")
	assert.NotContains(t, sql, hash)
}

func TestUserRepository_FindByEmailFiltersActive(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewUserRepository(db)

	_, _ = repo.FindByEmail(context.Background(), " Jane@Example.com ")

	sql := rec.last(t)
	assert.True(t, strings.HasPrefix(sql, `SELECT * FROM "users"`), sql)
	assert.Contains(t, sql, `'jane@example.com'`)
	assert.Contains(t, sql, `"users"."active"`)
	assert.Contains(t, sql, "LIMIT 1")
}

func TestRefreshTokenRepository_ConsumeUsesDeleteReturning(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewRefreshTokenRepository(db)

	_, _ = repo.ConsumeValidByHash(context.Background(), "abc", time.Now())

	sql := rec.last(t)
	assert.True(t, strings.HasPrefix(sql, `DELETE FROM "refresh_tokens"`), sql)
	assert.Contains(t, sql, `"refresh_tokens"."token_hash" = 'abc'`)
	assert.Contains(t, sql, `"refresh_tokens"."expires_at" >`)
	assert.Contains(t, sql, "RETURNING")
}

func TestRefreshTokenRepository_DeleteExpired(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewRefreshTokenRepository(db)

	_, _ = repo.DeleteExpired(context.Background(), time.Now())

	sql := rec.last(t)
	assert.True(t, strings.HasPrefix(sql, `DELETE FROM "refresh_tokens"`), sql)
	assert.Contains(t, sql, `"refresh_tokens"."expires_at" <=`)
}
