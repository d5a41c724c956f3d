package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/devtinder/web/internal/platform/storage/sqlitemigrate"
	"github.com/devtinder/web/internal/services/web/api"
	webstorage "github.com/devtinder/web/internal/services/web/storage"
	"github.com/devtinder/web/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for browser sessions.
type Store struct {
	sqlDB *sql.DB
}

var _ webstorage.SessionStore = (*Store)(nil)

// storedCookie is the persisted subset of an upstream cookie.
type storedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitzero"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"http_only,omitempty"`
}

// Open opens and migrates a session SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetSession loads one session record.
func (s *Store) GetSession(ctx context.Context, sessionID string) (webstorage.SessionRecord, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.SessionRecord{}, false, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return webstorage.SessionRecord{}, false, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT session_id, cookies_json, user_json, updated_at FROM web_sessions WHERE session_id = ?`,
		sessionID,
	)
	var (
		record      webstorage.SessionRecord
		cookiesJSON []byte
		userJSON    []byte
		updatedAt   int64
	)
	if err := row.Scan(&record.SessionID, &cookiesJSON, &userJSON, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.SessionRecord{}, false, nil
		}
		return webstorage.SessionRecord{}, false, fmt.Errorf("get session: %w", err)
	}

	cookies, err := decodeCookies(cookiesJSON)
	if err != nil {
		return webstorage.SessionRecord{}, false, fmt.Errorf("decode session cookies: %w", err)
	}
	record.Cookies = cookies
	if len(userJSON) > 0 {
		var user api.User
		if err := json.Unmarshal(userJSON, &user); err != nil {
			return webstorage.SessionRecord{}, false, fmt.Errorf("decode session user: %w", err)
		}
		record.User = &user
	}
	record.UpdatedAt = unixMillisToTime(updatedAt)
	return record, true, nil
}

// PutSession upserts one session record.
func (s *Store) PutSession(ctx context.Context, record webstorage.SessionRecord) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	record.SessionID = strings.TrimSpace(record.SessionID)
	if record.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	cookiesJSON, err := encodeCookies(record.Cookies)
	if err != nil {
		return fmt.Errorf("encode session cookies: %w", err)
	}
	var userJSON []byte
	if record.User != nil {
		userJSON, err = json.Marshal(record.User)
		if err != nil {
			return fmt.Errorf("encode session user: %w", err)
		}
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO web_sessions (session_id, cookies_json, user_json, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		   cookies_json = excluded.cookies_json,
		   user_json = excluded.user_json,
		   updated_at = excluded.updated_at`,
		record.SessionID,
		cookiesJSON,
		userJSON,
		timeToUnixMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// DeleteSession removes one session record.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteSessionsBefore prunes records not updated since cutoff.
func (s *Store) DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE updated_at < ?`, timeToUnixMillis(cutoff))
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune sessions rows: %w", err)
	}
	return count, nil
}

func encodeCookies(cookies []*http.Cookie) ([]byte, error) {
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		if c == nil || strings.TrimSpace(c.Name) == "" {
			continue
		}
		stored = append(stored, storedCookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	return json.Marshal(stored)
}

func decodeCookies(raw []byte) ([]*http.Cookie, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var stored []storedCookie
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	return cookies, nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}
