package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/mcdev12/gridiron/go/internal/session/db"
	"github.com/sqlc-dev/pqtype"
)

// PostgresStore keeps sessions in the sessions table. Rows cascade away with
// their user.
type PostgresStore struct {
	queries *db.Queries
}

func NewPostgresStore(database *sql.DB) *PostgresStore {
	return &PostgresStore{queries: db.New(database)}
}

// payload is what goes into the jsonb data column
type payload struct {
	Flashes []Flash `json:"flashes,omitempty"`
}

func (p *PostgresStore) Load(ctx context.Context, id string) (*Session, error) {
	row, err := p.queries.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	s := &Session{
		ID:        row.ID,
		ExpiresAt: row.ExpiresAt,
	}
	if row.UserID.Valid {
		userID := row.UserID.Int64
		s.UserID = &userID
	}
	if row.ClientAddr.Valid {
		s.ClientAddr = row.ClientAddr.IPNet.IP.String()
	}
	if row.Data.Valid {
		var data payload
		if err := json.Unmarshal(row.Data.RawMessage, &data); err != nil {
			return nil, fmt.Errorf("failed to decode session data: %w", err)
		}
		s.Flashes = data.Flashes
	}
	return s, nil
}

func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	params := db.UpsertSessionParams{
		ID:         s.ID,
		ClientAddr: toInet(s.ClientAddr),
		ExpiresAt:  s.ExpiresAt,
	}
	if s.UserID != nil {
		params.UserID = sql.NullInt64{Int64: *s.UserID, Valid: true}
	}
	if len(s.Flashes) > 0 {
		raw, err := json.Marshal(payload{Flashes: s.Flashes})
		if err != nil {
			return fmt.Errorf("failed to encode session data: %w", err)
		}
		params.Data = pqtype.NullRawMessage{RawMessage: raw, Valid: true}
	}

	if err := p.queries.UpsertSession(ctx, params); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	if err := p.queries.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (p *PostgresStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := p.queries.DeleteExpiredSessions(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return n, nil
}

func toInet(addr string) pqtype.Inet {
	ip := net.ParseIP(addr)
	if ip == nil {
		return pqtype.Inet{}
	}
	bits := 128
	if v4 := ip.To4(); v4 != nil {
		ip, bits = v4, 32
	}
	return pqtype.Inet{
		IPNet: net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)},
		Valid: true,
	}
}
