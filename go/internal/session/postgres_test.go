package session

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStoreSaveAndLoad(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	expires := time.Date(2023, 9, 8, 0, 0, 0, 0, time.UTC)
	userID := int64(3)

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("abc", int64(3), sqlmock.AnyArg(), sqlmock.AnyArg(), expires).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "data", "client_addr", "expires_at", "created_at"}).
			AddRow("abc", 3, []byte(`{"flashes":[{"category":"success","message":"hi"}]}`), nil, expires, expires))

	store := NewPostgresStore(database)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &Session{
		ID:         "abc",
		UserID:     &userID,
		Flashes:    []Flash{{Category: "success", Message: "hi"}},
		ClientAddr: "192.0.2.10",
		ExpiresAt:  expires,
	}))

	s, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, s.UserID)
	assert.Equal(t, int64(3), *s.UserID)
	require.Len(t, s.Flashes, 1)
	assert.Equal(t, "hi", s.Flashes[0].Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreLoadMissing(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "data", "client_addr", "expires_at", "created_at"}))

	_, err = NewPostgresStore(database).Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestToInet(t *testing.T) {
	assert.False(t, toInet("").Valid)
	assert.False(t, toInet("not-an-ip").Valid)

	v4 := toInet("192.0.2.10")
	require.True(t, v4.Valid)
	ones, bits := v4.IPNet.Mask.Size()
	assert.Equal(t, 32, ones)
	assert.Equal(t, 32, bits)

	v6 := toInet("2001:db8::1")
	require.True(t, v6.Valid)
	ones, _ = v6.IPNet.Mask.Size()
	assert.Equal(t, 128, ones)
}
