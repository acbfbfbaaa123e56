package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gudang-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert item: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(fk))
	assert.True(t, isForeignKeyViolation(fk))
	assert.True(t, isCheckViolation(check))
	assert.False(t, isCheckViolation(errors.New("otro")))
	assert.True(t, isUniqueViolation(errors.New("SQLSTATE 23505")))

	badUUID := fmt.Errorf("get item: %w", &pgconn.PgError{Code: "22P02"})
	assert.True(t, isInvalidID(badUUID))
	assert.False(t, isInvalidID(unique))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	assert.Equal(t, "7701234", nullIfEmpty("7701234"))
}

func TestApplyPoolLimits(t *testing.T) {
	pc, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/gudang")
	require.NoError(t, err)

	applyPoolLimits(pc, config.DBConfig{MaxConns: 10, MinConns: 20})
	assert.Equal(t, int32(10), pc.MaxConns)
	assert.NotEqual(t, int32(20), pc.MinConns)

	applyPoolLimits(pc, config.DBConfig{MaxConns: 8, MinConns: 3})
	assert.Equal(t, int32(3), pc.MinConns)
}
