package database

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesMigrations(t *testing.T) {
	db, err := New(t.TempDir()+"/test.db", EmbeddedMigrations)
	require.NoError(t, err)
	defer db.Close()

	// Şema gerçekten kurulmuş olmalı
	var count int
	require.NoError(t, db.Conn.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'partners'`,
	).Scan(&count))
	assert.Equal(t, 1, count)

	// Migration kayıt altına alınmış olmalı
	require.NoError(t, db.Conn.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	assert.Greater(t, count, 0)
}

func TestMigrationsIdempotent(t *testing.T) {
	path := t.TempDir() + "/test.db"

	db, err := New(path, EmbeddedMigrations)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Aynı dosyayla ikinci açılış: migration'lar tekrar uygulanmaz, hata yok
	db, err = New(path, EmbeddedMigrations)
	require.NoError(t, err)
	defer db.Close()
}

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want int
	}{
		{"two statements", "CREATE TABLE a (id TEXT); CREATE TABLE b (id TEXT);", 2},
		{"no trailing semicolon", "SELECT 1", 1},
		{"semicolon inside string literal", "INSERT INTO t VALUES ('a;b'); SELECT 1;", 2},
		{"escaped quote", "INSERT INTO t VALUES ('it''s; fine'); SELECT 1;", 2},
		{"empty", "  \n ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, splitStatements(tt.sql), tt.want)
		})
	}
}

func TestWithTxRollbackOnError(t *testing.T) {
	db, err := New(t.TempDir()+"/tx.db", EmbeddedMigrations)
	require.NoError(t, err)
	defer db.Close()

	// Error dönen fonksiyon → INSERT rollback edilmeli
	txErr := WithTx(context.Background(), db.Conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			"INSERT INTO partners (id, name) VALUES ('tx-1', 'Rollback AŞ')",
		); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, txErr)

	var count int
	require.NoError(t, db.Conn.QueryRow(
		"SELECT COUNT(*) FROM partners WHERE id = 'tx-1'",
	).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestWithTxCommit(t *testing.T) {
	db, err := New(t.TempDir()+"/tx.db", EmbeddedMigrations)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, WithTx(context.Background(), db.Conn, func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO partners (id, name) VALUES ('tx-2', 'Commit AŞ')")
		return err
	}))

	var name string
	require.NoError(t, db.Conn.QueryRow(
		"SELECT name FROM partners WHERE id = 'tx-2'",
	).Scan(&name))
	assert.Equal(t, "Commit AŞ", name)
}
