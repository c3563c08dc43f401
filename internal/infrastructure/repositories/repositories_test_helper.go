package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		phone TEXT,
		address TEXT,
		role TEXT NOT NULL,
		status TEXT NOT NULL,
		business_name TEXT,
		join_date DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		dealer_email TEXT NOT NULL,
		dealer_name TEXT NOT NULL,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		category TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0,
		rating REAL NOT NULL DEFAULT 0,
		image TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPickupTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE pickups (
		id TEXT PRIMARY KEY,
		user_email TEXT NOT NULL,
		user_name TEXT NOT NULL,
		material TEXT NOT NULL,
		weight REAL NOT NULL,
		date DATETIME,
		time TEXT,
		address TEXT,
		estimated_value REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		booked_date DATETIME,
		updated_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		customer_email TEXT NOT NULL,
		customer_name TEXT NOT NULL,
		dealer_email TEXT NOT NULL,
		items TEXT NOT NULL,
		amount REAL NOT NULL,
		payment_method TEXT NOT NULL,
		address TEXT,
		status TEXT NOT NULL,
		completed_at DATETIME,
		timestamp DATETIME,
		updated_at DATETIME
	);`)
}

func createRateTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE rates (
		id TEXT PRIMARY KEY,
		material TEXT UNIQUE NOT NULL,
		rate_per_kg REAL NOT NULL,
		trend TEXT NOT NULL,
		icon TEXT
	);`)
}

func createTipTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tips (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		icon TEXT,
		impact TEXT
	);`)
}
