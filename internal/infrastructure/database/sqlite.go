package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// The constraints below are the last line of defense for the uniqueness and
// referential rules the usecases pre-check: a pre-check can lose a race, the
// schema cannot.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS urbanizaciones (
	id          TEXT PRIMARY KEY,
	nombre      TEXT NOT NULL UNIQUE,
	ubicacion   TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS lotes (
	id              TEXT PRIMARY KEY,
	manzano         TEXT NOT NULL,
	numero          INTEGER NOT NULL,
	nombre          TEXT NOT NULL,
	zona            TEXT NOT NULL DEFAULT '',
	superficie_m2   REAL NOT NULL,
	precio_m2       REAL NOT NULL,
	precio_contado  REAL NOT NULL,
	estado          TEXT NOT NULL,
	forma_venta     TEXT NOT NULL DEFAULT '',
	urbanizacion_id TEXT NOT NULL REFERENCES urbanizaciones(id) ON DELETE RESTRICT,
	created_at      TEXT NOT NULL,
	updated_at      TEXT NOT NULL,
	UNIQUE (urbanizacion_id, manzano, numero)
);

CREATE TABLE IF NOT EXISTS planes_financiamiento (
	id                  TEXT PRIMARY KEY,
	nombre              TEXT NOT NULL UNIQUE,
	porcentaje_anual    REAL NOT NULL,
	cantidad_cuotas     INTEGER NOT NULL,
	tipo_cuota_inicial  TEXT NOT NULL,
	valor_cuota_inicial REAL NOT NULL,
	activo              INTEGER NOT NULL DEFAULT 1,
	created_at          TEXT NOT NULL,
	updated_at          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS financiamientos_lote (
	id                     TEXT PRIMARY KEY,
	lote_id                TEXT NOT NULL REFERENCES lotes(id) ON DELETE CASCADE,
	plan_financiamiento_id TEXT NOT NULL REFERENCES planes_financiamiento(id) ON DELETE RESTRICT,
	cuota_inicial          REAL NOT NULL,
	saldo_financiar        REAL NOT NULL,
	interes_total          REAL NOT NULL,
	cuota_mensual          REAL NOT NULL,
	precio_total_credito   REAL NOT NULL,
	created_at             TEXT NOT NULL,
	UNIQUE (lote_id, plan_financiamiento_id)
);
`

// ConnectSQLite opens (creating if needed) the inventory database at path
// and ensures the schema. It exits the process on failure, mirroring
// ConnectDynamoDB.
func ConnectSQLite(path string) *sql.DB {
	db, err := OpenSQLite(path)
	if err != nil {
		log.Fatalf("failed to open sqlite database: %v", err)
	}
	return db
}

// OpenSQLite opens the database with foreign keys enforced on every pooled
// connection; the DSN pragma applies per connection, a plain Exec would not.
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = "terranova.db"
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}
