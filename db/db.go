// Package db holds the package level database handle shared by the
// catalog aggregation queries.
package db

import "github.com/jmoiron/sqlx"

var conn *sqlx.DB

// Set will set the global database connection.
func Set(db *sqlx.DB) { conn = db }

// Get will get the database
func Get() *sqlx.DB { return conn }
