package repository

import "database/sql"

// DBTX is the executor shared by *sql.DB and *sql.Tx. Repositories run on
// either, so a service can group several writes into one transaction.
type DBTX interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
