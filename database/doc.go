// Package database loads the store configuration, builds the session factory
// on top of Bun for MySQL, PostgreSQL and SQLite, and classifies store errors.
package database
