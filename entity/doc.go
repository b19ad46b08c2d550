// Package entity defines the persisted records of the library: students,
// books and the borrow relation between them.
package entity
