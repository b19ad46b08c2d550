// Package librarian runs data-access logic in scoped units of work: each call
// gets an exclusive session, a repository bound to it and guaranteed release.
package librarian
