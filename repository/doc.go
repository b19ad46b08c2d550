// Package repository implements the library's data operations on top of a
// Bun handle bound to one session, including borrow association resolution.
package repository
