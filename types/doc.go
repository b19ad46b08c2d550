// Package types holds small contracts shared by domain types.
package types
