// Package console is the interactive menu that reads user input, runs one
// unit of work per action and prints the outcome.
package console
