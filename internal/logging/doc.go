// Package logging provides a unified logging interface for the multiplication
// checker. It abstracts the underlying logging implementation, allowing
// consistent logging across the engine harness, orchestration and CLI while
// supporting multiple backends.
package logging
