// Package memory provides an in-memory implementation of the store
// interfaces. State lives for the lifetime of the process and is never
// shared across processes.
package memory
