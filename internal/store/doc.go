// Package store defines the persistence interfaces and sentinel errors shared
// by all storage backends. Callers depend on these contracts rather than on a
// concrete backend, so the in-memory and MongoDB implementations are
// interchangeable.
package store
