// Package mongodb provides the MongoDB-backed implementations for the data
// storage interfaces defined in the internal/store package. It handles client
// construction, document mapping between domain entities and BSON, and the
// translation of driver errors into the shared store error taxonomy.
package mongodb
