// Package api provides HTTP handlers for the API. Handlers translate
// requests into calls on an injected store.ItemStore and serialize results
// and errors; they keep no state of their own beyond their dependencies.
package api
