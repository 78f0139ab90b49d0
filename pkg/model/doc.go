// Package model exposes the canonical field-descriptor types produced by
// introspection and consumed by the resolver, the form emitter, and the
// schema writer. The concrete definitions live in internal/descriptor; this
// package re-exports them for external consumers.
package model
