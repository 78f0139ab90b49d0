package introspect

// StructuralError reports a schema value the introspector cannot walk: a
// non-object root, a wrapper without an unwrap capability, or a value that is
// not a recognized schema node at all. Structural errors are fatal; they are
// never downgraded to warnings.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "introspect: " + e.Reason
}
