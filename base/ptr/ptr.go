package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// StringOr dereferences p, falling back to def when p is nil
func StringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
