package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// ResolveDefault returns candidate when it is non-empty. Otherwise it calls
// generate and returns its result. generate is never called for a non-empty
// candidate, and a nil generate yields "".
func ResolveDefault(candidate string, generate func() string) string {
	if candidate != "" {
		return candidate
	}
	if generate == nil {
		return ""
	}
	return generate()
}

// BoolFromPtrWithDefault returns the first non-nil *bool value, or the fallback.
func BoolFromPtrWithDefault(fallback bool, ptrs ...*bool) bool {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
