package validator

// CheckString reports whether v is a string and, unless allowEmpty is set,
// a non-empty one.
func CheckString(v any, allowEmpty bool) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return allowEmpty || s != ""
}
