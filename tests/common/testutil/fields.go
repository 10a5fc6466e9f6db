//go:build unit || e2e

package testutil

// Field sets key, or removes it when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Without removes every key, used to build "missing fields" payloads.
func Without(keys ...string) func(m map[string]any) {
	return func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
}

// SessionField sets key on the i-th element of the sessions array.
func SessionField(i int, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		sessions, ok := m["sessions"].([]any)
		if !ok || i >= len(sessions) {
			return
		}
		if session, ok := sessions[i].(map[string]any); ok {
			Field(key, value)(session)
		}
	}
}
