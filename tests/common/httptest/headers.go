//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertHeaderLists checks that a comma separated header such as
// Access-Control-Expose-Headers contains every value, in any order.
func AssertHeaderLists(t *testing.T, w *httptest.ResponseRecorder, header string, values ...string) {
	t.Helper()

	got := map[string]bool{}
	for _, part := range strings.Split(w.Header().Get(header), ",") {
		got[strings.ToLower(strings.TrimSpace(part))] = true
	}
	for _, v := range values {
		assert.True(t, got[strings.ToLower(v)], "%s does not list %q", header, v)
	}
}
