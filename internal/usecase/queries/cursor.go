package queries

import (
	"encoding/base64"
	"strconv"
	"strings"

	"appointment-engine/internal/pkg/errs"
)

const (
	MaxListLimit    = 200
	CursorVersionV1 = "v1"
)

var ErrInvalidCursor = errs.Sentinel("invalid cursor", errs.ErrValidation)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeOffsetCursor produces an opaque page token for the given offset.
func EncodeOffsetCursor(offset int) string {
	return base64.URLEncoding.EncodeToString([]byte(CursorVersionV1 + ":" + strconv.Itoa(offset)))
}

func DecodeOffsetCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, ErrInvalidCursor
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return 0, ErrInvalidCursor
	}
	offset, err := strconv.Atoi(payload)
	if err != nil || offset < 0 {
		return 0, ErrInvalidCursor
	}
	return offset, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
