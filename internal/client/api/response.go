package api

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/forestadmin/internal/common"
)

// Response is a decoded JSON object. Numbers are kept as json.Number.
type Response map[string]any

// OK reports whether the backend accepted the request.
func (r Response) OK() bool {
	if code, ok := r["RESULT_CODE"]; ok && code != nil {
		return fmt.Sprint(code) == common.ResultCodeOK
	}
	return truthy(r["RESULT"])
}

// Refused reports whether the response carries a success flag that is
// not set. A response without RESULT and RESULT_CODE is not refused.
func (r Response) Refused() bool {
	_, hasResult := r["RESULT"]
	_, hasCode := r["RESULT_CODE"]
	return (hasResult || hasCode) && !r.OK()
}

// Message returns RESULT_MSG, if any.
func (r Response) Message() string {
	return r.String("RESULT_MSG")
}

// Err returns nil for a successful response and a *RejectedError otherwise.
func (r Response) Err() error {
	if r.OK() {
		return nil
	}
	return &RejectedError{Message: r.Message()}
}

func (r Response) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Int reads an integer sent either as a JSON number or a numeric string.
func (r Response) Int(key string) (int, bool) {
	return toInt(r[key])
}

// IntOr is Int with a fallback for missing or non-numeric values.
func (r Response) IntOr(key string, fallback int) int {
	if n, ok := r.Int(key); ok {
		return n
	}
	return fallback
}

func (r Response) Object(key string) (Response, bool) {
	m, ok := r[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Response(m), true
}

// List returns the objects of a JSON array. Non-object items are skipped.
func (r Response) List(key string) []Response {
	items, _ := r[key].([]any)
	out := make([]Response, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, Response(m))
		}
	}
	return out
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return 0, false
			}
			return int(f), true
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	case json.Number:
		f, err := b.Float64()
		return err == nil && f != 0
	case float64:
		return b != 0
	default:
		return true
	}
}
