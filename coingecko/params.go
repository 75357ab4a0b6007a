package coingecko

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Params holds raw query parameters for an API call. Values may be one of:
// string, *string, bool, *bool, int, *int, []string or nil. Nil values
// (including nil pointers and nil slices) mark a parameter as absent and are
// dropped during cleaning.
type Params map[string]any

// Bool returns a pointer to b, for optional boolean parameters.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for optional integer parameters.
func Int(i int) *int { return &i }

// String returns a pointer to s, for optional string parameters.
func String(s string) *string { return &s }

// cleanParams removes absent entries and renders booleans and string slices
// as query-ready strings. Booleans become "true"/"false", slices are joined
// with commas. Strings and integers pass through untouched. A nil input
// yields a nil output. Cleaning an already-clean map is a no-op.
func cleanParams(params Params) Params {
	if params == nil {
		return nil
	}

	cleaned := make(Params, len(params))
	for key, value := range params {
		switch v := value.(type) {
		case nil:
			// absent, drop
		case bool:
			cleaned[key] = strconv.FormatBool(v)
		case *bool:
			if v != nil {
				cleaned[key] = strconv.FormatBool(*v)
			}
		case *int:
			if v != nil {
				cleaned[key] = *v
			}
		case *string:
			if v != nil {
				cleaned[key] = *v
			}
		case []string:
			if v != nil {
				cleaned[key] = strings.Join(v, ",")
			}
		default:
			cleaned[key] = v
		}
	}
	return cleaned
}

// queryValues renders a cleaned parameter map as url.Values. Integers and any
// remaining scalar values are stringified here.
func queryValues(params Params) url.Values {
	if len(params) == 0 {
		return nil
	}

	values := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case string:
			values.Set(key, v)
		default:
			values.Set(key, fmt.Sprint(v))
		}
	}
	return values
}
