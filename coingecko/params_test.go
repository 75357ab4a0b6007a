package coingecko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanParams(t *testing.T) {
	tests := []struct {
		name     string
		input    Params
		expected Params
	}{
		{
			name:     "nil input yields nil output",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty input yields empty output",
			input:    Params{},
			expected: Params{},
		},
		{
			name:     "absent values are dropped",
			input:    Params{"a": nil, "b": 123, "c": "foo", "d": nil},
			expected: Params{"b": 123, "c": "foo"},
		},
		{
			name:     "nil pointers and slices are dropped",
			input:    Params{"a": (*bool)(nil), "b": (*int)(nil), "c": (*string)(nil), "d": []string(nil)},
			expected: Params{},
		},
		{
			name:     "booleans become lowercase strings",
			input:    Params{"t": true, "f": false},
			expected: Params{"t": "true", "f": "false"},
		},
		{
			name:     "slices are comma joined",
			input:    Params{"ids": []string{"foo", "bar"}},
			expected: Params{"ids": "foo,bar"},
		},
		{
			name:     "single element slice has no separator",
			input:    Params{"ids": []string{"foo"}},
			expected: Params{"ids": "foo"},
		},
		{
			name:     "pointers are dereferenced",
			input:    Params{"a": Bool(true), "b": Int(42), "c": String("foo")},
			expected: Params{"a": "true", "b": 42, "c": "foo"},
		},
		{
			name:     "strings and integers pass through",
			input:    Params{"s": "foo", "i": 7},
			expected: Params{"s": "foo", "i": 7},
		},
		{
			name:     "mixed",
			input:    Params{"a": nil, "b": []string{"foo", "bar"}, "c": true},
			expected: Params{"b": "foo,bar", "c": "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanParams(tt.input))
		})
	}
}

func TestCleanParamsIdempotent(t *testing.T) {
	input := Params{
		"a":   nil,
		"ids": []string{"bitcoin", "ethereum"},
		"f":   false,
		"n":   250,
		"s":   "market_cap_desc",
	}

	once := cleanParams(input)
	twice := cleanParams(once)
	assert.Equal(t, once, twice)
}

func TestCleanParamsDoesNotMutateInput(t *testing.T) {
	input := Params{"flag": true, "gone": nil}
	cleanParams(input)

	assert.Equal(t, true, input["flag"])
	assert.Contains(t, input, "gone")
}

func TestQueryValues(t *testing.T) {
	t.Run("empty map yields nil", func(t *testing.T) {
		assert.Nil(t, queryValues(nil))
		assert.Nil(t, queryValues(Params{}))
	})

	t.Run("integers are stringified", func(t *testing.T) {
		values := queryValues(cleanParams(Params{"page": 2, "per_page": Int(100)}))
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "100", values.Get("per_page"))
	})

	t.Run("strings pass through", func(t *testing.T) {
		values := queryValues(Params{"vs_currency": "usd"})
		assert.Equal(t, "usd", values.Get("vs_currency"))
	})
}
