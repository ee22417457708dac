package accept

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   []Range
	}{
		{
			name:   "simple type/subtype",
			header: "text/html",
			want:   []Range{{Type: "text", Subtype: "html", Q: 1.0}},
		},
		{
			name:   "full wildcard",
			header: "*/*",
			want:   []Range{{Type: "*", Subtype: "*", Q: 1.0}},
		},
		{
			name:   "subtype wildcard",
			header: "application/*",
			want:   []Range{{Type: "application", Subtype: "*", Q: 1.0}},
		},
		{
			name:   "explicit q",
			header: "text/html;q=0.9",
			want:   []Range{{Type: "text", Subtype: "html", Q: 0.9}},
		},
		{
			name:   "multiple ranges",
			header: "text/html;q=0.9, application/json;q=0.8",
			want: []Range{
				{Type: "text", Subtype: "html", Q: 0.9},
				{Type: "application", Subtype: "json", Q: 0.8},
			},
		},
		{
			name:   "multiple parameters",
			header: "application/json;charset=utf-8;version=2",
			want: []Range{{
				Type: "application", Subtype: "json",
				Parameters: []Param{{Name: "charset", Value: "utf-8"}, {Name: "version", Value: "2"}},
				Q:          1.0,
			}},
		},
		{
			name:   "quoted parameter value",
			header: `application/json;label="hello world"`,
			want: []Range{{
				Type: "application", Subtype: "json",
				Parameters: []Param{{Name: "label", Value: "hello world"}},
				Q:          1.0,
			}},
		},
		{
			name:   "quoted parameter value with escape",
			header: `application/json;label="a\"b"`,
			want: []Range{{
				Type: "application", Subtype: "json",
				Parameters: []Param{{Name: "label", Value: `a"b`}},
				Q:          1.0,
			}},
		},
		{
			name:   "duplicate parameter name overwrites",
			header: "application/json;charset=utf-8;charset=ascii",
			want: []Range{{
				Type: "application", Subtype: "json",
				Parameters: []Param{{Name: "charset", Value: "ascii"}},
				Q:          1.0,
			}},
		},
		{
			name:   "whitespace tolerant",
			header: "  text/html ; q=0.5 , application/json",
			want: []Range{
				{Type: "text", Subtype: "html", Q: 0.5},
				{Type: "application", Subtype: "json", Q: 1.0},
			},
		},
		{
			name:   "empty header",
			header: "",
			want:   nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.header)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name      string
		header    string
		wantErrIs error
		wantType  interface{}
	}{
		{
			name:     "garbage",
			header:   "not a valid header!!!",
			wantType: &UnexpectedCharacterError{},
		},
		{
			name:      "star without slash",
			header:    "*x",
			wantErrIs: ErrExpectedSlash,
		},
		{
			name:      "unterminated escape",
			header:    `application/json;label="a\`,
			wantErrIs: ErrUnexpectedEndOfInput,
		},
		{
			name:     "q out of range",
			header:   "text/html;q=2",
			wantType: &QOutOfRangeError{},
		},
		{
			name:     "q not a number",
			header:   "text/html;q=abc",
			wantType: &QOutOfRangeError{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.header)
			require.Error(t, err)
			if tc.wantErrIs != nil {
				require.True(t, errors.Is(err, tc.wantErrIs))
			}
			if tc.wantType != nil {
				require.IsType(t, tc.wantType, err)
			}
		})
	}
}

func TestParseDefaultQ(t *testing.T) {
	got, err := Parse("text/html")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 1.0, got[0].Q)
}
