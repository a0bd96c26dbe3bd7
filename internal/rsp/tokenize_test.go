package rsp

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "quoted field containing delimiter",
			line: `a,"b,c",d`,
			want: []string{"a", "b,c", "d"},
		},
		{
			name: "whitespace trimmed per field",
			line: "  a , b ,c  ",
			want: []string{"a", "b", "c"},
		},
		{
			name: "trailing empty field kept",
			line: "a,b,",
			want: []string{"a", "b", ""},
		},
		{
			name: "empty line yields one empty field",
			line: "",
			want: []string{""},
		},
		{
			name: "quote characters are consumed, not emitted",
			line: `"New Delhi",petrol`,
			want: []string{"New Delhi", "petrol"},
		},
		{
			name: "unterminated quote swallows rest of line",
			line: `a,"b,c`,
			want: []string{"a", "b,c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenizeLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenizeLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

// Without embedded delimiters or quotes, tokenization must agree with a
// naive comma split.
func TestTokenizeLineMatchesNaiveSplit(t *testing.T) {
	lines := []string{
		"1,IOCL,RSP,01-06-2023,Petrol,Mumbai,106.31",
		"x,y",
		"one",
		"a,b,c,d,e,f,g",
	}

	for _, line := range lines {
		got := TokenizeLine(line)
		want := strings.Split(line, ",")
		if !reflect.DeepEqual(got, want) {
			t.Errorf("TokenizeLine(%q) = %q, want naive split %q", line, got, want)
		}
	}
}
