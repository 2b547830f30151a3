package pure_test

import (
	"testing"

	"github.com/on-the-ground/pureutil/pure"
	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	assert.Equal(t, "  aa\n    bb", pure.Indent("aa\n  bb", 2))
	assert.Equal(t, "  aa\n    bb\n", pure.Indent("aa\n  bb\n", 2))
	assert.Equal(t, "    aa\n    bb\n\n  cc\n", pure.Indent("  aa\n  bb\n\ncc\n", 2))
}

func TestIndent_EdgeCases(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single newline", "\n", "\n"},
		{"all blank lines", "\n\n\n", "\n\n\n"},
		{"leading blank lines", "\n\naa", "\n\n  aa"},
		{"trailing blank lines", "aa\n\n\n", "  aa\n\n\n"},
		{"whitespace only line", "aa\n \nbb", "  aa\n   \n  bb"},
		{"crlf", "aa\r\nbb", "  aa\r\n  bb"},
		{"bare carriage return", "aa\rbb\r", "  aa\r  bb\r"},
		{"blank crlf line", "aa\r\n\r\nbb\r\n", "  aa\r\n\r\n  bb\r\n"},
		{"mixed breaks", "aa\n\rbb", "  aa\n\r  bb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pure.Indent(tc.in, 2))
		})
	}
}

func TestIndent_ZeroIsIdentity(t *testing.T) {
	in := "  aa\n  bb\n\ncc\n"
	once := pure.Indent(in, 0)
	assert.Equal(t, in, once)
	assert.Equal(t, in, pure.Indent(once, 0))
}

func TestIndent_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { pure.Indent("aa", -1) })
}

func TestIndentWith(t *testing.T) {
	assert.Equal(t, "# aa\n\n# bb\n", pure.IndentWith("aa\n\nbb\n", "# "))
	assert.Equal(t, "aa\nbb", pure.IndentWith("aa\nbb", ""))
}
