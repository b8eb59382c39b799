package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type label struct{ name string }

func (l label) String() string { return "label:" + l.name }

func TestUnescape(t *testing.T) {
	var testCases = []struct {
		input  string
		expect string
	}{
		{input: `plain`, expect: "plain"},
		{input: `quote:\"ok\"`, expect: `quote:"ok"`},
		{input: `line1\nline2`, expect: "line1\nline2"},
		{input: `\b\f\r\t`, expect: "\b\f\r\t"},
		{input: `backslash:\\`, expect: `backslash:\`},
		{input: `\\n`, expect: `\n`},
		{input: `\\\"`, expect: `\"`},
		{input: `slash:\/`, expect: `slash:\/`},
		{input: `trailing\`, expect: `trailing\`},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Unescape(testCase.input), testCase.input)
	}
}

func TestAppendQuoted(t *testing.T) {
	var testCases = []struct {
		input  string
		expect string
	}{
		{input: "John", expect: `"John"`},
		{input: `say "hi"`, expect: `"say \"hi\""`},
		{input: "a\nb\tc\r\b\f", expect: `"a\nb\tc\r\b\f"`},
		{input: `c:\dir`, expect: `"c:\\dir"`},
		{input: "", expect: `""`},
	}
	for _, testCase := range testCases {
		actual := string(AppendQuoted(nil, testCase.input))
		assert.Equal(t, testCase.expect, actual, testCase.input)
		assert.Equal(t, testCase.input, Unescape(actual[1:len(actual)-1]), testCase.input)
	}
}

func TestRender(t *testing.T) {
	var testCases = []struct {
		description string
		value       Value
		renderer    Renderer
		expect      string
	}{
		{description: "null", value: NullOf(), expect: "null"},
		{description: "string", value: StringOf("x\"y"), expect: `"x\"y"`},
		{description: "int", value: IntOf(-33), expect: "-33"},
		{description: "uint", value: UintOf(18446744073709551615), expect: "18446744073709551615"},
		{description: "float64", value: FloatOf(5, 64), expect: "5"},
		{description: "float32", value: FloatOf(float64(float32(1.05)), 32), expect: "1.05"},
		{description: "float64 fraction", value: FloatOf(3.1415, 64), expect: "3.1415"},
		{description: "bool", value: BoolOf(true), expect: "true"},
		{description: "char", value: CharOf('7'), expect: `"7"`},
		{description: "char array", value: ArrayOf([]Value{CharOf('1'), CharOf('2')}), expect: `["1","2"]`},
		{description: "int array", value: ArrayOf([]Value{IntOf(1), IntOf(2)}), expect: `[1,2]`},
		{description: "empty array", value: ArrayOf([]Value{}), expect: `[]`},
		{description: "opaque stringer", value: OpaqueOf(label{name: "a"}), expect: `"label:a"`},
		{description: "opaque error", value: OpaqueOf(errors.New("boom")), expect: `"boom"`},
		{description: "opaque verbatim", value: OpaqueOf(map[string]int{"a": 1}), expect: `"map[a:1]"`},
		{description: "opaque custom renderer", value: OpaqueOf(label{name: "a"}), renderer: func(v interface{}) string { return "custom" }, expect: `"custom"`},
		{description: "opaque is not escaped", value: OpaqueOf(`a"b`), expect: `"a"b"`},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Render(testCase.value, testCase.renderer), testCase.description)
	}
}

func TestValue_Raw(t *testing.T) {
	raw, ok := OpaqueOf(`{"x":1}`).Raw()
	assert.True(t, ok)
	assert.Equal(t, `{"x":1}`, raw)
	_, ok = StringOf("a").Raw()
	assert.False(t, ok)
}
