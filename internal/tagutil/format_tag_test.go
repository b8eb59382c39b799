package tagutil

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
)

func TestParseJSONTag(t *testing.T) {
	var testCases = []struct {
		description string
		raw         string
		expect      JSONTag
	}{
		{description: "empty", raw: "", expect: JSONTag{Name: "Field"}},
		{description: "name", raw: "id", expect: JSONTag{Name: "id", Explicit: true}},
		{description: "name with options", raw: "id,omitempty", expect: JSONTag{Name: "id", Explicit: true}},
		{description: "options only", raw: ",omitempty", expect: JSONTag{Name: "Field"}},
		{description: "transient", raw: "-", expect: JSONTag{Name: "-", Explicit: true, Transient: true}},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, ParseJSONTag("Field", testCase.raw), testCase.description)
	}
}

func TestResolveFieldTag(t *testing.T) {
	type sample struct {
		Plain    string
		JSONName string `json:"jsonName" format:"name=ignored"`
		Named    string `format:"name=named"`
		Skip     string `json:"-"`
		Internal string `internal:"true"`
		Ignored  string `format:"ignore=true"`
		Nullable string `format:"nullable=true"`
	}
	var testCases = []struct {
		field  string
		expect FieldTag
	}{
		{field: "Plain", expect: FieldTag{Name: "Plain"}},
		{field: "JSONName", expect: FieldTag{Name: "jsonName", Explicit: true}},
		{field: "Named", expect: FieldTag{Name: "named", Explicit: true}},
		{field: "Skip", expect: FieldTag{Name: "-", Explicit: true, Ignore: true}},
		{field: "Internal", expect: FieldTag{Name: "Internal", Ignore: true}},
		{field: "Ignored", expect: FieldTag{Name: "Ignored", Ignore: true}},
		{field: "Nullable", expect: FieldTag{Name: "Nullable", Nullable: true}},
	}
	rType := reflect.TypeOf(sample{})
	for _, testCase := range testCases {
		sf, ok := rType.FieldByName(testCase.field)
		assert.True(t, ok, testCase.field)
		assert.Equal(t, testCase.expect, ResolveFieldTag(sf), testCase.field)
	}
}

func TestFormatName(t *testing.T) {
	assert.Equal(t, "UserName", FormatName("UserName", ""))
	assert.Equal(t, "user_name", FormatName("UserName", text.CaseFormatLowerUnderscore))
	assert.Equal(t, "userName", FormatName("UserName", text.CaseFormatLowerCamel))
	assert.Equal(t, "id", FormatName("ID", text.CaseFormatLowerCamel))
}
