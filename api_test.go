package jsonmapper

import (
	stdjson "encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonmapper/shape"
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type Person struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type Profile struct {
	ID       int
	Name     string
	Nick     *string
	Initial  Char
	Scores   []float64
	Letters  [3]Char
	Friends  []Person
	Verified bool
}

type coordinate struct {
	lat float64
	lng float64
}

func newCoordinate(lat, lng float64) coordinate {
	return coordinate{lat: lat, lng: lng}
}

type Route struct {
	Name  string
	Stops []coordinate
}

func init() {
	if err := RegisterConstructor(newCoordinate); err != nil {
		panic(err)
	}
}

func TestDecode_Person(t *testing.T) {
	var actual Person
	require.NoError(t, Decode(`{"name":"John","surname":"Smith"}`, &actual))
	assert.Equal(t, Person{Name: "John", Surname: "Smith"}, actual)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	nick := "jd"
	var testCases = []struct {
		description string
		value       Profile
	}{
		{description: "zero", value: Profile{}},
		{
			description: "populated",
			value: Profile{
				ID:       7,
				Name:     "John \"Johnny\" Doe\n\\",
				Nick:     &nick,
				Initial:  'J',
				Scores:   []float64{1.5, -2, 1e-7},
				Letters:  [3]Char{'a', '"', '\\'},
				Verified: true,
			},
		},
		{description: "backslash before quote", value: Profile{Name: `a\"`, Nick: &nick, Letters: [3]Char{'\\', '"'}}},
		{description: "backslash runs", value: Profile{Name: `x\\"y\`, Scores: []float64{1}}},
		{description: "empty containers", value: Profile{Scores: []float64{}, Friends: []Person{}}},
	}
	for _, testCase := range testCases {
		literal := Encode(testCase.value)
		var actual Profile
		require.NoError(t, Decode(literal, &actual), testCase.description)
		assert.Equal(t, testCase.value, actual, testCase.description)
	}
}

func TestEncodeDecode_FixedShape(t *testing.T) {
	route := Route{Name: "r1", Stops: []coordinate{newCoordinate(52.1, 21.0), newCoordinate(-1, 0.5)}}
	literal := Encode(route)
	assert.Equal(t, `{"Name":"r1","Stops":["{52.1 21}","{-1 0.5}"]}`, literal)

	var actual Route
	require.NoError(t, Decode(`{"Name":"r1","Stops":[{"lat":52.1,"lng":21.0},{"lng":0.5,"lat":-1}]}`, &actual))
	assert.Equal(t, route, actual)
}

func TestEncodeDecode_BackslashQuote(t *testing.T) {
	input := Person{Name: `a\"`, Surname: "Smith"}
	literal := Encode(input)
	assert.Equal(t, `{"name":"a\\\"","surname":"Smith"}`, literal)
	var actual Person
	require.NoError(t, Decode(literal, &actual))
	assert.Equal(t, input, actual)
}

func TestDecode_RenderedShapeElement(t *testing.T) {
	literal := Encode(Profile{Friends: []Person{{Name: "A", Surname: "B"}}})
	assert.Contains(t, literal, `"Friends":["{A B}"]`)
	var actual Profile
	err := Decode(literal, &actual)
	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, `"{A B}"`, convErr.Token)
}

func TestDecode_InvalidTarget(t *testing.T) {
	var person Person
	var nilPtr *Person
	for _, dest := range []interface{}{nil, person, nilPtr} {
		err := Decode(`{}`, dest)
		assert.True(t, errors.Is(err, ErrInvalidTarget))
		var mapperErr *MapperError
		assert.False(t, errors.As(err, &mapperErr))
	}
}

func TestDecode_Errors(t *testing.T) {
	actual := Profile{Name: "keep"}
	err := Decode(`{"ID":"x","Name":"new"}`, &actual)
	require.Error(t, err)

	var mapperErr *MapperError
	require.True(t, errors.As(err, &mapperErr))
	assert.Equal(t, "decode", mapperErr.Op)
	var matErr *MaterializationError
	require.True(t, errors.As(err, &matErr))
	assert.Equal(t, "ID", matErr.Field)
	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, `"x"`, convErr.Token)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Equal(t, Profile{Name: "keep"}, actual)
}

func TestDecode_Options(t *testing.T) {
	t.Run("strict nulls", func(t *testing.T) {
		var actual Profile
		assert.NoError(t, Decode(`{"ID":null,"Nick":null}`, &actual))
		err := Decode(`{"ID":null}`, &actual, WithNullPolicy(StrictNulls))
		var convErr *ConversionError
		assert.True(t, errors.As(err, &convErr))
		assert.NoError(t, Decode(`{"Nick":null}`, &actual, WithNullPolicy(StrictNulls)))
	})

	t.Run("key whitespace", func(t *testing.T) {
		var actual Person
		require.NoError(t, Decode(`{"name  ":"John","  surname ":"Smith"}`, &actual, WithKeyPolicy(StripKeyWhitespace)))
		assert.Equal(t, Person{Name: "John", Surname: "Smith"}, actual)
	})

	t.Run("case format", func(t *testing.T) {
		type account struct {
			UserName string
		}
		literal := Encode(account{UserName: "alice"}, WithCaseFormat(text.CaseFormatLowerCamel))
		assert.Equal(t, `{"userName":"alice"}`, literal)
		var actual account
		require.NoError(t, Decode(literal, &actual, WithCaseFormat(text.CaseFormatLowerCamel)))
		assert.Equal(t, "alice", actual.UserName)
	})

	t.Run("registry", func(t *testing.T) {
		type pair struct {
			key   string
			value int
		}
		registry := shape.NewRegistry()
		require.NoError(t, registry.RegisterConstructor(func(key string, value int) pair { return pair{key: key, value: value} }))
		var actual pair
		require.NoError(t, Decode(`{"key":"k","value":2}`, &actual, WithRegistry(registry)))
		assert.Equal(t, pair{key: "k", value: 2}, actual)
	})

	t.Run("logger", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		var actual Person
		require.NoError(t, Decode(`{"name":"x","age":3}`, &actual, WithLogger(zap.New(core))))
		assert.Equal(t, 1, logs.FilterMessage("jsonmapper: ignored undeclared key").Len())
	})
}

func TestEncode_Options(t *testing.T) {
	type holder struct {
		Value struct{ X int }
	}
	assert.Equal(t, `{"Value":"{1}"}`, Encode(holder{Value: struct{ X int }{X: 1}}))
	assert.Equal(t, `{"Value":"opaque"}`, Encode(holder{}, WithOpaqueRenderer(func(v interface{}) string { return "opaque" })))
	assert.Equal(t, `{}`, Encode(nil))

	data, err := Marshal(&Person{Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"A","surname":""}`, string(data))
}

func TestUnmarshal_StdlibParity(t *testing.T) {
	input := Profile{
		ID:       3,
		Name:     "quote \" and \\ slash\t",
		Scores:   []float64{0.25, 100},
		Friends:  []Person{{Name: "x"}},
		Verified: true,
	}
	type mirror struct {
		ID       int
		Name     string
		Scores   []float64
		Friends  []Person
		Verified bool
	}
	data, err := stdjson.Marshal(mirror{ID: input.ID, Name: input.Name, Scores: input.Scores, Friends: input.Friends, Verified: input.Verified})
	require.NoError(t, err)

	var actual Profile
	require.NoError(t, Unmarshal(data, &actual))
	assert.Equal(t, input, actual)
}

func TestMapper(t *testing.T) {
	mapper := NewMapper[Person]()
	literal := mapper.ToJSON(Person{Name: "John", Surname: "Smith"})
	assert.Equal(t, `{"name":"John","surname":"Smith"}`, literal)

	actual, err := mapper.ToObject(literal)
	require.NoError(t, err)
	assert.Equal(t, Person{Name: "John", Surname: "Smith"}, actual)

	ptrMapper := NewMapper[*Person](WithKeyPolicy(StripKeyWhitespace))
	ptr, err := ptrMapper.ToObject(`{" name ":"Ann"}`)
	require.NoError(t, err)
	require.NotNil(t, ptr)
	assert.Equal(t, "Ann", ptr.Name)
	assert.Equal(t, `{"name":"Ann","surname":""}`, ptrMapper.ToJSON(ptr))

	profiles := NewMapper[Profile]()
	_, err = profiles.ToObject(`{"Letters":["a","b","c","d"]}`)
	var mapperErr *MapperError
	assert.True(t, errors.As(err, &mapperErr))
}
