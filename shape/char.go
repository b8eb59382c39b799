package shape

import (
	stdjson "encoding/json"
	"reflect"
)

// Char represents a single character field, encoded as a one character JSON string
type Char rune

func (c Char) String() string {
	return string(rune(c))
}

var (
	charType       = reflect.TypeOf(Char(0))
	rawMessageType = reflect.TypeOf(stdjson.RawMessage{})
)
