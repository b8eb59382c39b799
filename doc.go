// Package jsonmapper converts between Go structs and compact JSON object literals.
//
// Struct types are introspected once per case format into shapes. Mutable shapes
// are built from a zero value with exported fields set individually, fixed shapes
// are built with a registered positional constructor (see RegisterConstructor).
//
// Encoding never fails, decoding reports conversion and materialization errors
// wrapped with MapperError:
//
//	type Person struct {
//		Name    string `json:"name"`
//		Surname string `json:"surname"`
//	}
//
//	var p Person
//	err := jsonmapper.Decode(`{"name":"John","surname":"Smith"}`, &p)
//	literal := jsonmapper.Encode(p) // {"name":"John","surname":"Smith"}
package jsonmapper
