// Package script carries the native-call protocol of the Rill runtime:
// the tagged value that crosses the host boundary, the function shape a
// native module implements, and the table such functions are registered
// into. Native modules depend on this package alone; the interpreter is
// on the other side of it.
package script

import (
	"fmt"
	"strconv"
)

// Tag discriminates the variants of a Value.
type Tag uint8

const (
	TagNull Tag = iota
	TagBool
	TagInt
	TagFloat
	TagStr
)

func (t Tag) String() string {
	switch t {
	case TagNull:
		return "null"
	case TagBool:
		return "bool"
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagStr:
		return "str"
	default:
		return "tag(" + strconv.Itoa(int(t)) + ")"
	}
}

// Value is one dynamically typed runtime value. The zero value is null.
type Value struct {
	Tag  Tag
	Data any
}

// Null is the runtime's unit value.
var Null = Value{Tag: TagNull}

func Bool(b bool) Value     { return Value{Tag: TagBool, Data: b} }
func Int(n int64) Value     { return Value{Tag: TagInt, Data: n} }
func Float(f float64) Value { return Value{Tag: TagFloat, Data: f} }
func Str(s string) Value    { return Value{Tag: TagStr, Data: s} }

// TypeError reports a conversion attempted on the wrong variant.
type TypeError struct {
	Want Tag
	Got  Tag
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("want %s, got %s", e.Want, e.Got)
}

// AsBool returns the bool payload, or a TypeError for any other variant.
func (v Value) AsBool() (bool, error) {
	if v.Tag != TagBool {
		return false, &TypeError{Want: TagBool, Got: v.Tag}
	}
	return v.Data.(bool), nil
}

// AsInt returns the int payload. There is no implicit float conversion;
// the runtime keeps the two numeric variants distinct.
func (v Value) AsInt() (int64, error) {
	if v.Tag != TagInt {
		return 0, &TypeError{Want: TagInt, Got: v.Tag}
	}
	return v.Data.(int64), nil
}

// AsFloat returns the float payload, or a TypeError for any other variant.
func (v Value) AsFloat() (float64, error) {
	if v.Tag != TagFloat {
		return 0, &TypeError{Want: TagFloat, Got: v.Tag}
	}
	return v.Data.(float64), nil
}

// AsStr returns the string payload, or a TypeError for any other variant.
func (v Value) AsStr() (string, error) {
	if v.Tag != TagStr {
		return "", &TypeError{Want: TagStr, Got: v.Tag}
	}
	return v.Data.(string), nil
}

// String renders the value the way the runtime prints it. Strings are
// quoted so their variant stays visible in diagnostics.
func (v Value) String() string {
	switch v.Tag {
	case TagNull:
		return "null"
	case TagBool:
		return strconv.FormatBool(v.Data.(bool))
	case TagInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case TagFloat:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case TagStr:
		return strconv.Quote(v.Data.(string))
	default:
		return fmt.Sprintf("%s(%v)", v.Tag, v.Data)
	}
}
