package script

import "fmt"

// NativeFn is the call shape the runtime expects of a native operation:
// positional arguments in, one value or one error out. Errors surface in
// the script as runtime errors carrying the message text.
type NativeFn func(args []Value) (Value, error)

// Table is a registry of native operations keyed by their published
// names. A module's register step writes its entries directly; a later
// registration under the same name replaces the earlier one.
type Table map[string]NativeFn

// Call invokes a registered operation by name.
func (t Table) Call(name string, args ...Value) (Value, error) {
	fn, ok := t[name]
	if !ok {
		return Null, fmt.Errorf("unknown native function %q", name)
	}
	return fn(args)
}
