package islandjson

import (
	"github.com/pkg/errors"
)

// Kind is an enum for any JSON-type. The zero value signals invalid.
type Kind uint8

// Kinds to compare values of a tree with.
const (
	Invalid Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Number:
		return "Number"
	case String:
		return "String"
	case Array:
		return "Array"
	case Object:
		return "Object"
	default:
		return "Invalid"
	}
}

// Value is one node of a JSON tree. Its kind is fixed at construction and
// never changes; mutation happens only through the container operations.
// Depending on its kind it holds a different payload:
//
//	Kind	payload
//	Null	nil
//	Bool	bool
//	Number	float64
//	String	string
//	Array	[]*Value
//	Object	[]Member
//
// A Value owns every Value reachable through it. Appending a Value to an
// array or setting it as an object member transfers it to that container;
// the caller must not insert the same Value twice or into two containers.
type Value struct {
	kind  Kind
	value interface{}
}

// Member is one key/value pair of an object. Members keep the order in
// which their keys were first inserted; this order is a contract, printing
// and iteration depend on it.
type Member struct {
	Key   string
	Value *Value
}

// NewObject creates an empty JSON object.
func NewObject() *Value {
	return &Value{kind: Object, value: []Member(nil)}
}

// NewArray creates an empty JSON array.
func NewArray() *Value {
	return &Value{kind: Array, value: []*Value(nil)}
}

// NewString creates a JSON string holding s. s must be UTF-8 encoded text.
func NewString(s string) *Value {
	return &Value{kind: String, value: s}
}

// NewNumber creates a JSON number holding f.
func NewNumber(f float64) *Value {
	return &Value{kind: Number, value: f}
}

// NewBool creates a JSON boolean holding b.
func NewBool(b bool) *Value {
	return &Value{kind: Bool, value: b}
}

// NewNull creates a JSON null.
func NewNull() *Value {
	return &Value{kind: Null}
}

// Kind returns the kind of a value.
func (v *Value) Kind() Kind {
	if v == nil {
		return Invalid
	}
	return v.kind
}

// assertKind reports whether the payload matches the kind tag.
func assertKind(v *Value) bool {
	switch v.value.(type) {
	case nil:
		return v.kind == Null || v.kind == Invalid
	case bool:
		return v.kind == Bool
	case float64:
		return v.kind == Number
	case string:
		return v.kind == String
	case []*Value:
		return v.kind == Array
	case []Member:
		return v.kind == Object
	default:
		return false
	}
}

// Set adds or replaces the member key of the object v. The inserted value
// is owned by the object afterwards. A key already present keeps its
// position and its prior value is released.
func (v *Value) Set(key string, val *Value) error {
	if v.Kind() != Object {
		return errors.Wrapf(ErrNotObject, "is %s", v.Kind())
	}
	if val == nil {
		val = NewNull()
	}
	mm := v.value.([]Member)
	for i := range mm {
		if mm[i].Key == key {
			mm[i].Value.Release()
			mm[i].Value = val
			return nil
		}
	}
	v.value = append(mm, Member{Key: key, Value: val})
	return nil
}

// Get returns the value stored under key. The second return is false if
// the key is absent or v is not an object.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != Object {
		return nil, false
	}
	for _, m := range v.value.([]Member) {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Remove deletes the member key from the object v, releasing its value.
// It reports whether a member was removed; an absent key is not an error.
func (v *Value) Remove(key string) bool {
	if v.Kind() != Object {
		return false
	}
	mm := v.value.([]Member)
	for i := range mm {
		if mm[i].Key == key {
			mm[i].Value.Release()
			v.value = append(mm[:i], mm[i+1:]...)
			return true
		}
	}
	return false
}

// Members returns the members of the object v in insertion order. The
// returned slice is the object's own storage and must not be modified.
func (v *Value) Members() []Member {
	if v.Kind() != Object {
		return nil
	}
	return v.value.([]Member)
}

// Keys returns all keys of the object v in insertion order, or nil if v is
// not an object. An empty object yields a non-nil slice of length 0.
func (v *Value) Keys() []string {
	if v.Kind() != Object {
		return nil
	}
	mm := v.value.([]Member)
	ss := make([]string, len(mm))
	for i, m := range mm {
		ss[i] = m.Key
	}
	return ss
}

// Append adds val to the end of the array v, transferring ownership.
func (v *Value) Append(val *Value) error {
	if v.Kind() != Array {
		return errors.Wrapf(ErrNotArray, "is %s", v.Kind())
	}
	if val == nil {
		val = NewNull()
	}
	v.value = append(v.value.([]*Value), val)
	return nil
}

// Index returns the array element at i. The second return is false if i is
// out of range or v is not an array.
func (v *Value) Index(i int) (*Value, bool) {
	if v.Kind() != Array {
		return nil, false
	}
	nn := v.value.([]*Value)
	if i < 0 || i >= len(nn) {
		return nil, false
	}
	return nn[i], true
}

// RemoveIndex deletes the array element at i, releasing it and shifting
// later elements down by one. It reports whether an element was removed;
// an out-of-range index leaves the array unchanged.
func (v *Value) RemoveIndex(i int) bool {
	if v.Kind() != Array {
		return false
	}
	nn := v.value.([]*Value)
	if i < 0 || i >= len(nn) {
		return false
	}
	nn[i].Release()
	v.value = append(nn[:i], nn[i+1:]...)
	return true
}

// Len gives the number of elements of an array or members of an object.
func (v *Value) Len() int {
	switch v.Kind() {
	case Array:
		return len(v.value.([]*Value))
	case Object:
		return len(v.value.([]Member))
	default:
		return 0
	}
}

// Total returns the number of values held by v including itself.
func (v *Value) Total() int {
	switch v.Kind() {
	case Array:
		i := 1
		for _, c := range v.value.([]*Value) {
			i += c.Total()
		}
		return i
	case Object:
		i := 1
		for _, m := range v.value.([]Member) {
			i += m.Value.Total()
		}
		return i
	case Invalid:
		return 0
	default:
		return 1
	}
}

// StringValue returns the text of a string value.
func (v *Value) StringValue() (string, bool) {
	if v.Kind() != String {
		return "", false
	}
	return v.value.(string), true
}

// NumberValue returns the float of a number value.
func (v *Value) NumberValue() (float64, bool) {
	if v.Kind() != Number {
		return 0, false
	}
	return v.value.(float64), true
}

// BoolValue returns the payload of a boolean value.
func (v *Value) BoolValue() (bool, bool) {
	if v.Kind() != Bool {
		return false, false
	}
	return v.value.(bool), true
}

// Release detaches all values owned by v, leaving containers empty and
// scalars untouched. The garbage collector reclaims detached subtrees;
// Release exists for callers that want to drop a large tree eagerly while
// keeping the container itself usable.
func (v *Value) Release() {
	if v == nil {
		return
	}
	switch v.kind {
	case Array:
		v.value = []*Value(nil)
	case Object:
		v.value = []Member(nil)
	}
}

// Interface creates the Go representation of a tree. Like encoding/json
// the possible underlying types of the first return parameter are:
//
//	Object    map[string]interface{}
//	Array     []interface{}
//	String    string
//	Number    float64
//	Bool      bool
//	Null      nil (with the error being nil too)
func (v *Value) Interface() (interface{}, error) {
	if v == nil {
		return nil, errors.New("nil value")
	}
	if !assertKind(v) {
		return nil, errors.Errorf("internal kind mismatch; want %s, got %T",
			v.kind, v.value)
	}
	switch v.kind {
	case Object:
		m := make(map[string]interface{}, v.Len())
		for _, f := range v.value.([]Member) {
			itf, err := f.Value.Interface()
			if err != nil {
				return nil, err
			}
			m[f.Key] = itf
		}
		return m, nil
	case Array:
		s := make([]interface{}, 0, v.Len())
		for _, f := range v.value.([]*Value) {
			itf, err := f.Interface()
			if err != nil {
				return nil, err
			}
			s = append(s, itf)
		}
		return s, nil
	default:
		return v.value, nil
	}
}

// Equal compares two trees and all their children. Arrays compare in
// order; objects compare by key lookup so that member order does not
// matter for equality even though it is preserved for printing.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Array:
		an, bn := a.value.([]*Value), b.value.([]*Value)
		if len(an) != len(bn) {
			return false
		}
		for i := range an {
			if !Equal(an[i], bn[i]) {
				return false
			}
		}
		return true
	case Object:
		am, bm := a.value.([]Member), b.value.([]Member)
		if len(am) != len(bm) {
			return false
		}
		for _, m := range am {
			o, ok := b.Get(m.Key)
			if !ok || !Equal(m.Value, o) {
				return false
			}
		}
		return true
	default:
		return a.value == b.value
	}
}
