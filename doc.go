/*
Package islandjson parses, builds and prints JSON value trees.

In contrast to encoding/json the package is centered around an explicit
value model: every JSON datum is a *Value with a fixed Kind, and objects
keep their members in insertion order. Trees can be read from text with
Parse, assembled by hand with the constructors, modified through the
container operations and written back out with Print.

Value fulfills the json.Marshaler/Unmarshaler interfaces.
*/
package islandjson // import "github.com/inumerics/islandjson"
