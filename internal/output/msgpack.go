package output

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// WriteMsgpack encodes v with the json field names so both binary and
// JSON consumers see the same keys.
func WriteMsgpack(w io.Writer, v any) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	enc.UseCompactInts(true)
	return enc.Encode(v)
}
