// Package format writes CLI payloads as JSON or EDN.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Write emits v in the requested format ("json" by default, or "edn").
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return writeJSON(w, v, pretty)
	case "edn":
		return writeEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// writeEDN targets the safe EDN subset our payloads need: maps, vectors,
// strings, numbers, booleans and nil. Structs are routed through JSON
// first so json tags keep naming consistent across both formats.
func writeEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := ednEncoder{pretty: pretty}
	enc.value(&buf, x, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

type ednEncoder struct {
	pretty bool
}

func (e ednEncoder) pad(buf *bytes.Buffer, level int) {
	buf.WriteString(strings.Repeat("  ", level))
}

func (e ednEncoder) value(buf *bytes.Buffer, v any, level int) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case string:
		buf.WriteString(strconv.Quote(t))
	case float64:
		// JSON numbers arrive as float64; print integral values as ints.
		if float64(int64(t)) == t {
			buf.WriteString(strconv.FormatInt(int64(t), 10))
			return
		}
		buf.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		e.seq(buf, t, level)
	case map[string]any:
		e.mapping(buf, t, level)
	default:
		buf.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

func (e ednEncoder) seq(buf *bytes.Buffer, xs []any, level int) {
	buf.WriteByte('[')
	for i, it := range xs {
		if e.pretty {
			buf.WriteByte('\n')
			e.pad(buf, level+1)
		} else if i > 0 {
			buf.WriteByte(' ')
		}
		e.value(buf, it, level+1)
	}
	if e.pretty && len(xs) > 0 {
		buf.WriteByte('\n')
		e.pad(buf, level)
	}
	buf.WriteByte(']')
}

func (e ednEncoder) mapping(buf *bytes.Buffer, m map[string]any, level int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, k := range keys {
		if e.pretty {
			buf.WriteByte('\n')
			e.pad(buf, level+1)
		} else if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteByte(':')
		buf.WriteString(strings.ReplaceAll(strings.TrimSpace(k), " ", "-"))
		buf.WriteByte(' ')
		e.value(buf, m[k], level+1)
	}
	if e.pretty && len(keys) > 0 {
		buf.WriteByte('\n')
		e.pad(buf, level)
	}
	buf.WriteByte('}')
}
