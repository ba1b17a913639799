// Package format renders CLI command output as JSON (default) or EDN.
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

func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
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

// WriteEDN writes an EDN rendering of v covering the shapes CLI payloads use
// (maps, vectors, strings, numbers, booleans, nil). Structs are first passed
// through JSON so field naming follows the json tags.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	var buf bytes.Buffer
	writeEDNValue(&buf, x, 0, pretty)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func writeEDNValue(buf *bytes.Buffer, v any, level int, pretty bool) {
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
		buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				ednSep(buf, level+1, pretty)
			} else if pretty {
				ednIndent(buf, level+1)
			}
			writeEDNValue(buf, item, level+1, pretty)
		}
		if pretty && len(t) > 0 {
			ednIndent(buf, level)
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				ednSep(buf, level+1, pretty)
			} else if pretty {
				ednIndent(buf, level+1)
			}
			buf.WriteByte(':')
			buf.WriteString(strings.ReplaceAll(strings.TrimSpace(k), " ", "-"))
			buf.WriteByte(' ')
			writeEDNValue(buf, t[k], level+1, pretty)
		}
		if pretty && len(keys) > 0 {
			ednIndent(buf, level)
		}
		buf.WriteByte('}')
	default:
		buf.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

func ednSep(buf *bytes.Buffer, level int, pretty bool) {
	if pretty {
		ednIndent(buf, level)
		return
	}
	buf.WriteByte(' ')
}

func ednIndent(buf *bytes.Buffer, level int) {
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat("  ", level))
}
