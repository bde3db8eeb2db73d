package tagattrs

import (
	"fmt"
	"strings"
)

// Serialize renders attrs as a fragment ready to splice after a tag name:
//
//	"<card" + Serialize(attrs) + ">"
//
// Each pair becomes key="value" with key and value trimmed; pairs are
// separated by one space and the result starts with one space. Entries whose
// key trims to empty are dropped, empty values are kept. Values are not
// escaped, so an embedded `"` is written as is. An empty or nil mapping
// gives "".
func Serialize(attrs *Attributes) string {
	var w attrWriter
	for k, v := range attrs.All() {
		w.add(k, v)
	}
	return w.String()
}

// SerializeMap is Serialize for a plain map, written in sorted key order.
func SerializeMap(m map[string]string) string {
	var w attrWriter
	for _, k := range sortedKeys(m) {
		w.add(k, m[k])
	}
	return w.String()
}

// SerializeAny accepts any value and never fails. Supported inputs are
// *Attributes, Attributes, []Attribute, map[string]string, map[string]any
// and map[string]*string; anything else, including nil, gives "". Nil
// values inside a map are skipped and other values go through fmt.Sprint.
func SerializeAny(v any) string {
	switch t := v.(type) {
	case *Attributes:
		return Serialize(t)
	case Attributes:
		return Serialize(&t)
	case []Attribute:
		var w attrWriter
		for _, a := range t {
			w.add(a.Name, a.Value)
		}
		return w.String()
	case map[string]string:
		return SerializeMap(t)
	case map[string]*string:
		var w attrWriter
		for _, k := range sortedKeys(t) {
			if t[k] != nil {
				w.add(k, *t[k])
			}
		}
		return w.String()
	case map[string]any:
		var w attrWriter
		for _, k := range sortedKeys(t) {
			if t[k] != nil {
				w.add(k, fmt.Sprint(t[k]))
			}
		}
		return w.String()
	default:
		return ""
	}
}

type attrWriter struct {
	b strings.Builder
}

func (w *attrWriter) add(key, value string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	w.b.WriteByte(' ')
	w.b.WriteString(key)
	w.b.WriteString(`="`)
	w.b.WriteString(strings.TrimSpace(value))
	w.b.WriteByte('"')
}

func (w *attrWriter) String() string { return w.b.String() }
