package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Record is one catalog entry with every value rendered as text. A field
// present with an empty value is distinguished from an absent field.
type Record struct {
	fields map[string]string
}

// NewRecord builds a Record from already-textual fields
func NewRecord(fields map[string]string) Record {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return Record{fields: out}
}

// Lookup returns the raw value and whether the field is present
func (r Record) Lookup(field string) (string, bool) {
	v, ok := r.fields[field]
	return v, ok
}

// Get returns the field value, "" when absent
func (r Record) Get(field string) string {
	return r.fields[field]
}

// Has reports whether the field is present with a non-blank value
func (r Record) Has(field string) bool {
	return strings.TrimSpace(r.fields[field]) != ""
}

// first returns the first present value among the given aliases
func (r Record) first(fields ...string) string {
	for _, f := range fields {
		if v, ok := r.fields[f]; ok {
			return v
		}
	}
	return ""
}

// Keys returns the field names in sorted order
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizeRecord turns a decoded open-schema object into a Record. A lower
// case "name" is promoted to "Name" when no "Name" is present.
func normalizeRecord(raw map[string]interface{}) Record {
	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		text, ok := valueText(v)
		if !ok {
			continue
		}
		fields[k] = text
	}

	if _, ok := fields["Name"]; !ok {
		if v, ok := fields["name"]; ok {
			fields["Name"] = v
			delete(fields, "name")
		}
	}

	return Record{fields: fields}
}

func valueText(v interface{}) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return strconv.FormatInt(i, 10), true
		}
		if f, err := t.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64), true
		}
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t), true
		}
		return string(data), true
	}
}
