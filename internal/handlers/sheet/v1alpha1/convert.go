package v1alpha1

import (
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/vop-sheet/internal/entities"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/services/sheet"
)

// request reads typed fields from a request struct. Type mismatches are
// collected and reported together by err.
type request struct {
	fields map[string]*structpb.Value
	vb     *errors.ValidationBuilder
	bad    bool
}

func newRequest(req *structpb.Struct) *request {
	r := &request{vb: errors.NewValidationBuilder()}
	if req != nil {
		r.fields = req.GetFields()
	}
	return r
}

func (r *request) invalid(name, message string) {
	r.vb.Field(name, message)
	r.bad = true
}

func (r *request) err() error {
	if !r.bad {
		return nil
	}
	return r.vb.Build()
}

func (r *request) has(name string) bool {
	v, ok := r.fields[name]
	if !ok {
		return false
	}
	_, isNull := v.GetKind().(*structpb.Value_NullValue)
	return !isNull
}

func (r *request) str(name string) string {
	if !r.has(name) {
		return ""
	}
	v, ok := r.fields[name].GetKind().(*structpb.Value_StringValue)
	if !ok {
		r.invalid(name, "must be a string")
		return ""
	}
	return v.StringValue
}

func (r *request) required(name string) string {
	s := r.str(name)
	if s == "" && !r.has(name) {
		r.invalid(name, "is required")
	}
	return s
}

func (r *request) boolean(name string) bool {
	if !r.has(name) {
		return false
	}
	v, ok := r.fields[name].GetKind().(*structpb.Value_BoolValue)
	if !ok {
		r.invalid(name, "must be a boolean")
		return false
	}
	return v.BoolValue
}

func (r *request) integer(name string) int {
	if !r.has(name) {
		r.invalid(name, "is required")
		return 0
	}
	n, ok := r.optionalInt(name)
	if !ok {
		return 0
	}
	return *n
}

// optionalInt returns nil when name is absent. ok is false on a type error.
func (r *request) optionalInt(name string) (n *int, ok bool) {
	if !r.has(name) {
		return nil, true
	}
	v, isNum := r.fields[name].GetKind().(*structpb.Value_NumberValue)
	if !isNum || v.NumberValue != math.Trunc(v.NumberValue) ||
		math.IsInf(v.NumberValue, 0) {
		r.invalid(name, "must be an integer")
		return nil, false
	}
	i := int(v.NumberValue)
	return &i, true
}

func (r *request) strings(name string) []string {
	if !r.has(name) {
		return nil
	}
	list, ok := r.fields[name].GetKind().(*structpb.Value_ListValue)
	if !ok {
		r.invalid(name, "must be a list of strings")
		return nil
	}
	out := make([]string, 0, len(list.ListValue.GetValues()))
	for _, v := range list.ListValue.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			r.invalid(name, "must be a list of strings")
			return nil
		}
		out = append(out, s.StringValue)
	}
	return out
}

func (r *request) stringMap(name string) map[string]string {
	if !r.has(name) {
		return nil
	}
	obj, ok := r.fields[name].GetKind().(*structpb.Value_StructValue)
	if !ok {
		r.invalid(name, "must be an object of strings")
		return nil
	}
	out := make(map[string]string, len(obj.StructValue.GetFields()))
	for k, v := range obj.StructValue.GetFields() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			r.invalid(name, "must be an object of strings")
			return nil
		}
		out[k] = s.StringValue
	}
	return out
}

// value returns the field as a plain Go value: string, float64, bool, nil,
// []interface{} or map[string]interface{}
func (r *request) value(name string) interface{} {
	v, ok := r.fields[name]
	if !ok {
		return nil
	}
	return v.AsInterface()
}

// rawJSON returns the field re-encoded as JSON. A string field is taken to
// already hold JSON text.
func (r *request) rawJSON(name string) []byte {
	v, ok := r.fields[name]
	if !ok {
		return nil
	}
	if s, isString := v.GetKind().(*structpb.Value_StringValue); isString {
		return []byte(s.StringValue)
	}
	data, err := protojson.Marshal(v)
	if err != nil {
		r.invalid(name, "must be JSON")
		return nil
	}
	return data
}

func (r *request) collection(name string) entities.Collection {
	return entities.Collection(r.required(name))
}

// characterValue renders c as a struct value using its JSON form
func characterValue(c *entities.Character) (*structpb.Value, error) {
	data, err := entities.EncodeCharacter(c, false)
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to convert character")
	}
	return structpb.NewStructValue(out), nil
}

// characterResponse builds {"character": ...} plus any extra fields
func characterResponse(c *entities.Character, extra map[string]*structpb.Value) (*structpb.Struct, error) {
	value, err := characterValue(c)
	if err != nil {
		return nil, err
	}
	fields := map[string]*structpb.Value{"character": value}
	for k, v := range extra {
		fields[k] = v
	}
	return &structpb.Struct{Fields: fields}, nil
}

func stringList(values []string) *structpb.Value {
	list := make([]*structpb.Value, 0, len(values))
	for _, v := range values {
		list = append(list, structpb.NewStringValue(v))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: list})
}

func optionsValue(options []sheet.Option) *structpb.Value {
	list := make([]*structpb.Value, 0, len(options))
	for _, o := range options {
		list = append(list, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"key":   structpb.NewStringValue(o.Key),
			"label": structpb.NewStringValue(o.Label),
		}}))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: list})
}

func filtersValue(filters []sheet.FilterState) *structpb.Value {
	list := make([]*structpb.Value, 0, len(filters))
	for _, f := range filters {
		list = append(list, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"name":    structpb.NewStringValue(f.Name),
			"label":   structpb.NewStringValue(f.Label),
			"value":   structpb.NewStringValue(f.Value),
			"choices": stringList(f.Choices),
		}}))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: list})
}
