package series

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/derickschaefer/chartspec/pkg/element"
)

// marshalTagged encodes fields as a flat object with "type" as its first key.
func marshalTagged(typ string, fields any) ([]byte, error) {
	body, err := element.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("series %s: %w", typ, err)
	}
	out := make([]byte, 0, len(body)+len(typ)+10)
	out = append(out, `{"type":`...)
	out = strconv.AppendQuote(out, typ)
	if len(body) > 2 {
		out = append(out, ',')
		out = append(out, body[1:]...)
	} else {
		out = append(out, '}')
	}
	return out, nil
}

// unmarshalTagged checks that data carries typ under "type" and decodes the
// remaining keys into fields, a pointer to a variant's field struct. Keys must
// match field names exactly. On failure fields is left unchanged.
func unmarshalTagged(data []byte, typ string, fields any) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return &DecodeError{Variant: typ, Err: err}
	}
	raw, ok := obj["type"]
	if !ok || string(raw) == "null" {
		return &DecodeError{Variant: typ, Field: "type", Err: ErrMissingType}
	}
	var got string
	if err := json.Unmarshal(raw, &got); err != nil {
		return &DecodeError{Variant: typ, Field: "type", Err: fmt.Errorf("%w: type is not a string", ErrMissingType)}
	}
	if got != typ {
		return &DecodeError{Variant: typ, Field: "type", Err: fmt.Errorf("unexpected type %q", got)}
	}
	for k := range obj {
		if k != "type" && strings.EqualFold(k, "type") {
			return &DecodeError{Variant: typ, Field: k, Err: &element.KeyCaseError{Key: k, Want: "type"}}
		}
	}

	dst := reflect.ValueOf(fields).Elem()
	if err := element.CheckKeyCase(data, dst.Type()); err != nil {
		var kc *element.KeyCaseError
		if errors.As(err, &kc) {
			return &DecodeError{Variant: typ, Field: joinField(kc.Path, kc.Key), Err: err}
		}
		return &DecodeError{Variant: typ, Err: err}
	}
	tmp := reflect.New(dst.Type())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		return &DecodeError{Variant: typ, Field: failingField(data, dst.Type()), Err: err}
	}
	dst.Set(tmp.Elem())
	return nil
}

func joinField(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// failingField finds the first key of data that does not decode into a fresh
// value of type t.
func failingField(data []byte, t reflect.Type) string {
	var obj map[string]json.RawMessage
	if json.Unmarshal(data, &obj) != nil {
		return ""
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		one, err := json.Marshal(map[string]json.RawMessage{k: obj[k]})
		if err != nil {
			continue
		}
		if json.Unmarshal(one, reflect.New(t).Interface()) != nil {
			return k
		}
	}
	return ""
}
