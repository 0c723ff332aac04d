package element

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// ErrKeyCase is wrapped by KeyCaseError.
var ErrKeyCase = errors.New("key matches a field only by case")

// KeyCaseError reports an object key that encoding/json would fold onto a
// field but a renderer would ignore, such as "DATA" for "data".
type KeyCaseError struct {
	Path string
	Key  string
	Want string
}

func (e *KeyCaseError) Error() string {
	at := e.Path
	if at == "" {
		at = "document"
	}
	return fmt.Sprintf("%s: key %q should be spelled %q", at, e.Key, e.Want)
}

func (e *KeyCaseError) Unwrap() error { return ErrKeyCase }

// Decode is json.Unmarshal with exact key matching. Keys that name no field
// are ignored as before; a key that differs from a field name only in case is
// a *KeyCaseError and v is left untouched.
func Decode(data []byte, v any) error {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Pointer {
		return json.Unmarshal(data, v)
	}
	if err := checkKeys(data, t.Elem(), "", false); err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// CheckKeyCase runs Decode's key check against t without decoding.
func CheckKeyCase(data []byte, t reflect.Type) error {
	return checkKeys(data, t, "", false)
}

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// checkKeys walks plain structs, slices and maps. Types with their own
// UnmarshalJSON check themselves, except at the top level where the caller is
// that method.
func checkKeys(data []byte, t reflect.Type, path string, nested bool) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if nested && reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if json.Unmarshal(data, &obj) != nil {
			return nil
		}
		fields := fieldsOf(t)
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			ft, ok := fields.exact[k]
			if !ok {
				if want, ok := fields.folded[strings.ToLower(k)]; ok {
					return &KeyCaseError{Path: path, Key: k, Want: want}
				}
				continue
			}
			if err := checkKeys(obj[k], ft, joinPath(path, k), true); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		var items []json.RawMessage
		if json.Unmarshal(data, &items) != nil {
			return nil
		}
		for i, it := range items {
			if err := checkKeys(it, t.Elem(), fmt.Sprintf("%s[%d]", path, i), true); err != nil {
				return err
			}
		}
	case reflect.Map:
		var obj map[string]json.RawMessage
		if json.Unmarshal(data, &obj) != nil {
			return nil
		}
		for k, v := range obj {
			if err := checkKeys(v, t.Elem(), joinPath(path, k), true); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

type fieldSet struct {
	exact  map[string]reflect.Type
	folded map[string]string
}

var fieldCache sync.Map // reflect.Type -> fieldSet

func fieldsOf(t reflect.Type) fieldSet {
	if fs, ok := fieldCache.Load(t); ok {
		return fs.(fieldSet)
	}
	fs := fieldSet{exact: map[string]reflect.Type{}, folded: map[string]string{}}
	collectFields(t, fs)
	fieldCache.Store(t, fs)
	return fs
}

// collectFields follows encoding/json's naming: the tag name when set, the Go
// name otherwise, with embedded structs promoted unless a shallower field
// already took the name.
func collectFields(t reflect.Type, fs fieldSet) {
	var embedded []reflect.Type
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if f.Anonymous && name == "" && ft.Kind() == reflect.Struct {
			embedded = append(embedded, ft)
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fs.exact[name] = f.Type
		fs.folded[strings.ToLower(name)] = name
	}
	for _, et := range embedded {
		inner := fieldSet{exact: map[string]reflect.Type{}, folded: map[string]string{}}
		collectFields(et, inner)
		for name, ft := range inner.exact {
			if _, taken := fs.exact[name]; !taken {
				fs.exact[name] = ft
				fs.folded[strings.ToLower(name)] = name
			}
		}
	}
}
