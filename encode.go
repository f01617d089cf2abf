package bedpe

import (
	"encoding/json"
	"reflect"
)

// Marshal encodes v as JSON with numeric-type awareness: every integer kind
// encodes as a JSON integer, every float kind as a JSON number, and any
// slice or array of numeric values as a plain JSON array of numbers,
// regardless of named types or element widths. All other values fall back to
// encoding/json behavior, failing if unsupported. The downstream cluster
// consumer decodes with a default parser, so the output carries only plain
// JSON numbers.
func Marshal(v interface{}) ([]byte, error) {
	plain, err := normalize(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}

	return json.Marshal(plain)
}

func normalize(v reflect.Value) (interface{}, error) {
	if !v.IsValid() {
		return nil, nil
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}
		return normalize(v.Elem())

	case reflect.Bool:
		return v.Bool(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil

	case reflect.Float32, reflect.Float64:
		return v.Float(), nil

	case reflect.String:
		return v.String(), nil

	case reflect.Slice, reflect.Array:
		out := make([]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := normalize(v.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = elem
		}
		return out, nil

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, &EncodingError{Type: v.Type().String()}
		}
		out := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			val, err := normalize(iter.Value())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = val
		}
		return out, nil

	case reflect.Struct:
		// encoding/json already handles struct fields, tags, and Marshaler
		// implementations.
		return v.Interface(), nil

	default:
		return nil, &EncodingError{Type: v.Type().String()}
	}
}
