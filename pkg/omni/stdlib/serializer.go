package stdlib

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

func (l *Library) registerSerializer() {
	l.register("Serializer.toJSON", func(args []evaluator.Value) evaluator.Value {
		data, err := json.MarshalIndent(valueToAny(arg(args, 0)), "", "  ")
		if err != nil {
			return &evaluator.String{Value: "null"}
		}
		return &evaluator.String{Value: string(data)}
	})

	l.register("Serializer.fromJSON", func(args []evaluator.Value) evaluator.Value {
		return parseJSON(argString(args, 0))
	})

	l.register("Serializer.saveJSON", func(args []evaluator.Value) evaluator.Value {
		data, err := json.MarshalIndent(valueToAny(arg(args, 1)), "", "  ")
		if err != nil {
			return evaluator.FALSE
		}
		return boolValue(os.WriteFile(argString(args, 0), data, 0644) == nil)
	})

	l.register("Serializer.loadJSON", func(args []evaluator.Value) evaluator.Value {
		data, err := os.ReadFile(argString(args, 0))
		if err != nil {
			return evaluator.NULL
		}
		return parseJSON(string(data))
	})

	l.register("Serializer.toYAML", func(args []evaluator.Value) evaluator.Value {
		data, err := yaml.Marshal(valueToAny(arg(args, 0)))
		if err != nil {
			return &evaluator.String{Value: ""}
		}
		return &evaluator.String{Value: string(data)}
	})

	l.register("Serializer.fromYAML", func(args []evaluator.Value) evaluator.Value {
		var decoded any
		if err := yaml.Unmarshal([]byte(argString(args, 0)), &decoded); err != nil {
			return evaluator.NULL
		}
		return anyToValue(decoded)
	})

	l.register("Serializer.saveBinary", func(args []evaluator.Value) evaluator.Value {
		var buf bytes.Buffer
		if err := writeBinaryValue(&buf, arg(args, 1)); err != nil {
			return evaluator.FALSE
		}
		return boolValue(os.WriteFile(argString(args, 0), buf.Bytes(), 0644) == nil)
	})

	l.register("Serializer.loadBinary", func(args []evaluator.Value) evaluator.Value {
		data, err := os.ReadFile(argString(args, 0))
		if err != nil {
			return evaluator.NULL
		}
		val, err := readBinaryValue(bytes.NewReader(data))
		if err != nil {
			return evaluator.NULL
		}
		return val
	})
}

// parseJSON decodes JSON keeping the Int/Double distinction: numbers without
// a fractional part stay integers.
func parseJSON(text string) evaluator.Value {
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()
	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return evaluator.NULL
	}
	return anyToValue(decoded)
}

// valueToAny converts a runtime value to the plain Go shape the JSON and
// YAML encoders expect. Lambdas have no serialized form and become null.
func valueToAny(v evaluator.Value) any {
	switch v := v.(type) {
	case *evaluator.Int:
		return v.Value
	case *evaluator.Double:
		return v.Value
	case *evaluator.Bool:
		return v.Value
	case *evaluator.String:
		return v.Value
	case *evaluator.Array:
		out := make([]any, 0, len(v.Elements))
		for _, e := range v.Elements {
			out = append(out, valueToAny(e))
		}
		return out
	case *evaluator.Object:
		out := make(map[string]any, len(v.Fields))
		for key, val := range v.Fields {
			out[key] = valueToAny(val)
		}
		return out
	default:
		return nil
	}
}

// anyToValue converts decoded JSON/YAML data back into runtime values.
func anyToValue(v any) evaluator.Value {
	switch v := v.(type) {
	case nil:
		return evaluator.NULL
	case bool:
		return boolValue(v)
	case string:
		return &evaluator.String{Value: v}
	case json.Number:
		if n, err := v.Int64(); err == nil && !strings.Contains(v.String(), ".") {
			return &evaluator.Int{Value: n}
		}
		f, _ := v.Float64()
		return &evaluator.Double{Value: f}
	case int:
		return &evaluator.Int{Value: int64(v)}
	case int64:
		return &evaluator.Int{Value: v}
	case float64:
		return &evaluator.Double{Value: v}
	case []any:
		arr := &evaluator.Array{Elements: make([]evaluator.Value, 0, len(v))}
		for _, e := range v {
			arr.Elements = append(arr.Elements, anyToValue(e))
		}
		return arr
	case map[string]any:
		obj := &evaluator.Object{Fields: make(map[string]evaluator.Value, len(v))}
		for key, val := range v {
			obj.Fields[key] = anyToValue(val)
		}
		return obj
	default:
		return evaluator.NULL
	}
}

// Binary tags for the saveBinary/loadBinary format
const (
	binNull   byte = 0
	binInt    byte = 1
	binDouble byte = 2
	binBool   byte = 3
	binString byte = 4
	binArray  byte = 5
	binObject byte = 6
)

func writeBinaryValue(buf *bytes.Buffer, v evaluator.Value) error {
	switch v := v.(type) {
	case *evaluator.Int:
		buf.WriteByte(binInt)
		return binary.Write(buf, binary.LittleEndian, v.Value)
	case *evaluator.Double:
		buf.WriteByte(binDouble)
		return binary.Write(buf, binary.LittleEndian, v.Value)
	case *evaluator.Bool:
		buf.WriteByte(binBool)
		if v.Value {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
		return nil
	case *evaluator.String:
		buf.WriteByte(binString)
		return writeBinaryString(buf, v.Value)
	case *evaluator.Array:
		buf.WriteByte(binArray)
		if err := binary.Write(buf, binary.LittleEndian, int64(len(v.Elements))); err != nil {
			return err
		}
		for _, e := range v.Elements {
			if err := writeBinaryValue(buf, e); err != nil {
				return err
			}
		}
		return nil
	case *evaluator.Object:
		buf.WriteByte(binObject)
		if err := binary.Write(buf, binary.LittleEndian, int64(len(v.Fields))); err != nil {
			return err
		}
		for key, val := range v.Fields {
			if err := writeBinaryString(buf, key); err != nil {
				return err
			}
			if err := writeBinaryValue(buf, val); err != nil {
				return err
			}
		}
		return nil
	default:
		buf.WriteByte(binNull)
		return nil
	}
}

func writeBinaryString(buf *bytes.Buffer, s string) error {
	if err := binary.Write(buf, binary.LittleEndian, int64(len(s))); err != nil {
		return err
	}
	buf.WriteString(s)
	return nil
}

func readBinaryValue(r *bytes.Reader) (evaluator.Value, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case binInt:
		var n int64
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		return &evaluator.Int{Value: n}, nil
	case binDouble:
		var d float64
		if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
			return nil, err
		}
		return &evaluator.Double{Value: d}, nil
	case binBool:
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		return boolValue(b != 0), nil
	case binString:
		s, err := readBinaryString(r)
		if err != nil {
			return nil, err
		}
		return &evaluator.String{Value: s}, nil
	case binArray:
		var count int64
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, err
		}
		arr := &evaluator.Array{}
		for i := int64(0); i < count; i++ {
			elem, err := readBinaryValue(r)
			if err != nil {
				return nil, err
			}
			arr.Elements = append(arr.Elements, elem)
		}
		return arr, nil
	case binObject:
		var count int64
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, err
		}
		obj := &evaluator.Object{Fields: make(map[string]evaluator.Value)}
		for i := int64(0); i < count; i++ {
			key, err := readBinaryString(r)
			if err != nil {
				return nil, err
			}
			val, err := readBinaryValue(r)
			if err != nil {
				return nil, err
			}
			obj.Fields[key] = val
		}
		return obj, nil
	default:
		return evaluator.NULL, nil
	}
}

func readBinaryString(r *bytes.Reader) (string, error) {
	var length int64
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return "", err
	}
	if length < 0 || length > int64(r.Len()) {
		return "", os.ErrInvalid
	}
	buf := make([]byte, length)
	if _, err := r.Read(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
