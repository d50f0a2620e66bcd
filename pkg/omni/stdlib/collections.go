package stdlib

import (
	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

// List and Map built-ins are immutable-style: operations that change a
// container return the updated copy and leave the argument untouched.
func (l *Library) registerCollections() {
	l.register("List.new", func(args []evaluator.Value) evaluator.Value {
		return &evaluator.Array{}
	})

	l.register("List.add", func(args []evaluator.Value) evaluator.Value {
		result := copyArray(arg(args, 0))
		result.Elements = append(result.Elements, evaluator.Copy(arg(args, 1)))
		return result
	})

	l.register("List.get", func(args []evaluator.Value) evaluator.Value {
		if list, ok := arg(args, 0).(*evaluator.Array); ok {
			idx := int(argInt(args, 1))
			if idx >= 0 && idx < len(list.Elements) {
				return list.Elements[idx]
			}
		}
		return evaluator.NULL
	})

	l.register("List.set", func(args []evaluator.Value) evaluator.Value {
		result := copyArray(arg(args, 0))
		idx := int(argInt(args, 1))
		if idx >= 0 && idx < len(result.Elements) {
			result.Elements[idx] = evaluator.Copy(arg(args, 2))
		}
		return result
	})

	l.register("List.size", func(args []evaluator.Value) evaluator.Value {
		if list, ok := arg(args, 0).(*evaluator.Array); ok {
			return &evaluator.Int{Value: int64(len(list.Elements))}
		}
		return &evaluator.Int{Value: 0}
	})

	l.register("List.isEmpty", func(args []evaluator.Value) evaluator.Value {
		list, ok := arg(args, 0).(*evaluator.Array)
		return boolValue(!ok || len(list.Elements) == 0)
	})

	l.register("List.remove", func(args []evaluator.Value) evaluator.Value {
		result := copyArray(arg(args, 0))
		idx := int(argInt(args, 1))
		if idx >= 0 && idx < len(result.Elements) {
			result.Elements = append(result.Elements[:idx], result.Elements[idx+1:]...)
		}
		return result
	})

	l.register("List.contains", func(args []evaluator.Value) evaluator.Value {
		if list, ok := arg(args, 0).(*evaluator.Array); ok {
			for _, item := range list.Elements {
				if sameScalar(item, arg(args, 1)) {
					return evaluator.TRUE
				}
			}
		}
		return evaluator.FALSE
	})

	l.register("List.indexOf", func(args []evaluator.Value) evaluator.Value {
		if list, ok := arg(args, 0).(*evaluator.Array); ok {
			for i, item := range list.Elements {
				if sameScalar(item, arg(args, 1)) {
					return &evaluator.Int{Value: int64(i)}
				}
			}
		}
		return &evaluator.Int{Value: -1}
	})

	l.register("Map.new", func(args []evaluator.Value) evaluator.Value {
		// A bare map: no __class__ tag, so method dispatch on it yields null
		return &evaluator.Object{Fields: make(map[string]evaluator.Value)}
	})

	l.register("Map.put", func(args []evaluator.Value) evaluator.Value {
		result := copyObject(arg(args, 0))
		result.Fields[evaluator.ToString(arg(args, 1))] = evaluator.Copy(arg(args, 2))
		return result
	})

	l.register("Map.get", func(args []evaluator.Value) evaluator.Value {
		if m, ok := arg(args, 0).(*evaluator.Object); ok {
			if val, ok := m.Fields[evaluator.ToString(arg(args, 1))]; ok {
				return val
			}
		}
		return evaluator.NULL
	})

	l.register("Map.containsKey", func(args []evaluator.Value) evaluator.Value {
		if m, ok := arg(args, 0).(*evaluator.Object); ok {
			_, found := m.Fields[evaluator.ToString(arg(args, 1))]
			return boolValue(found)
		}
		return evaluator.FALSE
	})

	l.register("Map.keys", func(args []evaluator.Value) evaluator.Value {
		result := &evaluator.Array{}
		if m, ok := arg(args, 0).(*evaluator.Object); ok {
			for key := range m.Fields {
				result.Elements = append(result.Elements, &evaluator.String{Value: key})
			}
		}
		return result
	})

	l.register("Map.size", func(args []evaluator.Value) evaluator.Value {
		if m, ok := arg(args, 0).(*evaluator.Object); ok {
			return &evaluator.Int{Value: int64(len(m.Fields))}
		}
		return &evaluator.Int{Value: 0}
	})
}

func copyArray(v evaluator.Value) *evaluator.Array {
	if list, ok := v.(*evaluator.Array); ok {
		return evaluator.Copy(list).(*evaluator.Array)
	}
	return &evaluator.Array{}
}

func copyObject(v evaluator.Value) *evaluator.Object {
	if m, ok := v.(*evaluator.Object); ok {
		return evaluator.Copy(m).(*evaluator.Object)
	}
	return &evaluator.Object{Fields: make(map[string]evaluator.Value)}
}

// sameScalar compares two values for the scalar kinds List.contains and
// List.indexOf recognize.
func sameScalar(a, b evaluator.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a := a.(type) {
	case *evaluator.String:
		return a.Value == b.(*evaluator.String).Value
	case *evaluator.Int:
		return a.Value == b.(*evaluator.Int).Value
	case *evaluator.Double:
		return a.Value == b.(*evaluator.Double).Value
	}
	return false
}
