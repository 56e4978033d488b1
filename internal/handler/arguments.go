package handler

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/maxim-ist/mcp-bear/models"
)

// Arguments holds coerced argument values keyed by name. Values are string,
// []string or bool according to the declared kind.
type Arguments map[string]any

// String returns the named string or enum argument, or "" when absent.
func (a Arguments) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Strings returns the named list argument, or nil when absent.
func (a Arguments) Strings(name string) []string {
	s, _ := a[name].([]string)
	return s
}

// Bool returns the named boolean argument, or false when absent.
func (a Arguments) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// Names returns the argument names in sorted order.
func (a Arguments) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// missingArguments lists required arguments absent from raw. A null value
// counts as absent.
func missingArguments(desc models.OperationDescriptor, raw map[string]any) []string {
	var missing []string
	for _, name := range desc.RequiredArgs() {
		if v, ok := raw[name]; !ok || v == nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// coerceArguments converts raw values to the declared kinds and fills
// defaults. Arguments the descriptor does not declare are dropped.
func coerceArguments(desc models.OperationDescriptor, raw map[string]any) (Arguments, error) {
	args := make(Arguments, len(desc.Args))

	for _, spec := range desc.Args {
		v, ok := raw[spec.Name]
		if !ok || v == nil {
			if spec.Default != nil {
				args[spec.Name] = spec.Default
			}
			continue
		}

		coerced, err := coerce(spec, v)
		if err != nil {
			return nil, err
		}
		args[spec.Name] = coerced
	}

	return args, nil
}

func coerce(spec models.ArgSpec, v any) (any, error) {
	switch spec.Kind {
	case models.ArgString, models.ArgEnum:
		s, ok := v.(string)
		if !ok {
			return nil, invalidArgument(spec, v)
		}
		return s, nil

	case models.ArgStringList:
		return coerceStringList(spec, v)

	case models.ArgBool:
		return coerceBool(spec, v)

	default:
		return nil, fmt.Errorf("%w: %s has unsupported kind %d", ErrInvalidArgument, spec.Name, spec.Kind)
	}
}

// coerceStringList accepts a JSON array of strings or a comma-separated
// string. Blank items are dropped.
func coerceStringList(spec models.ArgSpec, v any) ([]string, error) {
	var items []string

	switch value := v.(type) {
	case []string:
		items = value
	case []any:
		items = make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return nil, invalidArgument(spec, v)
			}
			items = append(items, s)
		}
	case string:
		items = strings.Split(value, ",")
	default:
		return nil, invalidArgument(spec, v)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// coerceBool accepts a JSON boolean or a string such as "true", "1", "yes".
func coerceBool(spec models.ArgSpec, v any) (bool, error) {
	switch value := v.(type) {
	case bool:
		return value, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off", "":
			return false, nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return false, invalidArgument(spec, v)
		}
		return b, nil
	default:
		return false, invalidArgument(spec, v)
	}
}

func invalidArgument(spec models.ArgSpec, v any) error {
	return fmt.Errorf("%w %s: expected %s, got %T", ErrInvalidArgument, spec.Name, spec.Kind, v)
}
