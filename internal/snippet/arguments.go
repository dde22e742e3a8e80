package snippet

import (
	"strconv"
	"strings"
)

// ArgumentRenderer formats inferred argument types as a parameter list.
type ArgumentRenderer func(types []Type) string

// ArgumentName returns the name of the n-th argument, counting from 1.
func ArgumentName(n int) string {
	return "arg" + strconv.Itoa(n)
}

// UntypedArguments renders "arg1, arg2, ...".
func UntypedArguments(types []Type) string {
	names := make([]string, len(types))
	for i := range types {
		names[i] = ArgumentName(i + 1)
	}
	return strings.Join(names, ", ")
}

// TypedArguments returns a renderer that lays out each argument with layout,
// where "{name}" and "{type}" are replaced by the argument name and the
// target type name. Types missing from typeNames render as their tag.
func TypedArguments(layout string, typeNames map[Type]string) ArgumentRenderer {
	return func(types []Type) string {
		params := make([]string, len(types))
		for i, t := range types {
			name, ok := typeNames[t]
			if !ok {
				name = string(t)
			}
			params[i] = strings.NewReplacer("{name}", ArgumentName(i+1), "{type}", name).Replace(layout)
		}
		return strings.Join(params, ", ")
	}
}
