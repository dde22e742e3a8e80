package snippet

import (
	"fmt"
	"sort"
	"strings"
)

var (
	Java = Variant{
		Name: "java",
		Template: `@{keyword}("{pattern}")
public void {functionName}({arguments}) {
    // {hint}
    throw new PendingException();
}
`,
		Patterns: DefaultPatterns(),
		Arguments: TypedArguments("{type} {name}", map[Type]string{
			String: "String",
			Int:    "int",
			Float:  "double",
		}),
		QuotePattern:    strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace,
		UnnamedFunction: "step",
	}

	Go = Variant{
		Name: "go",
		Template: "ctx.Step(`{pattern}`, {functionName}) // {keyword}\n\n" +
			"func {functionName}({arguments}) error {\n" +
			"\t// {hint}\n" +
			"\treturn godog.ErrPending\n" +
			"}\n",
		Patterns: []ArgumentPattern{QuotedString, Decimal, Integer},
		Arguments: TypedArguments("{name} {type}", map[Type]string{
			String: "string",
			Int:    "int",
			Float:  "float64",
		}),
		QuotePattern:    strings.NewReplacer("`", "` + \"`\" + `").Replace,
		UnnamedFunction: "step",
	}

	JavaScript = Variant{
		Name: "javascript",
		Template: `{keyword}(/{pattern}/, function {functionName}({arguments}) {
  // {hint}
  return 'pending';
});
`,
		Patterns:     DefaultPatterns(),
		Arguments:    UntypedArguments,
		QuotePattern: escapeSlashes,
	}

	Ruby = Variant{
		Name: "ruby",
		Template: `{keyword} /{pattern}/ do |{arguments}|
  # {functionName}: {hint}
  pending
end
`,
		Patterns:     DefaultPatterns(),
		Arguments:    UntypedArguments,
		NamedGroups:  &GroupStyle{Start: "?<arg", End: ">"},
		QuotePattern: escapeSlashes,
	}

	Ioke = Variant{
		Name: "ioke",
		Template: `{keyword}(#/{pattern}/,
  ; {functionName}({arguments})
  ; {hint}
  pending
)
`,
		Patterns:     DefaultPatterns(),
		Arguments:    UntypedArguments,
		NamedGroups:  &GroupStyle{Start: "{arg", End: "}"},
		QuotePattern: escapeSlashes,
	}
)

var variants = map[string]Variant{
	Java.Name:       Java,
	Go.Name:         Go,
	JavaScript.Name: JavaScript,
	Ruby.Name:       Ruby,
	Ioke.Name:       Ioke,
}

// Lookup returns the built-in variant called name.
func Lookup(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("unknown snippet language %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return v, nil
}

// Names lists the built-in variants alphabetically.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func escapeSlashes(pattern string) string {
	return strings.ReplaceAll(pattern, "/", `\/`)
}
