package snippet

import "strings"

// Hint is written into every snippet body.
const Hint = "Express the Regexp above with the code you wish you had"

// Template slots, in the order snippets historically declared them.
const (
	SlotKeyword      = "{keyword}"
	SlotPattern      = "{pattern}"
	SlotFunctionName = "{functionName}"
	SlotArguments    = "{arguments}"
	SlotHint         = "{hint}"
)

var slots = []string{SlotKeyword, SlotPattern, SlotFunctionName, SlotArguments, SlotHint}

// Template is the text of one target's step definition stub.
type Template string

// Fields are the values substituted into a Template.
type Fields struct {
	Keyword      string
	Pattern      string
	FunctionName string
	Arguments    string
	Hint         string
}

// Missing returns the slots the template does not contain.
func (t Template) Missing() []string {
	var missing []string
	for _, s := range slots {
		if !strings.Contains(string(t), s) {
			missing = append(missing, s)
		}
	}
	return missing
}

// Render fills every slot in one pass; substituted values are not
// rescanned, so a pattern containing "{hint}" stays intact.
func (t Template) Render(f Fields) string {
	r := strings.NewReplacer(
		SlotKeyword, f.Keyword,
		SlotPattern, f.Pattern,
		SlotFunctionName, f.FunctionName,
		SlotArguments, f.Arguments,
		SlotHint, f.Hint,
	)
	return r.Replace(string(t))
}
