package templating

import "strings"

// Render substitutes every {{name}} placeholder in the template with the
// corresponding value from vars. Matching is global and case-sensitive.
// Placeholders whose name is not present in vars are left verbatim.
// Pure string manipulation, no I/O.
func Render(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
