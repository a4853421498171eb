package templates

import (
	"fmt"
	"strings"
)

// ArityGen renders the MapN combinator family for N in [2, count]. Map2
// curries through the plain Map, every MapN above it through MapN-1.
func ArityGen(count int) string {
	var sb strings.Builder
	sb.WriteString("package cascade\n")

	for n := 2; n <= count; n++ {
		inner := "Map"
		innerArgs := "s0"
		if n > 2 {
			inner = fmt.Sprintf("Map%d", n-1)
			innerArgs = prefixedStrings("s", n-1)
		}

		sb.WriteString("\n")
		fmt.Fprintf(&sb, "// Map%d combines %d signals through a curried Apply chain.\n", n, n)
		fmt.Fprintf(&sb, "func Map%d[%s, O any](fn func(%s) O, %s) Signal[O] {\n",
			n, prefixedStrings("T", n), prefixedStrings("T", n), signalParams(n))
		fmt.Fprintf(&sb, "\tf := %s(func(%s) func(T%d) O {\n", inner, valueParams(n-1), n-1)
		fmt.Fprintf(&sb, "\t\treturn func(v%d T%d) O { return fn(%s) }\n", n-1, n-1, prefixedStrings("v", n))
		fmt.Fprintf(&sb, "\t}, %s)\n", innerArgs)
		fmt.Fprintf(&sb, "\treturn Apply(f, s%d)\n", n-1)
		sb.WriteString("}\n")
	}

	return sb.String()
}
