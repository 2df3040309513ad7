package theme

import (
	"fmt"
	"sort"
	"strings"

	"family_shapes/internal/productgroup"
)

// Palette maps token names to HSL triples ("h s% l%").
type Palette map[productgroup.Token]string

func DefaultPalette() Palette {
	return Palette{
		productgroup.TokenNavy:               "222 47% 24%",
		productgroup.TokenNavy.Foreground():  "0 0% 100%",
		productgroup.TokenCoral:              "12 76% 64%",
		productgroup.TokenCoral.Foreground(): "0 0% 100%",
		productgroup.TokenSage:               "140 18% 52%",
		productgroup.TokenSage.Foreground():  "0 0% 100%",
		productgroup.TokenGold:               "42 87% 58%",
		productgroup.TokenGold.Foreground():  "222 47% 14%",
	}
}

// Stylesheet renders the static token definitions plus the rules that
// consume the dynamic variables.
func (p Palette) Stylesheet() string {
	tokens := make([]string, 0, len(p))
	for t := range p {
		tokens = append(tokens, t.String())
	}
	sort.Strings(tokens)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, t := range tokens {
		fmt.Fprintf(&b, "  --%s: hsl(%s);\n", t, p[productgroup.Token(t)])
	}
	b.WriteString("}\n")
	b.WriteString(consumerRules)
	return b.String()
}

const consumerRules = `.bg-primary-dynamic { background-color: var(--primary-dynamic); color: var(--primary-foreground-dynamic); }
.text-primary-dynamic { color: var(--primary-dynamic); }
.bg-accent-dynamic { background-color: var(--accent-dynamic); color: var(--accent-foreground-dynamic); }
.border-primary-dynamic { border-color: var(--primary-dynamic); }
`
