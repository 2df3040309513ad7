package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"family_shapes/internal/productgroup"
)

func TestApply_SetsFourVariables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		group   productgroup.ProductGroup
		primary string
	}{
		{group: productgroup.Organization, primary: "var(--navy)"},
		{group: productgroup.Family, primary: "var(--coral)"},
		{group: productgroup.Donor, primary: "var(--sage)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.group.String(), func(t *testing.T) {
			t.Parallel()

			root := NewRoot()
			Apply(root)(tt.group)

			assert.Equal(t, map[string]string{
				VarPrimary:           tt.primary,
				VarPrimaryForeground: strings.TrimSuffix(tt.primary, ")") + "-foreground)",
				VarAccent:            "var(--gold)",
				VarAccentForeground:  "var(--gold-foreground)",
			}, root.Properties())
		})
	}
}

func TestApply_MatchesTokenLookups(t *testing.T) {
	t.Parallel()

	for _, g := range productgroup.All() {
		root := NewRoot()
		Apply(root)(g)

		want := map[string]string{
			VarPrimary:           "var(--" + productgroup.PrimaryToken(g).String() + ")",
			VarPrimaryForeground: "var(--" + productgroup.PrimaryForegroundToken(g).String() + ")",
			VarAccent:            "var(--" + productgroup.AccentToken(g).String() + ")",
			VarAccentForeground:  "var(--" + productgroup.AccentForegroundToken(g).String() + ")",
		}
		assert.Equal(t, want, root.Properties(), g.String())
	}
}

func TestApply_FollowsProvider(t *testing.T) {
	t.Parallel()

	root := NewRoot()
	p := productgroup.NewProvider("/organizations/123", Apply(root))

	v, ok := root.Property(VarPrimary)
	require.True(t, ok)
	assert.Equal(t, "var(--navy)", v)

	p.Navigate("/for-donors")
	assert.Equal(t, 4, root.Len())
	assert.Equal(t, Variables(productgroup.Donor), root.Properties())

	require.NoError(t, p.SetGroup(productgroup.Family))
	assert.Equal(t, 4, root.Len())
	assert.Equal(t, Variables(productgroup.Family), root.Properties())
}

func TestRoot_CSS(t *testing.T) {
	t.Parallel()

	root := NewRoot()
	Apply(root)(productgroup.Donor)

	assert.Equal(t,
		":root{--accent-dynamic:var(--gold);--accent-foreground-dynamic:var(--gold-foreground);"+
			"--primary-dynamic:var(--sage);--primary-foreground-dynamic:var(--sage-foreground);}",
		root.CSS())
}

func TestPalette_CoversEveryToken(t *testing.T) {
	t.Parallel()

	p := DefaultPalette()
	css := p.Stylesheet()
	for _, g := range productgroup.All() {
		for _, tok := range []productgroup.Token{
			productgroup.PrimaryToken(g),
			productgroup.PrimaryForegroundToken(g),
			productgroup.AccentToken(g),
			productgroup.AccentForegroundToken(g),
		} {
			_, ok := p[tok]
			assert.True(t, ok, "missing token %s", tok)
			assert.Contains(t, css, "--"+tok.String()+": hsl(")
		}
	}
}
