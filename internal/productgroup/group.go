package productgroup

import (
	"errors"
	"fmt"
	"strings"
)

// ProductGroup is the audience segment a page belongs to. It drives theming
// and any UI branching by audience.
type ProductGroup string

const (
	Organization ProductGroup = "organization"
	Family       ProductGroup = "family"
	Donor        ProductGroup = "donor"
)

var ErrUnknownProductGroup = errors.New("unknown product group")

// All lists the groups in a stable order.
func All() []ProductGroup {
	return []ProductGroup{Organization, Family, Donor}
}

func (g ProductGroup) String() string {
	return string(g)
}

func (g ProductGroup) Valid() bool {
	switch g {
	case Organization, Family, Donor:
		return true
	}
	return false
}

func ParseProductGroup(s string) (ProductGroup, error) {
	g := ProductGroup(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProductGroup, s)
	}
	return g, nil
}

// Checked in order: a path matching an organization substring is never
// classified as donor.
var (
	organizationPathTokens = []string{"/organizations", "/get-started", "/organization-dashboard", "/admin"}
	donorPathTokens        = []string{"/for-donors", "/donor-landing"}
)

// Detect classifies a navigation path. Matching is plain substring
// containment, so "/my-organizations-list" is an organization path.
// Every input, including "", maps to a group; the fallback is Family.
func Detect(path string) ProductGroup {
	if containsAny(path, organizationPathTokens) {
		return Organization
	}
	if containsAny(path, donorPathTokens) {
		return Donor
	}
	return Family
}

func containsAny(path string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(path, tok) {
			return true
		}
	}
	return false
}
