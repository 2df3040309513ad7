package productgroup

// Token names a design variable. The concrete color behind it belongs to the
// stylesheet, not to this package.
type Token string

const (
	TokenNavy  Token = "navy"
	TokenCoral Token = "coral"
	TokenSage  Token = "sage"
	TokenGold  Token = "gold"
)

// PrimaryToken returns the primary color token for the group.
func PrimaryToken(g ProductGroup) Token {
	switch g {
	case Organization:
		return TokenNavy
	case Donor:
		return TokenSage
	default:
		return TokenCoral
	}
}

// AccentToken is the same for every group.
func AccentToken(ProductGroup) Token {
	return TokenGold
}

func PrimaryForegroundToken(g ProductGroup) Token {
	return PrimaryToken(g).Foreground()
}

func AccentForegroundToken(g ProductGroup) Token {
	return AccentToken(g).Foreground()
}

func (t Token) Foreground() Token {
	return t + "-foreground"
}

func (t Token) String() string {
	return string(t)
}
