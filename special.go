package csvexport

// specialChars maps escaped two-character tokens, as delivered by attribute-style
// configuration, to the control characters they stand for. Never mutated.
var specialChars = map[string]string{
	`\t`: "\t",
	`\b`: "\b",
	`\v`: "\v",
	`\f`: "\f",
	`\r`: "\r",
}

// IsSpecialChar reports whether token is an escaped control character such as `\t`.
func IsSpecialChar(token string) bool {
	_, ok := specialChars[token]
	return ok
}

// ResolveSpecialChar returns the control character for token, or "" when token is not special.
func ResolveSpecialChar(token string) string {
	return specialChars[token]
}

// NormalizeFieldSep replaces an escaped separator token with the real character.
func NormalizeFieldSep(sep string) string {
	if IsSpecialChar(sep) {
		return ResolveSpecialChar(sep)
	}
	return sep
}
