package calc

// IsSyntacticallyValid returns whether src lexes and parses. Blank input is
// valid.
func IsSyntacticallyValid(src string) bool {
	_, err := Parse(src)
	return err == nil
}

// IsComputable returns whether src parses and evaluates without error.
// Blank input is not computable, since it has no result.
func IsComputable(src string) bool {
	_, err := EvalString(src)
	return err == nil
}
