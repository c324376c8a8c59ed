package convention

// classifier is one entry in the ordered case-detection table. Names that
// structurally satisfy more than one convention (a single lowercase word
// satisfies camelCase, snake_case and kebab-case at once) resolve to the
// first entry that matches, so the table order is part of the contract.
type classifier struct {
	tag  Case
	test func(string) bool
}

// classifiers is evaluated top to bottom. CONSTANT_CASE is checked before
// PascalCase so that all-caps names ("FOO", "MAX_RETRIES") are not absorbed
// by the Pascal pattern.
var classifiers = []classifier{
	{CaseConstant, constantConvention.Test},
	{CaseCamel, camelConvention.Test},
	{CasePascal, pascalConvention.Test},
	{CaseSnake, snakeConvention.Test},
	{CaseKebab, kebabConvention.Test},
}

// Detect classifies a name into the first matching convention, or CaseMixed
// when no convention's structural predicate accepts it.
func Detect(name string) Case {
	for _, c := range classifiers {
		if c.test(name) {
			return c.tag
		}
	}
	return CaseMixed
}

// HasCaseTransition reports whether name contains an internal
// lowercase-to-uppercase transition (the signature of camel/Pascal humps).
func HasCaseTransition(name string) bool {
	runes := []rune(name)
	for i := 1; i < len(runes); i++ {
		if isLowerRune(runes[i-1]) && isUpperRune(runes[i]) {
			return true
		}
	}
	return false
}

func isLowerRune(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpperRune(r rune) bool { return r >= 'A' && r <= 'Z' }
