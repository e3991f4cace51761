// SPDX-License-Identifier: Apache-2.0

package typescript

// languageKeywords holds TypeScript's reserved words plus the contextual
// keywords it treats as unsafe for generated identifiers.
// https://github.com/Microsoft/TypeScript/issues/2536
var languageKeywords = map[string]struct{}{
	"abstract":     {},
	"any":          {},
	"as":           {},
	"async":        {},
	"await":        {},
	"bigint":       {},
	"boolean":      {},
	"break":        {},
	"case":         {},
	"catch":        {},
	"class":        {},
	"configurable": {},
	"const":        {},
	"constructor":  {},
	"continue":     {},
	"debugger":     {},
	"declare":      {},
	"default":      {},
	"delete":       {},
	"do":           {},
	"else":         {},
	"enum":         {},
	"enumerable":   {},
	"export":       {},
	"extends":      {},
	"false":        {},
	"finally":      {},
	"for":          {},
	"from":         {},
	"function":     {},
	"get":          {},
	"if":           {},
	"in":           {},
	"implements":   {},
	"import":       {},
	"instanceof":   {},
	"interface":    {},
	"is":           {},
	"let":          {},
	"module":       {},
	"namespace":    {},
	"never":        {},
	"new":          {},
	"null":         {},
	"number":       {},
	"of":           {},
	"package":      {},
	"private":      {},
	"protected":    {},
	"public":       {},
	"readonly":     {},
	"require":      {},
	"return":       {},
	"set":          {},
	"static":       {},
	"string":       {},
	"super":        {},
	"switch":       {},
	"symbol":       {},
	"this":         {},
	"throw":        {},
	"true":         {},
	"try":          {},
	"type":         {},
	"typeof":       {},
	"undefined":    {},
	"value":        {},
	"var":          {},
	"void":         {},
	"while":        {},
	"with":         {},
	"writable":     {},
	"yield":        {},
}

// SafeReserved returns token with a trailing underscore when it collides
// with a TypeScript keyword, and unchanged otherwise. No keyword ends in an
// underscore, so the result is never itself reserved.
func SafeReserved(token string) string {
	if _, ok := languageKeywords[token]; ok {
		return token + "_"
	}
	return token
}
