package domain

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

const memoryLocation = " memory"

// FormattedParameter is a parameter rendered as a Solidity declaration
type FormattedParameter struct {
	Name        string
	Declaration string
}

// typeRule rewrites an ABI internal type when it matches
type typeRule struct {
	name    string
	matches func(internalType string) bool
	rewrite func(internalType string) string
}

var arraySuffix = regexp.MustCompile(`\[\d*\]$`)

func hasPrefix(prefix string) func(string) bool {
	return func(t string) bool { return strings.HasPrefix(t, prefix) }
}

func isArrayOf(prefix string) func(string) bool {
	return func(t string) bool { return strings.HasPrefix(t, prefix) && arraySuffix.MatchString(t) }
}

func isArray(t string) bool {
	return arraySuffix.MatchString(t)
}

func inMemory(t string) string {
	return t + memoryLocation
}

func stripKeyword(keyword string) func(string) string {
	return func(t string) string { return strings.TrimPrefix(t, keyword+" ") }
}

func stripKeywordInMemory(keyword string) func(string) string {
	strip := stripKeyword(keyword)
	return func(t string) string { return inMemory(strip(t)) }
}

// typeRules is evaluated top to bottom, first match wins. Several prefixes
// overlap: enum arrays must be caught before the generic array rule, and both
// before the bare enum rule.
var typeRules = []typeRule{
	{name: "string", matches: hasPrefix("string"), rewrite: inMemory},
	{name: "bytes", matches: hasPrefix("bytes"), rewrite: inMemory},
	{name: "contract", matches: hasPrefix("contract"), rewrite: stripKeyword("contract")},
	{name: "struct array", matches: isArrayOf("struct"), rewrite: stripKeywordInMemory("struct")},
	{name: "enum array", matches: isArrayOf("enum"), rewrite: stripKeywordInMemory("enum")},
	{name: "array", matches: isArray, rewrite: inMemory},
	{name: "enum", matches: hasPrefix("enum"), rewrite: stripKeyword("enum")},
	{name: "struct", matches: hasPrefix("struct"), rewrite: stripKeywordInMemory("struct")},
}

// FormatType maps an ABI internal type to the type used in a parameter
// declaration. Value types are returned unchanged.
func FormatType(internalType string) string {
	for _, rule := range typeRules {
		if rule.matches(internalType) {
			return rule.rewrite(internalType)
		}
	}
	return internalType
}

// FormatParameter renders one ABI parameter as "<type> <name>".
func FormatParameter(p AbiParameter) FormattedParameter {
	return FormattedParameter{
		Name:        p.Name,
		Declaration: FormatType(p.InternalType) + " " + p.Name,
	}
}

// FormatParameters formats a parameter list, preserving order.
func FormatParameters(params []AbiParameter) []FormattedParameter {
	return lo.Map(params, func(p AbiParameter, _ int) FormattedParameter {
		return FormatParameter(p)
	})
}
