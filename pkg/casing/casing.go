// Package casing converts identifiers between naming conventions.
package casing

import (
	"regexp"
	"strings"
)

// kebabBoundary matches a lowercase letter followed by a run of uppercase
// letters. An acronym run gets a single hyphen in front of it.
var kebabBoundary = regexp.MustCompile(`([a-z])([A-Z]+)`)

// ToKebab converts a camel or Pascal case identifier to kebab case.
//
//	ToKebab("UseCase")   // "use-case"
//	ToKebab("ABCState")  // "abcstate"
//	ToKebab("useHTTPS")  // "use-https"
//
// Digits, underscores and existing hyphens are passed through and only
// lowercased. No hyphen is ever added at the start or end of the result.
func ToKebab(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToLower(kebabBoundary.ReplaceAllString(s, "${1}-${2}"))
}
