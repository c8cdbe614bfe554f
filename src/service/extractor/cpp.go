package extractor

import (
	"regexp"
	"strings"

	"codescope/src/model"
)

var (
	cppClassRe = regexp.MustCompile(`^\s*(?:class|struct)\s+(\w+)`)
	// Qualified definition on one line: ReturnType Class::Method(...)
	cppQualifiedRe = regexp.MustCompile(`\b\w+::(~?\w+)\s*\(`)
	// Free function heading: optional return type tokens, a name, and an
	// opening paren with no trailing semicolon. The return type may sit on
	// the previous line for split signatures, so it is optional here.
	cppFunctionRe = regexp.MustCompile(`^\s*(?:[\w:<>,\*&]+\s+)*([A-Za-z_]\w*)\s*\([^;]*$`)
	cppControlRe  = regexp.MustCompile(`^\s*(?:if|for|while|switch|return|else|do|case)\b`)
)

// extractCPP recognizes class/struct headers and function definitions.
// Matching stays line-local: multi-line signatures are not resolved, except
// that a definition whose scope token sits on the previous line
// ("void Widget::\n  draw()") is classified as a method by peeking one
// line back.
func extractCPP(path string, lines []string) []model.CodeEntity {
	var entities []model.CodeEntity

	for i, line := range lines {
		if m := cppClassRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityClass, m[1], path, i, line))
			continue
		}
		if cppControlRe.MatchString(line) || strings.Contains(line, ";") {
			continue
		}
		if m := cppQualifiedRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityMethod, m[1], path, i, line))
			continue
		}
		if m := cppFunctionRe.FindStringSubmatch(line); m != nil {
			kind := model.EntityFunction
			if i > 0 && strings.Contains(lines[i-1], "::") {
				kind = model.EntityMethod
			}
			entities = append(entities, entity(kind, m[1], path, i, line))
		}
	}

	return entities
}

// extractC is the C++ recognizer without the method heuristics
func extractC(path string, lines []string) []model.CodeEntity {
	var entities []model.CodeEntity

	for i, line := range lines {
		if m := cppClassRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityClass, m[1], path, i, line))
			continue
		}
		if cppControlRe.MatchString(line) || strings.Contains(line, ";") {
			continue
		}
		if m := cppFunctionRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityFunction, m[1], path, i, line))
		}
	}

	return entities
}
