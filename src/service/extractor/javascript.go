package extractor

import (
	"regexp"

	"codescope/src/model"
)

var (
	jsClassRe     = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?class\s+(\w+)`)
	jsFunctionRe  = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*(\w+)`)
	jsArrowRe     = regexp.MustCompile(`^\s*(?:export\s+)?const\s+(\w+)\s*=\s*(?:async\s*)?(?:\([^)]*\)|\w+)\s*=>`)
	jsVariableRe  = regexp.MustCompile(`^\s*(?:export\s+)?(?:const|let|var)\s+(\w+)\s*=`)
	tsInterfaceRe = regexp.MustCompile(`^\s*(?:export\s+)?interface\s+(\w+)`)
)

// extractJavaScript recognizes classes, function declarations, arrow
// function constants, and other top-level variable bindings. Arrow
// functions are matched before the plain variable rule so they classify
// as functions.
func extractJavaScript(path string, lines []string) []model.CodeEntity {
	var entities []model.CodeEntity

	for i, line := range lines {
		if m := jsClassRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityClass, m[1], path, i, line))
			continue
		}
		if m := jsFunctionRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityFunction, m[1], path, i, line))
			continue
		}
		if m := jsArrowRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityFunction, m[1], path, i, line))
			continue
		}
		if m := jsVariableRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityVariable, m[1], path, i, line))
		}
	}

	return entities
}

// extractTypeScript is the JavaScript recognizer plus interfaces
func extractTypeScript(path string, lines []string) []model.CodeEntity {
	var entities []model.CodeEntity

	for i, line := range lines {
		if m := tsInterfaceRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityInterface, m[1], path, i, line))
			continue
		}
		if m := jsClassRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityClass, m[1], path, i, line))
			continue
		}
		if m := jsFunctionRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityFunction, m[1], path, i, line))
			continue
		}
		if m := jsArrowRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityFunction, m[1], path, i, line))
			continue
		}
		if m := jsVariableRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityVariable, m[1], path, i, line))
		}
	}

	return entities
}
