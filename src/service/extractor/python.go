package extractor

import (
	"regexp"

	"codescope/src/model"
)

var (
	pyClassRe  = regexp.MustCompile(`^\s*class\s+(\w+)`)
	pyDefRe    = regexp.MustCompile(`^(\s*)(?:async\s+)?def\s+(\w+)`)
	pyGlobalRe = regexp.MustCompile(`^([A-Z][A-Z0-9_]*)\s*=`)
)

// extractPython recognizes classes, functions/methods, and module-level
// constants. A def with leading indentation is classified as a method;
// no suite tracking is attempted beyond that.
func extractPython(path string, lines []string) []model.CodeEntity {
	var entities []model.CodeEntity

	for i, line := range lines {
		if m := pyClassRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityClass, m[1], path, i, line))
			continue
		}
		if m := pyDefRe.FindStringSubmatch(line); m != nil {
			kind := model.EntityFunction
			if m[1] != "" {
				kind = model.EntityMethod
			}
			entities = append(entities, entity(kind, m[2], path, i, line))
			continue
		}
		if m := pyGlobalRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityVariable, m[1], path, i, line))
		}
	}

	return entities
}
