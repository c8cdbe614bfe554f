package extractor

import (
	"regexp"
	"strings"

	"codescope/src/model"
)

var (
	mqlHandlerRe = regexp.MustCompile(`^\s*(?:int|void|double|datetime)\s+(On\w+)\s*\(`)
	mqlGlobalRe  = regexp.MustCompile(`^\s*(?:extern|input)\s+[\w\.]+\s+(\w+)`)
)

// extractMQL5 recognizes MQL5 event handlers (OnInit, OnTick, ...),
// extern/input globals, and ordinary functions via the C++ rules.
func extractMQL5(path string, lines []string) []model.CodeEntity {
	var entities []model.CodeEntity

	for i, line := range lines {
		if m := mqlHandlerRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityFunction, m[1], path, i, line))
			continue
		}
		if m := mqlGlobalRe.FindStringSubmatch(line); m != nil {
			entities = append(entities, entity(model.EntityVariable, m[1], path, i, line))
			continue
		}
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
