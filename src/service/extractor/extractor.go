package extractor

import (
	"path/filepath"
	"strings"

	"codescope/src/model"
	"codescope/src/service/language"
)

// handler extracts entities from the lines of a single file
type handler func(path string, lines []string) []model.CodeEntity

// handlers is the per-language dispatch table. Languages without an entry
// fall through to the unknown-file fallback.
var handlers = map[language.Tag]handler{
	language.Python:     extractPython,
	language.JavaScript: extractJavaScript,
	language.TypeScript: extractTypeScript,
	language.CPP:        extractCPP,
	language.C:          extractC,
	language.MQL5:       extractMQL5,
}

// Extract scans file text line by line with the recognizer table for its
// language and returns entities in line order. Unknown languages yield a
// single synthetic module entity so downstream consumers never see an
// empty analysis. Malformed text never produces an error: unmatched lines
// simply produce no entity.
func Extract(path, text string) []model.CodeEntity {
	lines := strings.Split(text, "\n")

	h, ok := handlers[language.FromPath(path)]
	if !ok {
		return []model.CodeEntity{moduleEntity(path, lines)}
	}
	return h(path, lines)
}

func moduleEntity(path string, lines []string) model.CodeEntity {
	snippet := ""
	if len(lines) > 0 {
		snippet = strings.TrimSpace(lines[0])
	}
	return model.CodeEntity{
		Kind:          model.EntityModule,
		Name:          filepath.Base(path),
		FilePath:      path,
		LineNumber:    1,
		SourceSnippet: snippet,
	}
}

func entity(kind model.EntityKind, name, path string, lineIdx int, line string) model.CodeEntity {
	return model.CodeEntity{
		Kind:          kind,
		Name:          name,
		FilePath:      path,
		LineNumber:    lineIdx + 1,
		SourceSnippet: strings.TrimSpace(line),
	}
}
