package language

import (
	"path/filepath"
	"strings"
)

// Tag identifies a supported source language
type Tag string

const (
	Python     Tag = "python"
	JavaScript Tag = "javascript"
	TypeScript Tag = "typescript"
	CPP        Tag = "cpp"
	C          Tag = "c"
	MQL5       Tag = "mql5"
	Unknown    Tag = "unknown"
)

var extensionTags = map[string]Tag{
	".py":  Python,
	".js":  JavaScript,
	".ts":  TypeScript,
	".cpp": CPP,
	".h":   CPP,
	".hpp": CPP,
	".c":   C,
	".mq5": MQL5,
	".mqh": MQL5,
}

// FromExtension maps a file extension (with leading dot, case-insensitive)
// to a language tag. Unrecognized extensions map to Unknown; there are no
// error conditions.
func FromExtension(ext string) Tag {
	if tag, ok := extensionTags[strings.ToLower(ext)]; ok {
		return tag
	}
	return Unknown
}

// FromPath classifies a file path by its extension
func FromPath(path string) Tag {
	return FromExtension(filepath.Ext(path))
}

// Supported returns the language/extension table, in a stable order
func Supported() []struct {
	Language   Tag
	Extensions []string
} {
	return []struct {
		Language   Tag
		Extensions []string
	}{
		{Python, []string{".py"}},
		{JavaScript, []string{".js"}},
		{TypeScript, []string{".ts"}},
		{CPP, []string{".cpp", ".h", ".hpp"}},
		{C, []string{".c"}},
		{MQL5, []string{".mq5", ".mqh"}},
	}
}
