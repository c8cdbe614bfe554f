package config

import "time"

// Config is the root configuration structure
type Config struct {
	Agent       AgentConfig       `yaml:"agent"`
	Scan        ScanConfig        `yaml:"scan"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Security    SecurityConfig    `yaml:"security"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Server      ServerConfig      `yaml:"server"`
}

// AgentConfig contains agent metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// ScanConfig controls which files are collected from the base directory
type ScanConfig struct {
	IncludePatterns []string `yaml:"include_patterns"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
	MaxFileSizeKB   int      `yaml:"max_file_size_kb"`
}

// AnalysisConfig contains thresholds for the analysis engine
type AnalysisConfig struct {
	Clones  CloneConfig   `yaml:"clones"`
	Quality QualityConfig `yaml:"quality"`
}

// CloneConfig contains clone detection thresholds
type CloneConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	MinCloneLength      int     `yaml:"min_clone_length"`
	MinNearLength       int     `yaml:"min_near_length"`
	LineSimilarityFloor float64 `yaml:"line_similarity_floor"`
	FunctionalThreshold float64 `yaml:"functional_threshold"`
}

// QualityConfig contains quality metric settings
type QualityConfig struct {
	LongLineLimit   int `yaml:"long_line_limit"`
	MinDupLineChars int `yaml:"min_dup_line_chars"`
}

// SecurityConfig contains security scanner settings
type SecurityConfig struct {
	Enabled     bool     `yaml:"enabled"`
	MinSeverity string   `yaml:"min_severity"`
	DisabledIDs []string `yaml:"disabled_ids"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	CloneWorkers int `yaml:"clone_workers"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Formats             []string `yaml:"formats"`
	OutputDir           string   `yaml:"output_dir"`
	IncludeSnippets     bool     `yaml:"include_snippets"`
	IncludeCloneContent bool     `yaml:"include_clone_content"`
	HotspotsTopN        int      `yaml:"hotspots_top_n"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // text, json
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
	IncludeCaller    bool   `yaml:"include_caller"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}
