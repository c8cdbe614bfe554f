package config

import "time"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "codescope",
			Version:     "1.0.0",
			Description: "Deterministic source pattern analysis engine",
		},
		Scan: ScanConfig{
			IncludePatterns: []string{"**/*"},
			ExcludePatterns: []string{
				"**/.git/**", "**/node_modules/**", "**/vendor/**",
				"**/dist/**", "**/build/**",
			},
			MaxFileSizeKB: 1024,
		},
		Analysis: AnalysisConfig{
			Clones: CloneConfig{
				SimilarityThreshold: 80,
				MinCloneLength:      5,
				MinNearLength:       3,
				LineSimilarityFloor: 70,
				FunctionalThreshold: 75,
			},
			Quality: QualityConfig{
				LongLineLimit:   120,
				MinDupLineChars: 10,
			},
		},
		Security: SecurityConfig{
			Enabled:     true,
			MinSeverity: "low",
		},
		Concurrency: ConcurrencyConfig{
			CloneWorkers: 4,
		},
		Output: OutputConfig{
			Formats:             []string{"json"},
			OutputDir:           ".",
			IncludeSnippets:     true,
			IncludeCloneContent: false,
			HotspotsTopN:        10,
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			IncludeTimestamp: true,
			IncludeCaller:    false,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
	}
}
