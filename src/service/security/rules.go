package security

import (
	"regexp"

	"codescope/src/model"
)

// Rule is a fixed lexical vulnerability signature. Severity comes from the
// rule identity alone, never from the matched context.
type Rule struct {
	ID             string
	Kind           model.VulnerabilityKind
	Severity       model.Severity
	Pattern        *regexp.Regexp
	Description    string
	Recommendation string
}

// Rules is the engine's rule table. Each rule is evaluated independently
// against every physical line; multi-line patterns are undetectable by
// design.
var Rules = []Rule{
	{
		ID:       "sql-injection-concat",
		Kind:     model.VulnSQLInjection,
		Severity: model.SeverityCritical,
		Pattern: regexp.MustCompile(
			`(?i)["'][^"']*\b(?:select|insert|update|delete)\b[^"']*["']\s*\+|\+\s*["'][^"']*\b(?:select|insert|update|delete)\b`),
		Description:    "SQL statement built by string concatenation",
		Recommendation: "Use parameterized queries or prepared statements instead of concatenating user input",
	},
	{
		ID:       "xss-unsafe-sink",
		Kind:     model.VulnXSS,
		Severity: model.SeverityHigh,
		Pattern: regexp.MustCompile(
			`\.innerHTML\s*=|document\.write\s*\(|\beval\s*\(|dangerouslySetInnerHTML`),
		Description:    "Untrusted data may reach an unsafe DOM or eval sink",
		Recommendation: "Escape or sanitize data before rendering; prefer textContent over innerHTML",
	},
	{
		ID:       "hardcoded-secret",
		Kind:     model.VulnSecrecyLeak,
		Severity: model.SeverityCritical,
		Pattern: regexp.MustCompile(
			`(?i)\b(?:password|passwd|pwd|secret|api_?key|token|private_?key)\w*\s*[:=]\s*["'][^"']+["']`),
		Description:    "Credential or secret assigned to a literal value",
		Recommendation: "Load secrets from the environment or a secret manager, never from source",
	},
	{
		ID:       "insecure-random",
		Kind:     model.VulnInsecureRandom,
		Severity: model.SeverityMedium,
		Pattern: regexp.MustCompile(
			`Math\.random\s*\(|\brandom\.(?:random|randint|choice)\s*\(|\brand\s*\(\s*\)|\bsrand\s*\(`),
		Description:    "Non-cryptographic random number generator in use",
		Recommendation: "Use a cryptographically secure RNG for anything security sensitive",
	},
	{
		ID:       "unsafe-deserialize",
		Kind:     model.VulnUnsafeDeserialize,
		Severity: model.SeverityCritical,
		Pattern: regexp.MustCompile(
			`\bpickle\.loads?\s*\(|\byaml\.load\s*\(|\bunserialize\s*\(|\bMarshal\.load\b`),
		Description:    "Deserialization of potentially untrusted data",
		Recommendation: "Use a safe loader (yaml.safe_load, JSON) or validate input before deserializing",
	},
}
