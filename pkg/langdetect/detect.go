// Package langdetect suggests fence language tags for code samples in rule
// docs. It uses go-enry to classify snippets, with fast paths for the
// languages lint-plugin documentation actually contains.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fence tags for the languages we suggest.
const (
	langJS   = "js"
	langTS   = "ts"
	langJSON = "json"
	langYAML = "yaml"
	langBash = "bash"
	langText = "text"
)

// Detect returns the suggested fence tag for code content.
// Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	// Strategy 1: Check shebang first (most reliable).
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// Strategy 2: Check for language-specific patterns before using classifier.
	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	// Strategy 3: Use classifier with the candidates rule docs contain.
	candidates := []string{
		"JavaScript", "TypeScript", "JSON", "YAML",
		"Shell", "HTML", "CSS", "Markdown",
	}

	// Only use the classifier result if confidence is high (safe == true).
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// detectByPattern checks for patterns that are highly indicative.
func detectByPattern(content []byte) string {
	contentStr := string(content)
	trimmed := bytes.TrimSpace(content)

	// Check patterns in order of specificity.
	if lang := detectJSON(trimmed); lang != "" {
		return lang
	}
	if lang := detectShellCommand(trimmed); lang != "" {
		return lang
	}
	if lang := detectTypeScript(contentStr); lang != "" {
		return lang
	}
	if lang := detectJavaScript(contentStr); lang != "" {
		return lang
	}
	if lang := detectYAML(content); lang != "" {
		return lang
	}

	return ""
}

// detectJSON checks for JSON patterns.
func detectJSON(trimmed []byte) string {
	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) {
		return langJSON
	}
	return ""
}

// detectShellCommand checks for command-line samples.
func detectShellCommand(trimmed []byte) string {
	prefixes := []string{"$ ", "npm ", "npx ", "yarn ", "pnpm ", "eslint "}
	for _, prefix := range prefixes {
		if bytes.HasPrefix(trimmed, []byte(prefix)) {
			return langBash
		}
	}
	return ""
}

// detectTypeScript checks for TypeScript-only syntax.
func detectTypeScript(contentStr string) string {
	if strings.Contains(contentStr, "interface ") && strings.Contains(contentStr, "{") {
		return langTS
	}
	for _, annotation := range []string{": string", ": number", ": boolean", ": unknown", " as const"} {
		if strings.Contains(contentStr, annotation) {
			return langTS
		}
	}
	return ""
}

// detectJavaScript checks for JavaScript patterns.
func detectJavaScript(contentStr string) string {
	if strings.Contains(contentStr, "=>") ||
		strings.Contains(contentStr, "const ") ||
		strings.Contains(contentStr, "let ") ||
		strings.Contains(contentStr, "function ") ||
		strings.Contains(contentStr, "console.") ||
		strings.Contains(contentStr, "require(") ||
		strings.Contains(contentStr, "module.exports") {
		return langJS
	}
	if strings.Contains(contentStr, "import ") && strings.Contains(contentStr, " from ") {
		return langJS
	}
	return ""
}

// detectYAML checks for YAML patterns by counting key: value pairs.
func detectYAML(content []byte) string {
	lines := bytes.Split(content, []byte("\n"))
	yamlKeyCount := 0

	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		// Simple key: value (identifier followed by colon and space).
		// Exclude lines that look like code (contain parentheses, braces).
		if bytes.Contains(line, []byte(": ")) {
			if !bytes.Contains(line, []byte("(")) &&
				!bytes.Contains(line, []byte("{")) &&
				!bytes.HasPrefix(line, []byte(`"`)) {
				yamlKeyCount++
			}
		}
		// YAML list item at root level.
		if bytes.HasPrefix(line, []byte("- ")) {
			yamlKeyCount++
		}
	}

	if yamlKeyCount >= 2 {
		return langYAML
	}
	return ""
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "JavaScript":
		return langJS
	case "TypeScript":
		return langTS
	case "Shell":
		return langBash
	}
	return strings.ToLower(lang)
}
