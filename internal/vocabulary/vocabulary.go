// Package vocabulary holds the skill vocabulary: the fixed, read-only list of
// keyword strings the matcher searches for in resumes and job descriptions.
package vocabulary

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-ranker/internal/schemas"
)

// SchemaPath is the repo-relative path of the vocabulary JSON Schema.
const SchemaPath = "schemas/vocabulary.schema.json"

// Default is the built-in skill vocabulary. Recruiters are expected to
// replace it with a vocabulary file tuned to the roles they hire for.
var Default = []string{
	"python", "java", "c++", "javascript", "sql", "nosql", "mongodb", "postgresql",
	"aws", "azure", "gcp", "docker", "kubernetes", "git", "jira", "agile", "scrum",
	"machine learning", "deep learning", "nlp", "natural language processing",
	"data analysis", "data science", "pandas", "numpy", "scikit-learn", "tensorflow",
	"pytorch", "react", "angular", "vue", "node.js", "flask", "django",
	"project management", "communication", "teamwork", "problem solving",
}

// file is the on-disk shape of a vocabulary: {"skills": ["python", ...]}.
type file struct {
	Skills []string `json:"skills"`
}

// Load reads a vocabulary JSON file, validates it against the vocabulary
// schema when the schema file is resolvable, and returns the canonical
// (lowercased, trimmed, deduplicated) term list in file order.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(SchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSONFile(schemaPath, path); err != nil {
			return nil, fmt.Errorf("vocabulary file %s is invalid: %w", path, err)
		}
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}
	if len(f.Skills) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no skills", path)
	}

	return Canonical(f.Skills), nil
}

// Canonical lowercases and trims terms and drops blanks and duplicates,
// preserving first-seen order.
func Canonical(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		out = append(out, term)
	}
	return out
}
