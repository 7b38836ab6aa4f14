// Package questions builds the ordered question list for a job title.
//
// The built-in content is an embedded YAML document; Load reads a
// replacement from disk. A Bank is read-only after construction and every
// accessor returns copies, so callers may modify what they get.
package questions

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Placeholder is replaced by the job title in fallback templates.
const Placeholder = "%s"

//go:embed questions.yaml
var defaultYAML []byte

// Bank holds questions, feedback pools and the job catalogue.
type Bank struct {
	common     []string
	roles      map[string][]string
	fallback   []string
	feedback   feedbackDocument
	categories []Category
}

// Default returns the embedded bank. It panics if the embedded document is
// invalid, which only a broken build can cause.
func Default() *Bank {
	b, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded question bank: %v", err))
	}
	return b
}

// Load reads and validates a bank from a YAML file.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading question bank %s: %w", path, err)
	}

	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes and validates a bank from YAML bytes.
func Parse(data []byte) (*Bank, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}

	if err := validate(&doc); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}

	return &Bank{
		common:     doc.Common,
		roles:      doc.Roles,
		fallback:   doc.Fallback,
		feedback:   doc.Feedback,
		categories: doc.Categories,
	}, nil
}

func validate(doc *document) error {
	if len(doc.Common) == 0 {
		return fmt.Errorf("common questions must not be empty")
	}
	if err := nonBlank("common", doc.Common); err != nil {
		return err
	}

	for title, qs := range doc.Roles {
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("role with empty title")
		}
		if len(qs) == 0 {
			return fmt.Errorf("role %q has no questions", title)
		}
		if err := nonBlank("role "+title, qs); err != nil {
			return err
		}
	}

	if len(doc.Fallback) == 0 {
		return fmt.Errorf("fallback templates must not be empty")
	}
	for i, tmpl := range doc.Fallback {
		if !strings.Contains(tmpl, Placeholder) {
			return fmt.Errorf("fallback template %d has no %s placeholder", i, Placeholder)
		}
	}

	if len(doc.Feedback.Default) == 0 {
		return fmt.Errorf("default feedback pool must not be empty")
	}
	for q, pool := range doc.Feedback.Questions {
		if len(pool) == 0 {
			return fmt.Errorf("feedback pool for %q is empty", q)
		}
	}

	for _, c := range doc.Categories {
		if c.Name == "" || len(c.Titles) == 0 {
			return fmt.Errorf("category %q must have a name and titles", c.Name)
		}
	}

	return nil
}

func nonBlank(where string, items []string) error {
	for i, s := range items {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s: item %d is blank", where, i)
		}
	}
	return nil
}

// QuestionsFor returns the common questions followed by the role block for
// jobTitle. Titles without a curated block get the fallback templates with
// the title inserted verbatim. It never fails and always returns a new slice.
func (b *Bank) QuestionsFor(jobTitle string) []string {
	out := make([]string, 0, len(b.common)+len(b.fallback))
	out = append(out, b.common...)

	if role, ok := b.roles[jobTitle]; ok {
		return append(out, role...)
	}

	for _, tmpl := range b.fallback {
		out = append(out, strings.ReplaceAll(tmpl, Placeholder, jobTitle))
	}
	return out
}

// HasRole reports whether jobTitle has a curated question block.
func (b *Bank) HasRole(jobTitle string) bool {
	_, ok := b.roles[jobTitle]
	return ok
}

// Categories returns the job catalogue in file order.
func (b *Bank) Categories() []Category {
	out := make([]Category, len(b.categories))
	for i, c := range b.categories {
		out[i] = Category{Name: c.Name, Titles: append([]string(nil), c.Titles...)}
	}
	return out
}

// DefaultFeedback returns the pool used for questions without their own.
func (b *Bank) DefaultFeedback() []string {
	return append([]string(nil), b.feedback.Default...)
}

// QuestionFeedback returns the question-specific feedback pools.
func (b *Bank) QuestionFeedback() map[string][]string {
	out := make(map[string][]string, len(b.feedback.Questions))
	for q, pool := range b.feedback.Questions {
		out[q] = append([]string(nil), pool...)
	}
	return out
}
