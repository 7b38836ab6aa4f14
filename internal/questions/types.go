package questions

// document mirrors the YAML layout of a question bank file.
type document struct {
	Common     []string            `yaml:"common"`
	Roles      map[string][]string `yaml:"roles"`
	Fallback   []string            `yaml:"fallback"`
	Feedback   feedbackDocument    `yaml:"feedback"`
	Categories []Category          `yaml:"categories"`
}

type feedbackDocument struct {
	Default   []string            `yaml:"default"`
	Questions map[string][]string `yaml:"questions"`
}

// Category groups job titles for the picker.
type Category struct {
	Name   string   `yaml:"name"`
	Titles []string `yaml:"titles"`
}
