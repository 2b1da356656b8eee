package seed

// Config is the top-level structure of seed.yaml.
type Config struct {
	IsDark          *bool          `yaml:"isDark,omitempty"`
	BackgroundImage string         `yaml:"backgroundImage,omitempty"`
	Sections        []SectionProps `yaml:"sections"`
}

// SectionProps describes one section to create on first boot.
type SectionProps struct {
	Name    string      `yaml:"name"`
	Private bool        `yaml:"private,omitempty"`
	Links   []LinkProps `yaml:"links"`
}

// LinkProps describes one link inside a seeded section.
type LinkProps struct {
	URL         string `yaml:"url"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}
