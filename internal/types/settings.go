package types

type (
	// Settings is the persisted configuration record.
	Settings struct {
		OutputFolder          string `yaml:"outputFolder" json:"outputFolder"`
		PreselectParentFolder bool   `yaml:"preselectParentFolder" json:"preselectParentFolder"`
	}

	// PathFilterConfig contains configuration for the path filter.
	PathFilterConfig struct {
		IgnoredPatterns []string `json:"ignoredPatterns"`
	}
)
