package domain

// Segment is one block of a funnel as read from a definition file.
type Segment struct {
	Label          string  `yaml:"label" toml:"label" json:"label"`
	Value          float64 `yaml:"value" toml:"value" json:"value"`
	FormattedValue *string `yaml:"formatted_value,omitempty" toml:"formatted_value,omitempty" json:"formatted_value,omitempty"`
}

// Funnel is a titled, ordered list of segments plus the label template used
// to render them.
type Funnel struct {
	Title    string    `yaml:"title" toml:"title" json:"title"`
	Locale   string    `yaml:"locale,omitempty" toml:"locale,omitempty" json:"locale,omitempty"`
	Format   string    `yaml:"format,omitempty" toml:"format,omitempty" json:"format,omitempty"`
	Segments []Segment `yaml:"segments" toml:"segments" json:"segments"`
}

// LabeledSegment is a segment together with its rendered label text.
type LabeledSegment struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	// Conversion is nil when the conversion does not apply.
	Conversion *float64 `json:"conversion,omitempty"`
	Text       string   `json:"text"`
}

// LabeledFunnel is the result of labelling every segment of a Funnel.
type LabeledFunnel struct {
	Title    string           `json:"title"`
	Locale   string           `json:"locale"`
	Segments []LabeledSegment `json:"segments"`
}
