package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/funnel-label/internal/domain"
)

var (
	// ErrEmptyFunnel is returned for a funnel definition without segments.
	ErrEmptyFunnel = errors.New("funnel has no segments")
	// ErrUnsupportedConfigType is returned for file extensions other than
	// .yaml, .yml and .toml.
	ErrUnsupportedConfigType = errors.New("unsupported funnel file type")
)

// InputParser handles parsing of funnel definition files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a funnel from a YAML or TOML file, picked by extension.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Funnel, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %s", filename)
	}

	var f *domain.Funnel
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		f, err = ip.ParseYAML(data)
	case ".toml":
		f, err = ip.ParseTOML(data)
	default:
		return nil, errors.Wrapf(ErrUnsupportedConfigType, "%q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", filename)
	}
	return f, nil
}

// ParseYAML decodes and validates a YAML funnel definition.
func (ip *InputParser) ParseYAML(data []byte) (*domain.Funnel, error) {
	var f domain.Funnel
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse YAML")
	}
	if err := ip.ValidateFunnel(&f); err != nil {
		return nil, errors.Wrap(err, "funnel validation failed")
	}
	return &f, nil
}

// ParseTOML decodes and validates a TOML funnel definition.
func (ip *InputParser) ParseTOML(data []byte) (*domain.Funnel, error) {
	var f domain.Funnel
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse TOML")
	}
	if err := ip.ValidateFunnel(&f); err != nil {
		return nil, errors.Wrap(err, "funnel validation failed")
	}
	return &f, nil
}

// ValidateFunnel checks the structural rules of a funnel definition. Label
// templates are not validated.
func (ip *InputParser) ValidateFunnel(f *domain.Funnel) error {
	if len(f.Segments) == 0 {
		return ErrEmptyFunnel
	}
	for i, s := range f.Segments {
		if strings.TrimSpace(s.Label) == "" {
			return errors.Errorf("segment %d: label is required", i)
		}
		if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
			return errors.Errorf("segment %d (%s): value must be finite", i, s.Label)
		}
	}
	return nil
}
