// Package scenario describes the demo host's simulated actions. Each
// scenario names the outcome its action ends in, as a YAML document that maps
// onto a domain.Request.
package scenario

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/riordanpawley/outcome/internal/config"
	"github.com/riordanpawley/outcome/internal/domain"
	"github.com/riordanpawley/outcome/internal/ui/overlay"
)

//go:embed default.yaml
var defaultScenarios []byte

// Intent is what a scenario action does in the host. Callbacks cannot live in
// YAML, so actions name an intent and the host binds it.
type Intent string

const (
	// IntentDismiss closes the overlay
	IntentDismiss Intent = "dismiss"
	// IntentRetry closes the overlay and runs the scenario again
	IntentRetry Intent = "retry"
	// IntentNotify closes the overlay and shows the action's note as a toast
	IntentNotify Intent = "notify"
)

// File is the top level of a scenario document
type File struct {
	Scenarios []Scenario `yaml:"scenarios" validate:"min=1,unique=Name,dive"`
}

// Scenario is one simulated action and its outcome
type Scenario struct {
	Name        string      `yaml:"name" validate:"required"`
	Description string      `yaml:"description"`
	Variant     string      `yaml:"variant" validate:"required,oneof=failure error success"`
	Type        string      `yaml:"type"`
	Title       string      `yaml:"title" validate:"required"`
	Message     string      `yaml:"message"`
	Detail      *DetailSpec `yaml:"detail" validate:"omitempty"`
	Primary     *ActionSpec `yaml:"primary" validate:"omitempty"`
	Secondary   *ActionSpec `yaml:"secondary" validate:"omitempty"`
}

// DetailSpec is the success detail panel
type DetailSpec struct {
	Name            string `yaml:"name"`
	Image           string `yaml:"image"`
	Price           string `yaml:"price"`
	Currency        string `yaml:"currency"`
	ID              string `yaml:"id"`
	TransactionHash string `yaml:"transaction_hash"`
}

// ActionSpec is one button of the action row
type ActionSpec struct {
	Label  string `yaml:"label" validate:"required"`
	Icon   string `yaml:"icon"`
	Key    string `yaml:"key" validate:"omitempty,len=1"`
	Intent Intent `yaml:"intent" validate:"required,oneof=dismiss retry notify"`
	// Note is the toast text for IntentNotify
	Note string `yaml:"note"`
}

// ParseError reports a scenario document that could not be decoded
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse decodes and validates a scenario document. source names the document
// in errors.
func Parse(data []byte, source string) ([]Scenario, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &ParseError{Source: source, Line: extractLine(err), Err: err}
	}

	if err := config.ConvertValidationError(config.Validator().Struct(&f)); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	for _, s := range f.Scenarios {
		if err := s.check(); err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
	}
	return f.Scenarios, nil
}

// Validate checks a scenario built outside a document, e.g. from flags
func (s Scenario) Validate() error {
	if err := config.ConvertValidationError(config.Validator().Struct(&s)); err != nil {
		return err
	}
	return s.check()
}

func (s Scenario) check() error {
	if _, err := domain.ParseVariant(s.Variant); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	if s.Detail != nil && s.variant() != domain.VariantSuccess {
		return fmt.Errorf("scenario %q: detail is only shown on success", s.Name)
	}
	keys := overlay.DefaultKeyMap()
	for _, a := range []*ActionSpec{s.Primary, s.Secondary} {
		if a == nil || a.Key == "" {
			continue
		}
		if r := []rune(a.Key); keys.Binds(r[0]) {
			return fmt.Errorf("scenario %q: key %q of %q is reserved by the overlay", s.Name, a.Key, a.Label)
		}
	}
	return nil
}

// Load reads a scenario file from disk
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}
	return Parse(data, path)
}

// Default returns the built-in scenarios
func Default() []Scenario {
	scenarios, err := Parse(defaultScenarios, "default.yaml")
	if err != nil {
		panic(fmt.Sprintf("built-in scenarios: %v", err))
	}
	return scenarios
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, err := fmt.Sscanf(matches[1], "%d", &line); err != nil {
		return 0
	}
	return line
}

func (s Scenario) variant() domain.Variant {
	v, _ := domain.ParseVariant(s.Variant)
	return v
}
