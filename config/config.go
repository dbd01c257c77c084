package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/n225risk/risk"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config is a saved plan plus display preferences.
type Config struct {
	Plan    PlanConfig    `json:"plan" yaml:"plan"`
	Display DisplayConfig `json:"display" yaml:"display"`
}

// Amount holds a number exactly as written so it reaches the validator
// untouched. Both `40000` and `"40,000"` decode.
type Amount string

func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number, got %s", value.Line, value.ShortTag())
	}
	if value.ShortTag() == "!!null" {
		*a = ""
		return nil
	}
	*a = Amount(value.Value)
	return nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*a = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*a = Amount(str)
		return nil
	}
	*a = Amount(s)
	return nil
}

// PlanConfig mirrors risk.RawInput. Leave quantity or loss_cut_width empty to
// use the defaults.
type PlanConfig struct {
	StartPrice   Amount `json:"start_price" yaml:"start_price"`
	EndPrice     Amount `json:"end_price" yaml:"end_price"`
	Step         Amount `json:"step" yaml:"step"`
	Quantity     Amount `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	CurrentPrice Amount `json:"current_price" yaml:"current_price"`
	LossCutRate  Amount `json:"loss_cut_rate" yaml:"loss_cut_rate"`
	LossCutWidth Amount `json:"loss_cut_width,omitempty" yaml:"loss_cut_width,omitempty"`
}

// DisplayConfig controls how results are rendered.
type DisplayConfig struct {
	Locale       string `json:"locale" yaml:"locale"`                                       // BCP 47 tag for digit grouping
	LossPerPoint Amount `json:"loss_per_point,omitempty" yaml:"loss_per_point,omitempty"` // yen per point in the worst-case line
	SummaryOnly  bool   `json:"summary_only,omitempty" yaml:"summary_only,omitempty"`
}

func (p PlanConfig) RawInput() risk.RawInput {
	return risk.RawInput{
		StartPrice:   string(p.StartPrice),
		EndPrice:     string(p.EndPrice),
		Step:         string(p.Step),
		Quantity:     string(p.Quantity),
		CurrentPrice: string(p.CurrentPrice),
		LossCutRate:  string(p.LossCutRate),
		LossCutWidth: string(p.LossCutWidth),
	}
}

// IsEmpty reports whether no plan field was given.
func (p PlanConfig) IsEmpty() bool {
	return p == PlanConfig{}
}

// Load reads a file (YAML, falling back to JSON) without validating it, so a
// partial plan can be completed by the caller before it is checked.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a file and validates it, plan included.
func LoadFromFile(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks display settings and, when a plan is present, runs it
// through the same validator the calculator uses.
func (c *Config) Validate() error {
	if _, err := c.Language(); err != nil {
		return err
	}
	if _, err := c.LossPerPoint(); err != nil {
		return err
	}
	if c.Plan.IsEmpty() {
		return nil
	}
	if _, err := risk.Validate(c.Plan.RawInput()); err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	return nil
}

// Language returns the display locale, Japanese when unset.
func (c *Config) Language() (language.Tag, error) {
	if c.Display.Locale == "" {
		return language.Japanese, nil
	}
	tag, err := language.Parse(c.Display.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("display.locale %q: %w", c.Display.Locale, err)
	}
	return tag, nil
}

// LossPerPoint returns the worst-case figure, risk.DefaultLossPerPoint when unset.
func (c *Config) LossPerPoint() (decimal.Decimal, error) {
	if c.Display.LossPerPoint == "" {
		return risk.DefaultLossPerPoint, nil
	}
	v, err := risk.ParseAmount(string(c.Display.LossPerPoint))
	if err != nil {
		return decimal.Zero, fmt.Errorf("display.loss_per_point must be a number: %w", err)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("display.loss_per_point must not be negative")
	}
	return v, nil
}

// Default returns a ready-to-edit plan: a one-lot-per-100-yen buy ladder.
func Default() *Config {
	return &Config{
		Plan: PlanConfig{
			StartPrice:   "40000",
			EndPrice:     "41000",
			Step:         "100",
			Quantity:     "0.1",
			CurrentPrice: "40500",
			LossCutRate:  "35000",
			LossCutWidth: "2139",
		},
		Display: DisplayConfig{
			Locale:       "ja",
			LossPerPoint: "100",
		},
	}
}
