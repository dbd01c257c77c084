package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/n225risk/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, Amount("40000"), cfg.Plan.StartPrice)
	assert.Equal(t, "ja", cfg.Display.Locale)
	assert.NoError(t, cfg.Validate())

	r, err := risk.Validate(cfg.Plan.RawInput())
	require.NoError(t, err)
	assert.Equal(t, "BUY", r.Direction().String())
}

func TestValidate(t *testing.T) {
	withPlan := func(mut func(*PlanConfig)) *Config {
		c := Default()
		mut(&c.Plan)
		return c
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr error
		errMsg  string
	}{
		{
			name:   "valid config",
			config: Default(),
		},
		{
			name:   "display only",
			config: &Config{Display: DisplayConfig{Locale: "en-US"}},
		},
		{
			name:   "bad locale",
			config: &Config{Display: DisplayConfig{Locale: "not a locale!"}},
			errMsg: "display.locale",
		},
		{
			name:   "bad loss per point",
			config: &Config{Display: DisplayConfig{LossPerPoint: "lots"}},
			errMsg: "display.loss_per_point must be a number",
		},
		{
			name:   "negative loss per point",
			config: &Config{Display: DisplayConfig{LossPerPoint: "-1"}},
			errMsg: "display.loss_per_point must not be negative",
		},
		{
			name:    "equal prices",
			config:  withPlan(func(p *PlanConfig) { p.EndPrice = p.StartPrice }),
			wantErr: risk.ErrAmbiguousDirection,
			errMsg:  "plan: end_price",
		},
		{
			name:    "zero step",
			config:  withPlan(func(p *PlanConfig) { p.Step = "0" }),
			wantErr: risk.ErrInvalidStep,
		},
		{
			name:    "non numeric current price",
			config:  withPlan(func(p *PlanConfig) { p.CurrentPrice = "soon" }),
			wantErr: risk.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil && tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			path := filepath.Join(tmpDir, "plan"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadUnquotedNumbers(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
plan:
  start_price: 30000
  end_price: "29,000"
  step: 500
  current_price: 29500
  loss_cut_rate: 27000
display:
  locale: ja
`), 0644))

	cfg, err := LoadFromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, Amount("30000"), cfg.Plan.StartPrice)
	assert.Equal(t, Amount("29,000"), cfg.Plan.EndPrice)
	assert.Equal(t, Amount(""), cfg.Plan.Quantity)

	jsonPath := filepath.Join(dir, "plan.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
  "plan": {"start_price": 1000, "end_price": "1010", "step": 5, "quantity": 0.1,
           "current_price": 1005, "loss_cut_rate": 900, "loss_cut_width": null}
}`), 0644))

	cfg, err = LoadFromFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, Amount("1000"), cfg.Plan.StartPrice)
	assert.Equal(t, Amount("0.1"), cfg.Plan.Quantity)

	tag, err := cfg.Language()
	require.NoError(t, err)
	assert.Equal(t, language.Japanese, tag)

	lpp, err := cfg.LossPerPoint()
	require.NoError(t, err)
	assert.True(t, lpp.Equal(risk.DefaultLossPerPoint))
}

func TestLoadYAMLNullUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
plan:
  start_price: 30000
  end_price: 29000
  step: 500
  quantity: ~
  current_price: 29500
  loss_cut_rate: 27000
  loss_cut_width: null
`), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, Amount(""), cfg.Plan.Quantity)
	assert.Equal(t, Amount(""), cfg.Plan.LossCutWidth)

	r, err := risk.Validate(cfg.Plan.RawInput())
	require.NoError(t, err)
	assert.Equal(t, "0.1", r.Quantity.String())
	assert.Equal(t, "2139", r.LossCutWidth.String())
}

func TestLoadSkipsPlanValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plan:\n  start_price: 40000\n  end_price: 41000\n  step: 100\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Amount("40000"), cfg.Plan.StartPrice)
	assert.Empty(t, cfg.Plan.CurrentPrice)

	_, err = LoadFromFile(path)
	assert.ErrorIs(t, err, risk.ErrInvalidFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plan:\n  start_price: 27500\n  end_price: 27500\n  step: 100\n  current_price: 1\n  loss_cut_rate: 1\n"), 0644))
	_, err = LoadFromFile(path)
	assert.ErrorIs(t, err, risk.ErrAmbiguousDirection)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("N225RISK_LOG_LEVEL", "debug")
	t.Setenv("N225RISK_CONFIG", "plan.yaml")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, "plan.yaml", env.ConfigPath)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("N225RISK_CONFIG", "")
	// godotenv never overrides a variable that is already present.
	t.Setenv("N225RISK_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("N225RISK_LOG_LEVEL"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("N225RISK_LOG_LEVEL=warn\n"), 0644))

	env, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", env.LogLevel)
	assert.Empty(t, env.ConfigPath)
}
