// Package config loads ability loadouts from TOML files via viper, with
// sane defaults when no file is present.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/abilitygate/ability"
	"github.com/lixenwraith/abilitygate/constants"
)

// AbilityConfig describes one action in a loadout.
type AbilityConfig struct {
	// Name identifies the ability in the UI and in events.
	Name string `mapstructure:"name"`

	// CooldownSeconds is the per-action recovery time. Zero means no
	// cooldown of its own.
	CooldownSeconds float64 `mapstructure:"cooldown_seconds"`

	// Charges is the maximum charge count. Zero means uncharged.
	Charges int `mapstructure:"charges"`

	// ReplenishStrategy is "one" or "all". Ignored when Charges is zero.
	ReplenishStrategy string `mapstructure:"replenish_strategy"`

	// CooldownStrategy is "ignore", "constant" or "when_empty".
	// Ignored when Charges is zero.
	CooldownStrategy string `mapstructure:"cooldown_strategy"`

	// Cost is the pool price per activation. Zero means free.
	Cost float64 `mapstructure:"cost"`
}

// ManaConfig describes the shared resource pool.
type ManaConfig struct {
	Max   float64 `mapstructure:"max"`
	Regen float64 `mapstructure:"regen"`
}

// Config is a full loadout: tick rate, global cooldown, pool and
// abilities.
type Config struct {
	TickMillis            int           `mapstructure:"tick_millis"`
	GlobalCooldownSeconds float64       `mapstructure:"global_cooldown_seconds"`
	Mana                  ManaConfig    `mapstructure:"mana"`
	Abilities             []AbilityConfig `mapstructure:"abilities"`
}

// TickInterval returns the scheduler step as a duration.
func (c *Config) TickInterval() time.Duration {
	if c.TickMillis <= 0 {
		return constants.DefaultTickInterval
	}
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Default returns the built-in four-ability loadout used when no config
// file is supplied.
func Default() *Config {
	return &Config{
		TickMillis:            16,
		GlobalCooldownSeconds: 0.5,
		Mana:                  ManaConfig{Max: 100, Regen: 8},
		Abilities: []AbilityConfig{
			{Name: "bolt", CooldownSeconds: 1.5, Cost: 10},
			{Name: "nova", CooldownSeconds: 6, Cost: 35},
			{Name: "blink", CooldownSeconds: 8, Charges: 2, ReplenishStrategy: "one", CooldownStrategy: "when_empty"},
			{Name: "barrage", CooldownSeconds: 2, Charges: 3, ReplenishStrategy: "one", CooldownStrategy: "constant", Cost: 5},
		},
	}
}

// Load reads a loadout from path. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks structural constraints that viper cannot express.
func (c *Config) Validate() error {
	if c.GlobalCooldownSeconds < 0 {
		return fmt.Errorf("global_cooldown_seconds must not be negative")
	}
	if c.Mana.Max < 0 || c.Mana.Regen < 0 {
		return fmt.Errorf("mana max and regen must not be negative")
	}
	if len(c.Abilities) == 0 {
		return fmt.Errorf("at least one ability is required")
	}
	for i, a := range c.Abilities {
		if a.Name == "" {
			return fmt.Errorf("ability %d has no name", i)
		}
		if a.CooldownSeconds < 0 {
			return fmt.Errorf("ability %q: cooldown_seconds must not be negative", a.Name)
		}
		if a.Charges < 0 || a.Charges > 255 {
			return fmt.Errorf("ability %q: charges must be in [0, 255]", a.Name)
		}
		if a.Cost < 0 {
			return fmt.Errorf("ability %q: cost must not be negative", a.Name)
		}
		if a.Charges > 0 {
			if _, err := a.Replenish(); err != nil {
				return fmt.Errorf("ability %q: %w", a.Name, err)
			}
			if _, err := a.CooldownCoupling(); err != nil {
				return fmt.Errorf("ability %q: %w", a.Name, err)
			}
		}
	}
	return nil
}

// Replenish maps the textual replenish strategy to its engine value.
// Empty defaults to one-at-a-time.
func (a *AbilityConfig) Replenish() (ability.ReplenishStrategy, error) {
	switch a.ReplenishStrategy {
	case "", "one":
		return ability.OneAtATime, nil
	case "all":
		return ability.AllAtOnce, nil
	default:
		return 0, fmt.Errorf("unknown replenish_strategy %q", a.ReplenishStrategy)
	}
}

// CooldownCoupling maps the textual cooldown strategy to its engine
// value. Empty defaults to when-empty, the common game feel.
func (a *AbilityConfig) CooldownCoupling() (ability.CooldownStrategy, error) {
	switch a.CooldownStrategy {
	case "", "when_empty":
		return ability.RefreshWhenEmpty, nil
	case "constant":
		return ability.ConstantlyRefresh, nil
	case "ignore":
		return ability.Ignore, nil
	default:
		return 0, fmt.Errorf("unknown cooldown_strategy %q", a.CooldownStrategy)
	}
}
