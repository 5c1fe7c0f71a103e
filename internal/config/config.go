// Package config handles loading and validating kinematics scenarios.
package config

import "time"

// Display systems accepted by Output.System.
const (
	SystemSI       = "si"
	SystemImperial = "imperial"
)

// Systems lists every accepted display system.
var Systems = []string{SystemSI, SystemImperial}

// Config holds all simulator settings.
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ScenarioConfig describes a body under constant acceleration. Numeric
// values are in SI units.
type ScenarioConfig struct {
	Name         string        `yaml:"name"`
	MassKg       float64       `yaml:"mass_kg"`
	Position     [3]float64    `yaml:"position"`     // m
	Velocity     [3]float64    `yaml:"velocity"`     // m/s
	Acceleration [3]float64    `yaml:"acceleration"` // m/s^2
	HeadingDeg   float64       `yaml:"heading_deg"`  // rotation about +Z applied to velocity and acceleration
	Duration     time.Duration `yaml:"duration"`
	Step         time.Duration `yaml:"step"`
	SampleEvery  int           `yaml:"sample_every"` // report every Nth step
	StopAtRest   bool          `yaml:"stop_at_rest"` // end early once the body stops
}

// OutputConfig holds report settings.
type OutputConfig struct {
	System    string `yaml:"system"` // "si" or "imperial"
	Precision int32  `yaml:"precision"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values: a 2 kg body
// thrown at 10 m/s under standard gravity.
func Default() *Config {
	return &Config{
		Scenario: ScenarioConfig{
			Name:         "projectile",
			MassKg:       2,
			Velocity:     [3]float64{10, 0, 10},
			Acceleration: [3]float64{0, 0, -9.80665},
			Duration:     2 * time.Second,
			Step:         10 * time.Millisecond,
			SampleEvery:  10,
		},
		Output: OutputConfig{
			System:    SystemSI,
			Precision: 3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
