package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagDuration  = flag.Duration("duration", 0, "Simulated time span, e.g. 5s")
	flagStep      = flag.Duration("step", 0, "Integration step, e.g. 10ms")
	flagMass      = flag.Float64("mass", 0, "Body mass in kilograms")
	flagHeading   = flag.Float64("heading", 0, "Heading in degrees about +Z")
	flagSystem    = flag.String("system", "", "Report units: si or imperial")
	flagPrecision = flag.Int("precision", -1, "Decimal places in the report")
	flagLogFile   = flag.String("log-file", "", "Write JSON logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDuration > 0 {
		cfg.Scenario.Duration = *flagDuration
	}
	if *flagStep > 0 {
		cfg.Scenario.Step = *flagStep
	}
	if *flagMass > 0 {
		cfg.Scenario.MassKg = *flagMass
	}
	if *flagHeading != 0 {
		cfg.Scenario.HeadingDeg = *flagHeading
	}
	if *flagSystem != "" {
		cfg.Output.System = *flagSystem
	}
	if *flagPrecision >= 0 {
		cfg.Output.Precision = int32(*flagPrecision)
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
		cfg.Logging.JSON = true
	}
}

// resetFlags restores every flag to its zero override. Used by tests.
func resetFlags() {
	*flagConfig = ""
	*flagDebug = false
	*flagDuration = 0
	*flagStep = 0
	*flagMass = 0
	*flagHeading = 0
	*flagSystem = ""
	*flagPrecision = -1
	*flagLogFile = ""
}
