// kinematics runs constant-acceleration scenarios and prints the motion in
// SI or imperial units.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/measures/internal/config"
	"github.com/Faultbox/measures/internal/logger"
	"github.com/Faultbox/measures/internal/motion"
	"github.com/Faultbox/measures/internal/report"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "init":
			cmdInit(args[1:])
			return
		case "run":
		case "help":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
			printUsage()
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	opts := logger.Options{Level: cfg.Logging.Level, Console: true, JSON: cfg.Logging.JSON}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.Init(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := simulate(ctx, cfg)
	stop()
	os.Exit(code)
}

// simulate runs cfg and returns the exit code. The logger is flushed
// before it returns.
func simulate(ctx context.Context, cfg *config.Config) int {
	defer logger.Sync()

	if err := run(ctx, cfg); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config) error {
	sc := cfg.Scenario

	w, err := report.NewWriter(os.Stdout, cfg.Output.System, cfg.Output.Precision)
	if err != nil {
		return err
	}

	opts := []motion.Option{motion.WithSampleEvery(sc.SampleEvery)}
	if sc.StopAtRest {
		opts = append(opts, motion.WithStopAtRest())
	}
	in, err := motion.NewIntegrator(motion.Duration(sc.Step), logger.Log, opts...)
	if err != nil {
		return err
	}

	if err := w.Header(); err != nil {
		return err
	}
	sum, err := in.Run(ctx, bodyOf(sc), motion.Duration(sc.Duration), w.Sample)
	if err != nil {
		return err
	}

	fmt.Println()
	return w.Summary(sc.Name, sum)
}

func cmdInit(args []string) {
	cfg := config.Default()

	var err error
	path := "kinematics.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if path == "-" {
		path = filepath.Join(config.ConfigDir(), "config.yaml")
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote: %s\n", path)
}

func printUsage() {
	fmt.Println(`kinematics - constant-acceleration motion in typed quantities

Usage:
  kinematics [flags] [run]
  kinematics init [path]             Write the default scenario (path "-" for the user config dir)

Flags:
  -config <file>       Scenario file (default ./kinematics.yaml, then user config dir)
  -duration <d>        Simulated time span, e.g. 5s
  -step <d>            Integration step, e.g. 10ms
  -mass <kg>           Body mass
  -heading <deg>       Rotate velocity and acceleration about +Z
  -system si|imperial  Report units
  -precision <n>       Decimal places
  -debug               Log every step
  -log-file <file>     Also write JSON logs to a rotating file

Examples:
  kinematics init
  kinematics -duration 5s -system imperial
  kinematics -config braking.yaml -precision 1`)
}
