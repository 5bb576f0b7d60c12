package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLevel    = flag.String("level", "", "Path to level file (.json, .yaml, .toml)")
	flagScript   = flag.String("script", "", "Hero commands, one per tick: f b l r n")
	flagRealtime = flag.Bool("realtime", false, "Pace ticks at the configured tick rate")
	flagNight    = flag.Bool("night", false, "Start in night mode")
	flagWatch    = flag.Bool("watch", false, "Reload the level when its file changes (with -realtime)")
	flagOBJ      = flag.String("obj", "", "Write terrain and roads as Wavefront OBJ")
	flagPreview  = flag.String("preview", "", "Write a PNG height preview")
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
	if *flagLevel != "" {
		cfg.Level.Path = *flagLevel
	}
	if *flagScript != "" {
		cfg.Simulation.Script = *flagScript
	}
	if *flagRealtime {
		cfg.Simulation.Realtime = true
	}
	if *flagNight {
		cfg.Simulation.Night = true
	}
	if *flagWatch {
		cfg.Simulation.Watch = true
	}
	if *flagOBJ != "" {
		cfg.Export.OBJPath = *flagOBJ
	}
	if *flagPreview != "" {
		cfg.Export.PreviewPath = *flagPreview
	}
}
