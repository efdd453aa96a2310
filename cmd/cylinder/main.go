package main

import (
	"flag"
	"log/slog"
	"os"

	"cylinder3d"
)

var (
	configPath = flag.String("config", "", "TOML file with generator parameters")
	radius     = flag.Float64("radius", 1.0, "cylinder radius")
	height     = flag.Float64("height", 2.0, "cylinder height before inclination")
	incline    = flag.Float64("incline", 45.0, "inclination angle in degrees")
	segments   = flag.Int("segments", 32, "number of angular segments")
	verbose    = flag.Bool("v", false, "log every generated vertex")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	params, err := loadParams()
	if err != nil {
		logger.Error("failed to load parameters", "err", err)
		os.Exit(1)
	}

	vertices, err := params.Generate()
	if err != nil {
		logger.Error("failed to generate cylinder", "err", err)
		os.Exit(1)
	}

	logger.Info("generated inclined cylinder",
		"radius", params.Radius,
		"height", params.Height,
		"inclination", params.InclinationAngle,
		"segments", params.NumSegments,
		"vertices", len(vertices),
	)
	for i, v := range vertices {
		logger.Debug("vertex", "index", i, "position", v.Position, "normal", v.Normal)
	}
}

// loadParams starts from the defaults, applies the config file if given, then
// any flags set explicitly on the command line.
func loadParams() (cylinder3d.Params, error) {
	params := cylinder3d.DefaultParams()
	if *configPath != "" {
		p, err := cylinder3d.LoadParams(*configPath)
		if err != nil {
			return cylinder3d.Params{}, err
		}
		params = p
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "radius":
			params.Radius = float32(*radius)
		case "height":
			params.Height = float32(*height)
		case "incline":
			params.InclinationAngle = float32(*incline)
		case "segments":
			params.NumSegments = *segments
		}
	})

	return params, params.Validate()
}
