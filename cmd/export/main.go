package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VoidMesh/terragen/internal/config"
	"github.com/VoidMesh/terragen/internal/export"
	"github.com/VoidMesh/terragen/internal/logging"
	"github.com/VoidMesh/terragen/internal/terrain"
)

func main() {
	presetsPath := flag.String("presets", "", "YAML file with extra presets")
	preset := flag.String("preset", config.DefaultPresetName, "Preset to generate")
	seed := flag.Int64("seed", 0, "Noise seed (overrides the preset)")
	random := flag.Bool("random", false, "Draw a random seed")
	width := flag.Int("width", 0, "Grid width in vertices (overrides the preset)")
	length := flag.Int("length", 0, "Grid length in vertices (overrides the preset)")
	resolution := flag.Int("resolution", 0, "Texture resolution in pixels (overrides the preset)")
	out := flag.String("out", "./terrain", "Output directory")
	timeout := flag.Duration("timeout", time.Minute, "Generation timeout")
	logLevel := flag.String("log", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logging.Setup(logging.Options{Level: *logLevel, Format: "text", Prefix: "[terragen] "})
	logger := logging.GetLogger()

	presets, err := config.LoadPresets(*presetsPath)
	if err != nil {
		logger.Fatal("Failed to load presets", "error", err)
	}

	settings, ok := presets.Get(*preset)
	if !ok {
		logger.Fatal("Unknown preset", "preset", *preset, "available", presets.Names())
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			settings.Noise.Seed = *seed
		case "width":
			settings.Width = *width
		case "length":
			settings.Length = *length
		case "resolution":
			settings.TextureResolution = *resolution
		}
	})
	settings.Noise.UseRandomSeed = *random

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	generator := terrain.NewGeneratorWithDefaultLogger()

	start := time.Now()
	result, err := generator.Generate(ctx, settings)
	if err != nil {
		logging.WithSeed(settings.Noise.Seed).Fatal("Failed to generate terrain", "preset", *preset, "error", err)
	}
	logging.WithDimensions(result.Settings.Width, result.Settings.Length).Info("Generated terrain",
		"preset", *preset,
		"seed", result.Seed,
	)

	files, err := export.WriteResult(*out, result)
	if err != nil {
		logger.Fatal("Failed to write terrain", "dir", *out, "error", err)
	}
	logging.WithDuration("export", time.Since(start)).Info("Export complete", "dir", *out, "files", len(files))

	for _, f := range files {
		fmt.Println(f)
	}
}
