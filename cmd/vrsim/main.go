package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gopxl/beep"

	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/config"
	"github.com/herob4u/VRShowcase/scene"
)

func main() {
	// Panic Recovery: leave the terminal usable and show the crash
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\r\n\x1b[0m\x1b[31mVRSIM CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	scenePath := flag.String("scene", settings.Scene, "scene YAML file (default: built-in showcase)")
	headless := flag.Bool("headless", false, "run without a terminal UI and trace events to stdout")
	duration := flag.Duration("duration", 10*time.Second, "simulated time for headless runs")
	script := flag.String("script", "", `headless uses, e.g. "0.5s:doorbell,6s:front-door"`)
	debugFlag := flag.Bool("debug", settings.Debug, "write logs to logs/vrsim.log")
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(settings, *scenePath, *headless, *duration, *script); err != nil {
		fmt.Fprintf(os.Stderr, "vrsim: %v\n", err)
		os.Exit(1)
	}
}

func run(settings config.Settings, scenePath string, headless bool, duration time.Duration, script string) error {
	file := scene.Demo()
	baseDir := ""
	if scenePath != "" {
		f, err := scene.Load(scenePath)
		if err != nil {
			return err
		}
		file = f
		baseDir = filepath.Dir(scenePath)
	}

	sr := beep.SampleRate(settings.SampleRate)
	opts := scene.Options{SampleRate: sr, BaseDir: baseDir}

	if headless {
		steps, err := parseScript(script)
		if err != nil {
			return err
		}
		rec := &audio.Recorder{}
		opts.Backend = rec
		sc, err := scene.Build(file, opts)
		if err != nil {
			return err
		}
		return runHeadless(sc, steps, duration, settings.Tick, rec, os.Stdout)
	}

	if settings.Audio {
		speaker := audio.NewSpeakerBackend(sr)
		if err := speaker.Init(settings.Volume); err != nil {
			log.Printf("audio unavailable: %v (continuing without audio)", err)
		} else {
			opts.Backend = speaker
			defer speaker.Close()
		}
	}

	sc, err := scene.Build(file, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runInteractive(ctx, sc, settings.Tick)
}
