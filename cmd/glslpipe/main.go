package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/drayder/glslpipe/config"
	"github.com/drayder/glslpipe/glcompiler"
	"github.com/drayder/glslpipe/glcontext"
	"github.com/drayder/glslpipe/options"
	"github.com/drayder/glslpipe/shader"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var configPath = flag.String("config", "glslpipe.toml", "Path to the settings file")
	var shaderPath = flag.String("shader", "", "Preset or shader path (overrides the settings file)")
	var width = flag.Int("width", 1280, "Window width")
	var height = flag.Int("height", 720, "Window height")
	var save = flag.Bool("save", false, "Write settings back to the settings file on exit")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if *shaderPath != "" {
		cfg.ShaderPath = *shaderPath
	}

	if err := glcontext.Init(); err != nil {
		log.Fatalf("Error initializing graphics: %v", err)
	}
	defer glcontext.Terminate()

	ctx, err := glcontext.New(*width, *height, "glslpipe")
	if err != nil {
		log.Fatalf("Error creating window: %v", err)
	}
	defer ctx.Shutdown()

	opts, err := options.New(cfg, true, shader.DefaultVersion, glcompiler.New())
	if err != nil {
		log.Fatalf("Error building shader pipeline: %v", err)
	}
	defer opts.Release()

	log.Printf("Pipeline ready with %d pass(es)", len(opts.Passes()))
	ctx.SetVSync(opts.VSync())

	view, err := newView(opts, *width, *height)
	if err != nil {
		log.Fatalf("Error preparing preview: %v", err)
	}
	defer view.Release()

	view.Run(ctx, opts)

	if *save {
		opts.Save()
		if err := cfg.Save(*configPath); err != nil {
			log.Fatalf("Error saving config: %v", err)
		}
		log.Printf("Settings saved to %s", *configPath)
	}
}
