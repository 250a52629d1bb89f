package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gridd/config"
	"gridd/export"
	"gridd/palette"
	"gridd/project"
	"gridd/scene"
	"gridd/terminal"
)

func main() {
	var (
		configPath = flag.String("config", defaultConfigPath(), "Config file (TOML)")
		width      = flag.Int("width", 0, "Grid width for new projects (overrides config)")
		height     = flag.Int("height", 0, "Grid height for new projects (overrides config)")
		paletteID  = flag.String("palette", "", "Palette id (overrides config)")
		format     = flag.String("format", "", "Export instead of editing: text, ansi")
		outputFile = flag.String("o", "", "Export output file (default: stdout)")
		help       = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [project.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A layered cell-grid text art editor.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # Start with a blank grid\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s art.json                 # Edit a project\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -width 120 -height 40    # Blank grid at a custom size\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format text art.json    # Export plain text to stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format ansi -o art.ans art.json\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *paletteID != "" {
		cfg.Palette = *paletteID
	}

	var filename string
	if args := flag.Args(); len(args) > 0 {
		filename = args[0]
	}

	scn, pal, err := openScene(cfg, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *format != "" {
		if err := runExport(scn, pal, *format, *outputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := terminal.NewEditor(cfg, scn, pal, filename).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openScene loads the named project, or builds a blank scene when no file is
// given or the file does not exist yet. A saved palette id wins over the
// configured one.
func openScene(cfg config.Config, filename string) (*scene.Scene, *palette.Palette, error) {
	paletteID := cfg.Palette
	var scn *scene.Scene

	if filename != "" {
		doc, err := project.Load(filename)
		switch {
		case os.IsNotExist(err):
			// New file: edit a blank grid, save creates it.
		case err != nil:
			return nil, nil, err
		default:
			if scn, err = doc.ToScene(); err != nil {
				return nil, nil, err
			}
			if doc.Scene.PaletteID != "" {
				paletteID = doc.Scene.PaletteID
			}
		}
	}

	if scn == nil {
		var err error
		if scn, err = scene.NewScene(cfg.Width, cfg.Height); err != nil {
			return nil, nil, err
		}
	}

	pal, err := palette.ByID(paletteID)
	if err != nil {
		return nil, nil, err
	}
	return scn, pal, nil
}

func runExport(scn *scene.Scene, pal *palette.Palette, format, outputFile string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	exp, err := export.NewExporter(f, pal)
	if err != nil {
		return err
	}
	out, err := exp.Export(scn)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	_, err = io.WriteString(w, out)
	return err
}

// defaultConfigPath resolves ~/.config/gridd/gridd.toml, or empty when no
// home directory is known.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gridd", "gridd.toml")
}
