package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/classconf/classconf"
	"github.com/classconf/classconf/django"
	"github.com/classconf/classconf/internal/logging"
	"github.com/classconf/classconf/internal/render"
)

func main() {
	app := kingpin.New("classconf", "Resolve class-based settings declarations into flat uppercase-keyed mappings")
	profile := app.Flag("profile", "Path to a YAML settings profile overlaying the defaults").String()

	dumpCmd := app.Command("dump", "Resolve the settings and print the flattened mapping")
	format := dumpCmd.Flag("format", "Output format").Default(render.FormatYAML).Enum(render.Formats()...)
	output := dumpCmd.Flag("output", "Write the mapping to a file instead of stdout").String()

	getCmd := app.Command("get", "Look up a single setting by its uppercase name")
	name := getCmd.Arg("name", "Setting name, e.g. ALLOWED_HOSTS").Required().String()

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.New()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	settings, err := loadSettings(*profile)
	if err != nil {
		logger.Fatal("failed to load settings", zap.Error(err))
	}

	switch cmd {
	case dumpCmd.FullCommand():
		if err := runDump(settings, *format, *output, os.Stdout); err != nil {
			logger.Fatal("dump failed", zap.Error(err))
		}
	case getCmd.FullCommand():
		if err := runGet(settings, *name, os.Stdout); err != nil {
			logger.Fatal("lookup failed", zap.Error(err))
		}
	}
}

// loadSettings resolves the defaults, overlaid with a YAML profile when one
// is given.
func loadSettings(profile string) (*django.Settings, error) {
	if profile == "" {
		return django.Default(), nil
	}
	return django.LoadProfile(profile)
}

// runDump flattens the settings and writes the rendered mapping to the output
// file, or to w when no file is given.
func runDump(settings *django.Settings, format, output string, w io.Writer) error {
	m, err := classconf.Flatten(settings)
	if err != nil {
		return fmt.Errorf("flatten settings: %w", err)
	}

	data, err := render.Render(m, format)
	if err != nil {
		return err
	}

	if output != "" {
		return os.WriteFile(output, data, 0o644)
	}

	_, err = w.Write(data)
	return err
}

// runGet projects a single setting by name. Unknown names fail loudly with an
// error naming the missing setting.
func runGet(settings *django.Settings, name string, w io.Writer) error {
	proj, err := classconf.Project(settings)
	if err != nil {
		return fmt.Errorf("project settings: %w", err)
	}

	value, err := proj.Get(name)
	if err != nil {
		return err
	}

	data, err := render.Render(classconf.Map{name: value}, render.FormatYAML)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}
