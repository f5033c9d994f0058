package main

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/cmd"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/configpaths"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/log"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/util"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one command and returns the exit status. Sinks and the raw log
// are closed before it returns, also on failure.
func run(args []string) int {
	userCfg := findUserConfig(args)
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	parser, err := kong.New(&cli,
		kong.Name("solitario"),
		kong.Description("Accessible klondike solitaire for the terminal"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	level := log.ParseLevel(cli.Log.Level)
	if err := log.Configure(log.Options{Dir: cli.Log.Dir, Level: level, Console: cli.Log.Console}); err != nil {
		_, _ = os.Stderr.WriteString("failed to set up logging: " + err.Error() + "\n")
		return 2
	}
	logs := log.Default()
	defer func() { _ = logs.Close() }()
	logger := logs.Root().Logger()
	slog.SetDefault(logger)

	rawPath := cli.Log.Raw
	if rawPath == "" && level <= log.LevelTrace {
		rawPath = filepath.Join(cli.Log.Dir, "raw.log")
	}
	var rawLogger log.RawLogger
	if rawPath != "" {
		f, err := os.OpenFile(rawPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", rawPath, "error", err)
			rawLogger = log.NewRaw(nil)
		} else {
			rawLogger = log.NewRaw(f)
			defer f.Close()
		}
	} else {
		rawLogger = log.NewRaw(nil)
	}

	ctx.Bind(logger, logs)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))

	if err := ctx.Run(); err != nil {
		logger.Error("command failed", "command", ctx.Command(), "error", err)
		if util.LaunchedFromDesktop() {
			_, _ = os.Stderr.WriteString(err.Error() + "\nPress Enter to exit.\n")
			_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
		}
		ctx.Errorf("%s", err)
		return 1
	}
	return 0
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("SOLITARIO_CONFIG")
}
