package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-docsfooter/internal/logging"
)

func main() {
	if err := logging.Setup(os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error().Err(err).Msg("docsfooter failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printGlobalHelp(stderr)
		return errors.New("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "render":
		return runRender(ctx, rest, stdout, stderr)
	case "check":
		return runCheck(rest, stdout, stderr)
	case "init":
		return runInit(ctx, rest, stdout, stderr)
	case "renderers":
		return runRenderers(rest, stdout, stderr)
	case "-h", "--help", "help":
		printGlobalHelp(stdout)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printGlobalHelp(w io.Writer) {
	fmt.Fprint(w, `Usage: docsfooter <command> [options]

Commands:
  render      Render the footer for a site config
  check       Validate a site config
  init        Create a site config interactively
  renderers   List available renderers

Use "docsfooter <command> -help" for command-specific options.
`)
}
