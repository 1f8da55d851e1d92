// Command saes encrypts and decrypts single 16-bit blocks with Simplified AES, optionally printing every intermediate
// state of the cipher.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/term"
)

// env holds the streams a command reads from and writes to.
type env struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// prompt is set when in is an interactive terminal.
	prompt bool

	log *slog.Logger
}

func fatal(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[saes] %v\n", err)
	os.Exit(1)
}

func newApp(e *env) *cli.App {
	app := cli.NewApp()
	app.Name = "saes"
	app.Usage = "trace Simplified AES one block at a time"
	app.Writer = e.out
	app.ErrWriter = e.errOut
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "Log debug output to stderr.",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		level := slog.LevelInfo
		if ctx.GlobalBool("verbose") {
			level = slog.LevelDebug
		}
		e.log = slog.New(slog.NewTextHandler(e.errOut, &slog.HandlerOptions{Level: level}))
		return nil
	}
	app.Commands = []cli.Command{
		encryptCommand(e),
		decryptCommand(e),
		expandCommand(e),
		tablesCommand(e),
		interactiveCommand(e),
	}
	app.Action = func(_ *cli.Context) error {
		return runSession(e)
	}
	return app
}

func main() {
	e := &env{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		prompt: term.IsTerminal(int(os.Stdin.Fd())), //nolint:gosec // file descriptors fit in an int
	}

	if err := newApp(e).Run(os.Args); err != nil {
		fatal(err)
	}
}
