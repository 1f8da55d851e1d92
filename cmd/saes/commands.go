package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/codahale/saes"
	"github.com/codahale/saes/internal/word"
	"github.com/urfave/cli"
)

var errMissingKey = errors.New("missing --key")

func keyFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "key, k",
			Usage: "The 16-bit key, as 0x-prefixed hex or binary.",
		},
		cli.BoolFlag{
			Name:  "trace, t",
			Usage: "Print the state after every step of the cipher.",
		},
	}
}

func encryptCommand(e *env) cli.Command {
	return cli.Command{
		Name:      "encrypt",
		Usage:     "Encrypt a single block.",
		ArgsUsage: "plaintext",
		Description: "Encrypts a 16-bit plaintext block given as 0x-prefixed hex (0x6F6B) or binary " +
			"(0110111101101011).",
		Flags:  keyFlags(),
		Action: cryptAction(e, false),
	}
}

func decryptCommand(e *env) cli.Command {
	return cli.Command{
		Name:      "decrypt",
		Usage:     "Decrypt a single block.",
		ArgsUsage: "ciphertext",
		Description: "Decrypts a 16-bit ciphertext block. A wrong key is not detected: it produces a " +
			"different plaintext.",
		Flags:  keyFlags(),
		Action: cryptAction(e, true),
	}
}

func cryptAction(e *env, decrypt bool) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return fmt.Errorf("%s: expected one block argument, got %d", ctx.Command.Name, ctx.NArg())
		}

		if !ctx.IsSet("key") {
			return errMissingKey
		}

		key, err := parseWord("key", ctx.String("key"))
		if err != nil {
			return err
		}

		block, err := parseWord("block", ctx.Args().First())
		if err != nil {
			return err
		}

		crypt(e, block, key, decrypt, ctx.Bool("trace"))
		return nil
	}
}

func expandCommand(e *env) cli.Command {
	return cli.Command{
		Name:      "expand",
		Usage:     "Print the round keys for a key.",
		ArgsUsage: "key",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				return fmt.Errorf("expand: expected one key argument, got %d", ctx.NArg())
			}

			key, err := parseWord("key", ctx.Args().First())
			if err != nil {
				return err
			}

			renderRoundKeys(e.out, saes.Expand(key))
			return nil
		},
	}
}

func tablesCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "tables",
		Usage: "Print the S-box, the inverse S-box and the GF(2^4) multiplication table.",
		Action: func(_ *cli.Context) error {
			renderSBox(e.out, "S-box", saes.SBox())
			renderSBox(e.out, "Inverse S-box", saes.InvSBox())
			renderGF16(e.out, saes.GF16())
			return nil
		},
	}
}

func interactiveCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "interactive",
		Usage: "Encrypt and decrypt blocks from a menu. This is the default.",
		Action: func(_ *cli.Context) error {
			return runSession(e)
		},
	}
}

func parseWord(name, s string) (uint16, error) {
	w, err := word.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return w, nil
}

// crypt runs one block through the cipher and writes the result, preceded by a trace table if trace is set.
func crypt(e *env, block, key uint16, decrypt, trace bool) {
	rk := saes.Expand(key)
	e.log.Debug("expanded key", "key", word.Hex(key), "k1", word.Hex(rk[1]), "k2", word.Hex(rk[2]))

	var steps []step
	var tr saes.Tracer
	if trace {
		tr = func(stage saes.Stage, state uint16) {
			steps = append(steps, step{stage: stage, state: state})
		}
	}

	in, out := "plaintext", "ciphertext"
	var result uint16
	if decrypt {
		in, out = out, in
		result = saes.DecryptTrace(block, rk, tr)
	} else {
		result = saes.EncryptTrace(block, rk, tr)
	}
	e.log.Debug("processed block", "decrypt", decrypt, "in", word.Hex(block), "out", word.Hex(result))

	if trace {
		renderTrace(e.out, steps)
	}
	writeWord(e.out, in, block)
	writeWord(e.out, "key", key)
	writeWord(e.out, out, result)
}

func writeWord(w io.Writer, label string, v uint16) {
	_, _ = fmt.Fprintf(w, "%-10s  %s  %s\n", label, word.Hex(v), word.Binary(v))
}
