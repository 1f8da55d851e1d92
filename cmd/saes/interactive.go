package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const menu = `
1) encrypt
2) decrypt
q) quit
> `

// ChoiceError reports a menu selection that is not one of the offered choices.
type ChoiceError struct {
	Choice string
}

func (e *ChoiceError) Error() string {
	return fmt.Sprintf("unknown choice %q: want 1, 2 or q", e.Choice)
}

// runSession reads menu choices, blocks and keys line by line until the input ends or the user quits. Every block is
// traced. The first malformed line ends the session with an error.
func runSession(e *env) error {
	sc := bufio.NewScanner(e.in)
	ask := func(prompt string) (string, error) {
		if e.prompt {
			_, _ = fmt.Fprint(e.out, prompt)
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	askWord := func(name string) (uint16, error) {
		line, err := ask(name + " (0x-prefixed hex or binary): ")
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("reading %s: %w", name, io.ErrUnexpectedEOF)
		} else if err != nil {
			return 0, err
		}
		return parseWord(name, line)
	}

	for {
		choice, err := ask(menu)
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		var decrypt bool
		switch strings.ToLower(choice) {
		case "":
			continue
		case "1", "e", "encrypt":
		case "2", "d", "decrypt":
			decrypt = true
		case "q", "quit", "exit":
			return nil
		default:
			return &ChoiceError{Choice: choice}
		}

		block, err := askWord("block")
		if err != nil {
			return err
		}

		key, err := askWord("key")
		if err != nil {
			return err
		}

		crypt(e, block, key, decrypt, true)
	}
}
