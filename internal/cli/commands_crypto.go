package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-prefs-keeper/internal/crypto"
)

const defaultPasswordLength = 16

// encrypt prints the ciphertext of every argument, or of every input line.
func (a *App) encrypt(ctx context.Context, args []string) error {
	c, err := a.cryptographer(false)
	if err != nil {
		return err
	}
	plaintexts, err := a.inputs(args)
	if err != nil {
		return err
	}

	for _, p := range plaintexts {
		ciphertext, err := c.Encrypt(p)
		if err != nil {
			return fmt.Errorf("encrypt: %w", err)
		}
		fmt.Fprintln(a.out, ciphertext)
	}
	return nil
}

// decrypt is the inverse of encrypt.
func (a *App) decrypt(ctx context.Context, args []string) error {
	c, err := a.cryptographer(false)
	if err != nil {
		return err
	}
	ciphertexts, err := a.inputs(args)
	if err != nil {
		return err
	}

	for _, ct := range ciphertexts {
		plaintext, err := c.Decrypt(ct)
		if err != nil {
			return fmt.Errorf("decrypt: %w", err)
		}
		fmt.Fprintln(a.out, plaintext)
	}
	return nil
}

func (a *App) password(ctx context.Context, args []string) error {
	fs := a.newFlagSet("password")
	length := fs.Int("length", defaultPasswordLength, "password length")
	alphabet := fs.String("alphabet", "", "characters to draw from")
	alnum := fs.Bool("alnum", false, "letters and digits only")
	toClipboard := fs.Bool("copy", false, "copy to the clipboard instead of printing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	chars := *alphabet
	if chars == "" && *alnum {
		chars = crypto.AlphaNumericChars
	}

	pw, err := crypto.GetRandomPassword(*length, chars)
	if err != nil {
		return err
	}

	if *toClipboard {
		if err = a.copyToClipboard(pw); err != nil {
			return fmt.Errorf("copy password to clipboard: %w", err)
		}
		fmt.Fprintf(a.out, "copied a %d character password to the clipboard\n", *length)
		return nil
	}

	fmt.Fprintln(a.out, pw)
	return nil
}
