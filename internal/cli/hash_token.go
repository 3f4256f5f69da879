package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/bookshelf/internal/auth"
)

// HashTokenCommand prints the bcrypt hash to put into AUTH_TOKEN_HASH.
// Without -token a fresh random token is generated and printed as well.
type HashTokenCommand struct {
	Token string
	Cost  int

	out io.Writer
}

func NewHashTokenCommand() *HashTokenCommand {
	return &HashTokenCommand{out: os.Stdout}
}

func (cmd *HashTokenCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("hash-token", flag.ContinueOnError)

	fs.StringVar(&cmd.Token, "token", "", "Token to hash (a random one is generated when empty)")
	fs.IntVar(&cmd.Cost, "cost", bcrypt.DefaultCost, "bcrypt cost factor")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s hash-token [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate the AUTH_TOKEN_HASH value used when AUTH_MODE=token.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Cost < bcrypt.MinCost || cmd.Cost > bcrypt.MaxCost {
		return fmt.Errorf("-cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

func (cmd *HashTokenCommand) Run() error {
	generated := cmd.Token == ""
	if generated {
		token, err := auth.GenerateToken()
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}
		cmd.Token = token
	}

	hash, err := auth.HashToken(cmd.Token, cmd.Cost)
	if err != nil {
		return err
	}

	if generated {
		fmt.Fprintf(cmd.out, "Token: %s\n", cmd.Token)
	}
	fmt.Fprintf(cmd.out, "AUTH_TOKEN_HASH=%s\n", hash)
	return nil
}
