// Package cli implements the capitalize command-line tool.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/greeter/internal/app"
	"github.com/jsamuelsen11/greeter/internal/domain/greeting"
	"github.com/jsamuelsen11/greeter/internal/platform/logging"
	"github.com/jsamuelsen11/greeter/internal/ports"
)

// version is overridden at build time with
// -ldflags "-X github.com/jsamuelsen11/greeter/internal/cli.version=v1.2.3".
var version = "dev"

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		greet    string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "capitalize [text...]",
		Short: "Capitalize the first letter of every word",
		Long: `Capitalize uppercases the first letter of every word and keeps all
whitespace exactly as given.

Arguments are joined with single spaces and printed with a trailing newline.
Without arguments the text is read from stdin and written back unchanged
apart from the capitalized letters.`,
		Example: `  capitalize what a wonderful world
  capitalize --greet hi ada lovelace
  printf 'one\ttwo\n' | capitalize`,
		Version:      version,
		SilenceUsage: true,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return validateGreet(greet)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(logLevel, "text", cmd.ErrOrStderr())
			svc := app.NewGreetingService(0, nil, logger)

			input, fromArgs, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			out, err := render(cmd, svc, greet, input)
			if err != nil {
				return err
			}
			if fromArgs {
				out += "\n"
			}

			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&greet, "greet", "g", "", "wrap the result in a greeting (hello|hi)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr (debug|info|warn|error)")
	return cmd
}

// readInput returns the text to capitalize and whether it came from args.
func readInput(stdin io.Reader, args []string) (string, bool, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), true, nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", false, fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), false, nil
}

func render(cmd *cobra.Command, svc ports.GreetingService, greet, input string) (string, error) {
	ctx := cmd.Context()

	var (
		g   greeting.Greeting
		err error
	)
	switch greeting.Kind(greet) {
	case "":
		return svc.Capitalize(ctx, input), nil
	case greeting.KindHello:
		g, err = svc.Hello(ctx, input)
	case greeting.KindHi:
		g, err = svc.Hi(ctx, input)
	}
	if err != nil {
		return "", err
	}
	return g.Message, nil
}

func validateGreet(greet string) error {
	switch greeting.Kind(greet) {
	case "", greeting.KindHello, greeting.KindHi:
		return nil
	default:
		return fmt.Errorf("unknown greeting %q (want %s or %s)", greet, greeting.KindHello, greeting.KindHi)
	}
}
