// hashgood verifies that a file matches an expected checksum without the
// user having to say which algorithm produced it. The algorithm is
// detected from the digest's length, and the expected hash can come from
// a command line argument, the clipboard, a raw-hash file, a
// SHASUMS-style listing, or standard input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	progName    = "hashgood"
	progVersion = "1.0.0"
)

type exitCode int

const (
	exitOK       exitCode = 0
	exitMismatch exitCode = 1
	exitTrouble  exitCode = 2
)

type options struct {
	input     string
	hashArg   string
	checkPath string
	paste     bool
	noColour  bool
	verbose   bool
}

// zlog is a nop unless --verbose swaps in a real logger. Human-facing
// output always goes through the display layer, never the logger.
var zlog = zap.NewNop().Sugar()

var errDualStdin = errors.New("cannot use standard input for both the check source and the input data")

// validateOptions rejects configurations that would make the expected
// hash ambiguous, before any stream is consumed.
func validateOptions(opt *options) error {
	methods := 0
	if opt.hashArg != "" {
		methods++
	}
	if opt.paste {
		methods++
	}
	if opt.checkPath != "" {
		methods++
	}
	if methods > 1 {
		return errors.New("hashes were provided by multiple methods, use only one of <hash>, --paste, --check")
	}
	if opt.input == "-" && opt.checkPath == "-" {
		return errDualStdin
	}
	return nil
}

func newCommand(opt *options, out io.Writer, code *exitCode) *cobra.Command {
	cmd := &cobra.Command{
		Use:   progName + " [flags] <input> [<hash>]",
		Short: "Verify a file against a checksum, detecting the algorithm from the hash itself",
		Long: `Verify a file (or standard input, as "-") against an expected checksum.
The algorithm is detected from the length of the hash, so MD5, SHA-1,
SHA-256 and SHA-512 digests are all accepted without naming them. The
expected hash may be given directly, pasted from the clipboard, or read
from a raw-hash file or SHASUMS-style listing. With no expected hash,
all four digests of the input are printed.`,
		Version:       progVersion,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt.input = args[0]
			if len(args) == 2 {
				opt.hashArg = args[1]
			}
			if err := validateOptions(opt); err != nil {
				return err
			}
			if opt.verbose {
				logger, err := zap.NewDevelopment()
				if err == nil {
					zlog = logger.Sugar()
					defer func() { _ = logger.Sync() }()
				}
			}
			if opt.noColour {
				color.NoColor = true
			}

			o, err := runVerification(opt)
			if err != nil {
				return err
			}
			printOutcome(out, o)
			if o.verdict != nil && o.verdict.level != matchOK {
				*code = exitMismatch
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opt.checkPath, "check", "c", "",
		"file containing the hash to verify, raw or SHASUMS-style (\"-\" for stdin)")
	cmd.Flags().BoolVarP(&opt.paste, "paste", "p", false,
		"read the hash from the clipboard")
	cmd.Flags().BoolVarP(&opt.noColour, "no-colour", "C", false,
		"disable ANSI colours in output")
	cmd.Flags().BoolVarP(&opt.verbose, "verbose", "V", false,
		"enable debug logging")
	return cmd
}

// run executes a single invocation and maps its outcome to an exit code:
// a confirmed match (or a plain report) exits 0, MAYBE and MISMATCH exit
// 1, and any resolution, read or usage error exits 2.
func run(argv []string, out io.Writer) exitCode {
	opt := &options{}
	code := exitOK
	cmd := newCommand(opt, out, &code)
	cmd.SetArgs(argv)
	cmd.SetOut(out)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		return exitTrouble
	}
	return code
}

func main() {
	os.Exit(int(run(os.Args[1:], os.Stdout)))
}
