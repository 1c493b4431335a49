package main

import (
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/cryptokit/cmd/cryptokit/internal/commands"
	"github.com/saylorsolutions/cryptokit/cmd/internal"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		verboseFlag bool
	)
	flags := flag.NewFlagSet("cryptokit", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Emits debug logging to stderr.")
	flags.Usage = func() {
		fmt.Printf(`
cryptokit %s converts between hex and Base64, and applies or breaks single-byte XOR.
All binary input and output is hex encoded, except for the screen command.

USAGE:  cryptokit [FLAGS] COMMAND ARGS...

COMMANDS:
    b64 HEX             Prints the Base64 encoding of HEX.
    xor HEX HEX         Prints the XOR of two equal-length inputs.
    apply HEX KEY       Prints HEX XORed with the single byte KEY, given as two hex digits.
    crack HEX           Recovers the single byte key for HEX, and prints the key and plain text.
    screen KEY [FILE]   Streams FILE (or stdin) XORed with KEY to stdout.
    genkey              Prints a random key byte.

FLAGS:
%s
SECURITY:
    Single-byte XOR is not encryption. The crack command shows how easily it's reversed.
`, version, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if flags.NArg() == 0 {
		internal.Fatal("Missing required COMMAND argument")
	}

	r := &commands.Runner{
		Out: os.Stdout,
		Log: internal.NewLogger("cryptokit", os.Stderr, verboseFlag),
	}
	cmd, args := flags.Arg(0), flags.Args()[1:]
	r.Log.Debug("Running command", "command", cmd, "args", len(args))
	if err := run(r, cmd, args); err != nil {
		internal.Fatal("Failed to run %s: %v", cmd, err)
	}
}

func run(r *commands.Runner, cmd string, args []string) error {
	switch cmd {
	case "b64":
		if err := requireArgs(args, 1); err != nil {
			return err
		}
		return r.Base64(args[0])
	case "xor":
		if err := requireArgs(args, 2); err != nil {
			return err
		}
		return r.Xor(args[0], args[1])
	case "apply":
		if err := requireArgs(args, 2); err != nil {
			return err
		}
		return r.Apply(args[0], args[1])
	case "crack":
		if err := requireArgs(args, 1); err != nil {
			return err
		}
		return r.Crack(args[0])
	case "screen":
		if len(args) != 1 && len(args) != 2 {
			return fmt.Errorf("expected KEY and optional FILE, got %d arguments", len(args))
		}
		var in io.Reader = os.Stdin
		if len(args) == 2 {
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer func() {
				_ = f.Close()
			}()
			in = f
		}
		return r.Screen(in, args[0])
	case "genkey":
		if err := requireArgs(args, 0); err != nil {
			return err
		}
		return r.GenKey()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func requireArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	return nil
}
