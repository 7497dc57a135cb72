// Package cmd implements the slate CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (dump, render, play, version).
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/slate/pkg/config"
	"github.com/go-drift/slate/pkg/errors"
	"github.com/go-drift/slate/pkg/widgets"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = struct {
	Long        string
	Usage       string
	SubCommands []*Command
}{
	Long: `Slate is a retained-mode widget toolkit. The slate command builds the
demo widget tree and lets you inspect its layout, rasterise it to a PNG
or drive it interactively from the terminal.

Use "slate <command> --help" for more information about a command.`,
	Usage: "slate [--config FILE] <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// configPath is the settings file given with --config. Empty means
// slate.yaml in the working directory, if any.
var configPath string

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	configPath = ""

	if len(args) == 0 {
		printHelp()
		return nil
	}

	// Handle global flags and extract --config
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp()
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version":
			if len(filteredArgs) == 0 {
				printVersion()
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config":
			if len(filteredArgs) > 0 {
				filteredArgs = append(filteredArgs, arg)
				continue
			}
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			configPath = args[i+1]
			i++
		default:
			if len(filteredArgs) == 0 && strings.HasPrefix(arg, "--config=") {
				configPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp()
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp()
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// loadSettings reads the settings selected by --config and applies them to
// the widget defaults. Load failures are reported before being returned.
func loadSettings() (*config.Settings, error) {
	var (
		s   *config.Settings
		err error
	)
	if configPath != "" {
		s, err = config.Load(configPath)
	} else {
		s, err = config.LoadDir(".")
	}
	if err != nil {
		errors.Report(&errors.SlateError{
			Op:   "cmd.loadSettings",
			Kind: errors.KindConfig,
			Err:  err,
		})
		return nil, err
	}
	widgets.ApplySettings(s)
	return s, nil
}

func printVersion() {
	fmt.Printf("Slate CLI version %s (built %s)\n", Version, BuildTime)
}

func printHelp() {
	fmt.Println(rootCmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", rootCmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range rootCmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Printf("  --config FILE        Settings file (default: ./%s if present)\n", config.FileName)
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  slate dump                Print the demo tree layout")
	fmt.Println("  slate render -o demo.png  Rasterise the demo tree")
	fmt.Println("  slate play                Drive the demo tree from the terminal")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
