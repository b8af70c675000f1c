package cli

import (
	"fmt"
	"os"

	"inkpad/internal/store"
)

// Run executes the CLI with the given arguments.
// The first argument should be the namespace ("note").
func Run(args []string, st store.Store) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	namespace := args[0]
	subArgs := args[1:]

	switch namespace {
	case "note":
		return runNoteCommand(subArgs, st)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", namespace)
		printUsage()
		return 1
	}
}

func runNoteCommand(args []string, st store.Store) int {
	if len(args) == 0 {
		printNoteUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		return runAdd(cmdArgs, st)
	case "list", "ls", "l":
		return runList(cmdArgs, st)
	case "delete", "rm", "del":
		return runDelete(cmdArgs, st)
	case "help", "-h", "--help":
		printNoteUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown note command: %s\n", command)
		printNoteUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println(`inkpad - Personal notes with text, audio, images, drawings, and todo lists

Usage: inkpad [flags] [command] [arguments]

Commands:
  note        Note management commands

Flags:
  -dir <path>    Data directory (default ~/inkpad)

Running inkpad without arguments launches the interactive TUI.
Use "inkpad note help" for note subcommands.`)
}

func printNoteUsage() {
	fmt.Println(`inkpad note - Note management commands

Usage: inkpad note <command> [arguments]

Commands:
  add, a      Add a text note
              inkpad note add -t "Title" "Body text"

  list, ls, l List notes
              inkpad note list            # List all notes
              inkpad note list -type todo # Filter by content type

  delete, rm  Delete a note (and its media files)
              inkpad note delete <note-id>

  help        Show this help message`)
}
