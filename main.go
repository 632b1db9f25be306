package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/illarion/ignoresync/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Bare invocation is a sync, like the original one-shot workflow.
	if len(os.Args) < 2 {
		runSync(ctx, nil)
		return
	}

	switch os.Args[1] {
	case "sync":
		runSync(ctx, os.Args[2:])
	case "status":
		runStatus(ctx, os.Args[2:])
	case "diff":
		runDiff(ctx, os.Args[2:])
	case "history":
		runHistory(ctx, os.Args[2:])
	case "undo":
		runUndo(ctx, os.Args[2:])
	case "completion":
		runCompletion(ctx, os.Args[2:])
	case "help", "-h", "--help":
		if len(os.Args) <= 2 {
			printUsage()
			return
		}
		printCommandHelp(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runSync(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	force := fs.Bool("force", false, "Sync without confirmation")
	dryRunShort := fs.Bool("n", false, "Show the change without applying it")
	dryRunLong := fs.Bool("dry-run", false, "Show the change without applying it")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Sync(ctx, *force, *dryRunShort || *dryRunLong)
}

func runStatus(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Status(ctx)
}

func runDiff(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Diff(ctx)
}

func runHistory(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.History(ctx)
}

func runUndo(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("undo", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Undo(ctx)
}

func runCompletion(_ context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ignoresync completion <bash|zsh|fish>")
		os.Exit(1)
	}
	cmd.Completion(args[0])
}

func printUsage() {
	fmt.Println("ignoresync - Append untracked files to .gitignore and purge the git index")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ignoresync [command] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sync        Append untracked paths to the ignore file and purge the index (default)")
	fmt.Println("  status      Show untracked paths, ignore file size, and journal summary")
	fmt.Println("  diff        Preview the pending ignore file change")
	fmt.Println("  history     List recorded sync runs")
	fmt.Println("  undo        Back out the most recent sync from the ignore file")
	fmt.Println("  completion  Generate shell completions")
	fmt.Println("  help        Show help for a command")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ignoresync                      # Sync the current repository")
	fmt.Println("  ignoresync sync --dry-run       # Preview without changing anything")
	fmt.Println("  ignoresync undo                 # Back out the last sync")
	fmt.Println()
	fmt.Println("Use 'ignoresync help <command>' for more information about a command.")
}

func printCommandHelp(command string) {
	switch command {
	case "sync":
		fmt.Println("ignoresync sync [--force] [-n|--dry-run]")
		fmt.Println()
		fmt.Println("Collects every untracked path reported by git, appends each one as a")
		fmt.Println("new line to the ignore file (no deduplication), and removes all")
		fmt.Println("tracked paths from the index so the newly ignored files stop being")
		fmt.Println("tracked. Working tree files are never touched.")
		fmt.Println()
		fmt.Println("On a terminal the collected paths are shown and confirmed before")
		fmt.Println("anything is changed. Without a terminal the sync runs unattended.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  --force         Sync without confirmation")
		fmt.Println("  -n, --dry-run   Show the pending change without applying it")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  ignoresync sync                  # Confirm, then sync")
		fmt.Println("  ignoresync sync --force          # Sync without asking")
		fmt.Println("  ignoresync sync --dry-run        # Preview only")
	case "status":
		fmt.Println("ignoresync status")
		fmt.Println()
		fmt.Println("Shows the untracked paths a sync would pick up, the paths filtered")
		fmt.Println("out by exclude patterns, the ignore file entry count, and when the")
		fmt.Println("last sync ran.")
	case "diff":
		fmt.Println("ignoresync diff")
		fmt.Println()
		fmt.Println("Prints the unified diff of the ignore file change the next sync")
		fmt.Println("would make. Nothing is modified.")
	case "history":
		fmt.Println("ignoresync history")
		fmt.Println()
		fmt.Println("Lists the sync runs recorded in the journal: when each ran, which")
		fmt.Println("paths it appended, and whether the index purge succeeded.")
	case "undo":
		fmt.Println("ignoresync undo")
		fmt.Println()
		fmt.Println("Removes the lines appended by the most recent sync from the end of")
		fmt.Println("the ignore file and deletes the journal entry. Refuses if the")
		fmt.Println("ignore file was edited since that sync. The index purge is not")
		fmt.Println("reversed; use 'git add' to re-track files.")
	case "completion":
		fmt.Println("ignoresync completion <bash|zsh|fish>")
		fmt.Println()
		fmt.Println("Outputs shell completion script for the specified shell.")
		fmt.Println()
		fmt.Println("Setup:")
		fmt.Println("  # Bash - add to ~/.bashrc")
		fmt.Println("  eval \"$(ignoresync completion bash)\"")
		fmt.Println()
		fmt.Println("  # Zsh - add to ~/.zshrc")
		fmt.Println("  eval \"$(ignoresync completion zsh)\"")
		fmt.Println()
		fmt.Println("  # Fish - add to ~/.config/fish/config.fish")
		fmt.Println("  ignoresync completion fish | source")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
	}
}
