package cmd

import (
	"context"
	"fmt"
	"os"
)

// Sync collects untracked paths, appends them to the ignore file, and
// purges the git index so the newly ignored paths stop being tracked.
func Sync(ctx context.Context, force, dryRun bool) {
	s := openSync()
	defer s.Close()

	if dryRun {
		plan, diff, err := s.Preview(ctx)
		if err != nil {
			HandleError(err)
		}
		if plan.Empty() {
			fmt.Println("No untracked files found, nothing to do")
			return
		}
		fmt.Printf("Would append %d path(s) to %s:\n\n", len(plan.Paths), s.Config().IgnoreFile)
		fmt.Print(diff)
		return
	}

	fmt.Println("Collecting untracked files...")

	plan, err := s.Collect(ctx)
	if err != nil {
		HandleError(err)
	}

	if !plan.Empty() {
		for _, p := range plan.Paths {
			fmt.Printf("  %s\n", p)
		}

		if !force {
			prompt := fmt.Sprintf("\nAppend %d path(s) to %s and purge the index?", len(plan.Paths), s.Config().IgnoreFile)
			if !Confirm(prompt) {
				fmt.Println("Cancelled")
				return
			}
		}
	} else {
		fmt.Println("  (none)")
	}

	result, err := s.Apply(ctx, plan)
	if err != nil {
		HandleError(err)
	}

	// The purge step is best effort: its failure is journaled, not shown.
	if result.JournalErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record run: %v\n", result.JournalErr)
	}
	if result.ReportErr != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", result.ReportErr)
	}

	fmt.Println("\nRemaining untracked files:")
	if len(result.Remaining) == 0 {
		fmt.Println("  (none)")
	} else {
		for _, p := range result.Remaining {
			fmt.Printf("  %s\n", p)
		}
	}

	fmt.Printf("\nDone. Review %s and commit the changes.\n", s.Config().IgnoreFile)
}
