package cmd

import (
	"context"
	"fmt"
	"time"
)

// Status shows the untracked paths a sync would pick up, the ignore
// file size, and the journal summary.
func Status(ctx context.Context) {
	s := openSync()
	defer s.Close()

	status, err := s.Status(ctx)
	if err != nil {
		HandleError(err)
	}

	fmt.Println("Untracked files:")
	if len(status.Untracked) == 0 {
		fmt.Println("  (none)")
	} else {
		for _, p := range status.Untracked {
			fmt.Printf("  %s\n", p)
		}
	}

	if len(status.Skipped) > 0 {
		fmt.Println("\nSkipped (excluded or tool state):")
		for _, p := range status.Skipped {
			fmt.Printf("  %s\n", p)
		}
	}

	noun := "entries"
	if status.IgnoreEntries == 1 {
		noun = "entry"
	}
	fmt.Printf("\n%s: %d %s\n", s.Config().IgnoreFile, status.IgnoreEntries, noun)

	if status.LastSync != nil {
		fmt.Printf("Last sync: %s (%d path(s) appended, %d run(s) recorded)\n",
			status.LastSync.Time.Format(time.RFC3339), len(status.LastSync.Appended), status.Runs)
	} else {
		fmt.Println("Last sync: never")
	}
}
