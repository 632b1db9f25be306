package cmd

import (
	"context"
	"fmt"
)

// Undo backs out the most recent journaled sync from the ignore file
func Undo(ctx context.Context) {
	s := openSync()
	defer s.Close()

	run, err := s.Undo(ctx)
	if err != nil {
		HandleError(err)
	}

	if len(run.Appended) == 0 {
		fmt.Println("Last run appended nothing, journal entry removed")
		return
	}

	fmt.Printf("Removed %d path(s) from %s:\n", len(run.Appended), s.Config().IgnoreFile)
	for _, p := range run.Appended {
		fmt.Printf("  %s\n", p)
	}
	fmt.Println("\nThe index purge is not reversed; use 'git add' to re-track files.")
}
