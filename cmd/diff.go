package cmd

import (
	"context"
	"fmt"
)

// Diff prints the unified diff of the ignore file change a sync would make
func Diff(ctx context.Context) {
	s := openSync()
	defer s.Close()

	plan, diff, err := s.Preview(ctx)
	if err != nil {
		HandleError(err)
	}

	if plan.Empty() {
		fmt.Println("No untracked files found, nothing to append")
		return
	}
	fmt.Print(diff)
}
