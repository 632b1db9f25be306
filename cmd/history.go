package cmd

import (
	"context"
	"fmt"
	"time"
)

// History lists the journaled sync runs in chronological order
func History(_ context.Context) {
	s := openSync()
	defer s.Close()

	runs, err := s.History()
	if err != nil {
		HandleError(err)
	}

	if len(runs) == 0 {
		fmt.Println("No recorded sync runs")
		return
	}

	for i, run := range runs {
		fmt.Printf("%d. %s: %d path(s) appended\n", i+1, run.Time.Format(time.RFC3339), len(run.Appended))
		for _, p := range run.Appended {
			fmt.Printf("     %s\n", p)
		}
		if run.PurgeFailed() {
			fmt.Printf("     (index purge failed: %s)\n", run.PurgeError)
		}
	}
}
