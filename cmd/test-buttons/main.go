// Command test-buttons is a manual test for the edge queue. Type s, x or t
// (plus enter) and watch the drained edges; rapid repeats before a drain
// coalesce into one.
//
// Usage:
//
//	go run ./cmd/test-buttons
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/awiooono/blebuttons/internal/button"
)

func main() {
	fmt.Println("Type s=start x=stop t=toggle, enter after each. Ctrl+C to exit.")

	var q button.Queue

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			for _, r := range scanner.Text() {
				switch r {
				case 's':
					q.Signal(button.Start)
				case 'x':
					q.Signal(button.Stop)
				case 't':
					q.Signal(button.Toggle)
				}
			}
		}
	}()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		edges := q.DrainAndReset()
		if edges.Any() {
			fmt.Printf(">>> drained: start=%v stop=%v toggle=%v\n", edges.Start, edges.Stop, edges.Toggle)
		}
	}
}
