package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lawyerdirect/lawadmin/internal/api"
)

// runPager drives a list screen: fetch and render the page the state
// selects, then (in interactive mode) prompt for navigation and
// refetch. Every fetch is tagged with the state's generation; if the
// state moved on while a request was in flight, the stale result is
// dropped and the latest selection is fetched instead.
func runPager(ctx context.Context, state *api.ListState, interactive bool,
	fetch func(ctx context.Context) (api.Pagination, func(), error)) error {

	reader := bufio.NewReader(os.Stdin)
	for {
		gen := state.Begin()
		pag, render, err := fetch(ctx)
		if err != nil {
			return err
		}
		if !state.Current(gen) {
			// A newer selection superseded this fetch.
			continue
		}
		render()
		printPageFooter(pag)

		if !interactive || pag.Pages <= 1 {
			return nil
		}

		fmt.Print("\n[n]ext, [p]rev, page number, or [q]uit: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		input = strings.TrimSpace(input)
		switch input {
		case "", "q":
			return nil
		case "n":
			if pag.Page < pag.Pages {
				state.SetPage(pag.Page + 1)
			}
		case "p":
			if pag.Page > 1 {
				state.SetPage(pag.Page - 1)
			}
		default:
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > pag.Pages {
				fmt.Printf("Please enter a number between 1 and %d.\n", pag.Pages)
				continue
			}
			state.SetPage(n)
		}
		fmt.Println()
	}
}
