package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/vidlinks"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	result, err := deps.Service.Extract(deps.Ctx, &vidlinks.Request{SourceURL: c.URL})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vidlinks.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(deps.Stdout, result.Title)
	if len(result.Links) == 0 {
		fmt.Fprintln(deps.Stdout, "No links found.")
		return nil
	}
	for _, l := range result.Links {
		fmt.Fprintf(deps.Stdout, "%-25s  %s\n", l.ShortTitle, l.URL)
		if l.Status == vidlinks.LinkDegraded {
			fmt.Fprintf(deps.Stderr, "  degraded %s\n", l.URL)
		}
	}
	return nil
}
