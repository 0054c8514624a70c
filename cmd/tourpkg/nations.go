package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/tourpkg"
)

// Run executes the nations command.
func (c *NationsCmd) Run(deps *Dependencies) error {
	table, err := loadNations(c.Nations)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tourpkg.ErrorMessage(err))
		return err
	}

	for _, g := range table.Groups() {
		fmt.Fprintf(deps.Stdout, "%s  %d  %s\n", g.Nation, len(g.Codes), strings.Join(g.Codes, ","))
	}
	fmt.Fprintf(deps.Stdout, "%d codes\n", table.Len())
	return nil
}
