package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/howto"
)

// Run executes the extract command, printing the document as indented JSON.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	doc, err := deps.Service.HowTo(deps.Ctx, strings.Join(c.Query, " "))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", howto.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
