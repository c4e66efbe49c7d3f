package main

import (
	"fmt"
	"io"
)

// printHelp lists every supported intent with an example phrasing, in
// catalog order.
func printHelp(w io.Writer, catalog *Catalog) {
	fmt.Fprintln(w, "Zyntax understands plain English (and some Hinglish). Try:")
	fmt.Fprintln(w, "")
	for _, intent := range catalog.Intents() {
		example := ""
		if len(intent.Phrasings) > 0 {
			example = intent.Phrasings[0]
		}
		fmt.Fprintf(w, "  %-18s %s (e.g. \"%s\")\n", intent.ID, intent.Description, example)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Literal commands (cd, ls, git status, ...) run directly.")
	fmt.Fprintln(w, "Type 'exit' or 'quit' to leave.")
}
