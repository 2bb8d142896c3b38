// Command deckgen builds the logistics proposal decks.
package main

import "github.com/kasuya3/INT-YAMAE/internal/cli"

func main() {
	cli.Execute()
}
