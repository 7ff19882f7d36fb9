package library

import (
	"fmt"
	"io"

	"mtg-utils/core/reconcile"
)

// Render prints a refresh result in the console report format.
func Render(w io.Writer, res *Result) {
	for _, d := range res.Decks {
		fmt.Fprintf(w, "Updated %s deck: %s (%d cards, %d unique)\n", d.Name, d.File, d.Total, d.Unique)
	}
	fmt.Fprintf(w, "Updated owned cards: %s (%d cards, %d unique)\n", res.OwnedFile, res.OwnedTotal, res.OwnedUnique)

	if res.Purchases.Created {
		fmt.Fprintf(w, "Creating empty purchased cards file at %s\n", res.Purchases.File)
	} else {
		fmt.Fprintf(w, "Processed purchased cards: %d unique cards from %d total entries\n",
			res.Purchases.Unique, res.Purchases.Entries)
	}

	if res.Plan != nil && len(res.Plan.Warnings) > 0 {
		RenderWarnings(w, res.Plan.Warnings)
	}

	if res.Plan != nil {
		fmt.Fprintf(w, "Updated available cards: %s (%d cards, %d unique)\n",
			res.AvailableFile, res.Plan.Summary.AvailableTotal, res.Plan.Summary.AvailableUnique)
	}
}

// RenderWarnings prints inventory shortfalls grouped by deck.
func RenderWarnings(w io.Writer, warnings []reconcile.InventoryWarning) {
	fmt.Fprintln(w, "\nWARNING: Some cards in decks are not available in the available cards:")
	names, grouped := reconcile.WarningsByDeck(warnings)
	for _, name := range names {
		fmt.Fprintf(w, "\n  %s deck is missing:\n", name)
		for _, c := range grouped[name] {
			fmt.Fprintf(w, "    - %d %s (have %d)\n", c.Required, c.Card, c.Have)
		}
	}
	fmt.Fprintln(w)
}
