package missing

import (
	"fmt"
	"io"
	"strings"

	"mtg-utils/core/reconcile"
)

// Render prints a missing-cards report.
func Render(w io.Writer, r *reconcile.MissingReport) {
	s := r.Summary
	fmt.Fprintf(w, "Total cards in deck: %d\n", s.DeckTotal)

	fmt.Fprintf(w, "\nAvailable cards: %d (%d unique)\n", s.SatisfiedTotal, s.SatisfiedUnique)
	for _, c := range r.Satisfied {
		fmt.Fprintf(w, "  %d %s\n", c.Quantity, c.Name)
	}

	if len(r.StillMissing) > 0 {
		fmt.Fprintf(w, "\nMissing cards: %d (%d unique)\n", s.StillMissingTotal, s.StillMissingUnique)
		for _, c := range r.StillMissing {
			fmt.Fprintf(w, "  %d %s\n", c.Quantity, c.Name)
		}
	} else {
		fmt.Fprintln(w, "All cards can be found in your collection or other decks!")
	}

	if len(r.Borrowable) == 0 {
		return
	}

	fmt.Fprintf(w, "\nMissing cards available in other decks (%d total, %d unique):\n", s.BorrowableTotal, s.BorrowableUnique)
	for _, b := range r.Borrowable {
		sources := make([]string, 0, len(b.Sources))
		for _, src := range b.Sources {
			sources = append(sources, fmt.Sprintf("%s (%d)", src.Deck, src.Quantity))
		}
		fmt.Fprintf(w, "  %d %s - [ %s ]\n", b.Quantity, b.Name, strings.Join(sources, ", "))
	}

	fmt.Fprintln(w, "\nCards needed from each deck:")
	for _, d := range r.ByDeck {
		fmt.Fprintf(w, "\n%s deck (%d cards available):\n", d.Deck, d.Total)
		for _, c := range d.Cards {
			fmt.Fprintf(w, "  %d %s\n", c.Quantity, c.Name)
		}
	}
}
