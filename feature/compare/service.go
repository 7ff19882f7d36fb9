// Package compare diffs two deck lists.
package compare

import (
	"context"
	"fmt"
	"io"

	"mtg-utils/core/cardlist"
	"mtg-utils/core/reconcile"
)

// Result is a comparison labelled by the files it came from.
type Result struct {
	FileA      string
	FileB      string
	Comparison *reconcile.Comparison
}

// Service compares lists held in a store.
type Service struct {
	store cardlist.Store
}

// NewService creates a new compare service.
func NewService(store cardlist.Store) *Service {
	return &Service{store: store}
}

// Compare reads both lists and classifies their cards.
func (s *Service) Compare(ctx context.Context, fileA, fileB string) (*Result, error) {
	a, err := s.store.Read(ctx, fileA)
	if err != nil {
		return nil, fmt.Errorf("failed to read first deck: %w", err)
	}
	b, err := s.store.Read(ctx, fileB)
	if err != nil {
		return nil, fmt.Errorf("failed to read second deck: %w", err)
	}

	return &Result{
		FileA:      fileA,
		FileB:      fileB,
		Comparison: reconcile.Compare(a.Map(), b.Map()),
	}, nil
}

// Render prints the common cards followed by the cards unique to each side.
func Render(w io.Writer, r *Result) {
	c := r.Comparison
	s := c.Summary

	fmt.Fprintf(w, "Cards in common: %d (%d unique)\n\n", s.CommonTotal, s.CommonUnique)
	writeBucket(w, c.Common)

	fmt.Fprintf(w, "\nCards only in %s: %d (%d unique)\n\n", r.FileA, s.UniqueToATotal, s.UniqueToAUnique)
	writeBucket(w, c.UniqueToA)

	fmt.Fprintf(w, "\nCards only in %s: %d (%d unique)\n\n", r.FileB, s.UniqueToBTotal, s.UniqueToBUnique)
	writeBucket(w, c.UniqueToB)
}

func writeBucket(w io.Writer, cards []reconcile.CardQuantity) {
	for _, card := range cards {
		fmt.Fprintf(w, "%d %s\n", card.Quantity, card.Name)
	}
}
