package library

import (
	"context"
	"errors"
	"fmt"

	"mtg-utils/core/cardlist"
	"mtg-utils/core/config"
	"mtg-utils/core/reconcile"

	"go.uber.org/zap"
)

// ErrEmptyRemote is returned when the remote source yields no cards.
var ErrEmptyRemote = errors.New("remote source returned no cards")

// Source fetches deck and binder contents from the remote card database.
type Source interface {
	FetchDeck(ctx context.Context, deckID string) (cardlist.List, error)
	FetchBinder(ctx context.Context, binderID string) (cardlist.List, error)
}

// DeckUpdate describes one refreshed deck.
type DeckUpdate struct {
	Name   string `json:"name"`
	File   string `json:"file"`
	Total  int    `json:"total"`
	Unique int    `json:"unique"`
}

// PurchaseSummary describes the processed purchase log.
type PurchaseSummary struct {
	// File is the raw purchase log.
	File string `json:"file"`
	// Created is set when the log was missing and an empty one was written.
	Created bool `json:"created"`
	// Entries is the number of lines in the raw log.
	Entries int `json:"entries"`
	// Unique is the number of distinct card names.
	Unique int `json:"unique"`
	// Total is the summed quantity.
	Total int `json:"total"`
}

// Result is the outcome of a library refresh.
type Result struct {
	Decks         []DeckUpdate          `json:"decks"`
	OwnedFile     string                `json:"owned_file"`
	OwnedTotal    int                   `json:"owned_total"`
	OwnedUnique   int                   `json:"owned_unique"`
	Purchases     PurchaseSummary       `json:"purchases"`
	PurchasedFile string                `json:"purchased_formatted_file,omitempty"`
	AvailableFile string                `json:"available_file"`
	Plan          *reconcile.LibraryPlan `json:"-"`
}

// Service refreshes the card library.
type Service struct {
	source Source
	store  cardlist.Store
	files  cardlist.Config
	logger *zap.Logger
}

// NewService creates a new library service.
func NewService(source Source, store cardlist.Store, files cardlist.Config, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		store:  store,
		files:  files,
		logger: logger,
	}
}

type fetchedDeck struct {
	name string
	file string
	list cardlist.List
}

// Update refreshes decks, owned cards and purchases, then rewrites the
// available pool. Nothing is written unless every fetch succeeds.
func (s *Service) Update(ctx context.Context, col *config.Collection) (*Result, error) {
	if err := col.Validate(); err != nil {
		return nil, err
	}

	// Step 1: Fetch decks
	fetched := make([]fetchedDeck, 0, len(col.Decks))
	for _, name := range col.DeckNames() {
		src := col.Decks[name]
		s.logger.Debug("Fetching deck", zap.String("deck", name), zap.String("id", src.ID))

		list, err := s.source.FetchDeck(ctx, src.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve %s deck: %w", name, err)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("failed to retrieve %s deck: %w", name, ErrEmptyRemote)
		}
		fetched = append(fetched, fetchedDeck{name: name, file: src.File, list: list})
	}

	// Step 2: Fetch owned cards
	s.logger.Debug("Fetching binder", zap.String("binder", col.BinderID))
	owned, err := s.source.FetchBinder(ctx, col.BinderID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve owned cards: %w", err)
	}
	if len(owned) == 0 {
		return nil, fmt.Errorf("failed to retrieve owned cards: %w", ErrEmptyRemote)
	}

	// Step 3: Read purchases
	purchases, summary, err := s.readPurchases(ctx, col.PurchasedFile)
	if err != nil {
		return nil, err
	}

	// Step 4: Reconcile
	decks := make([]reconcile.Deck, 0, len(fetched))
	for _, d := range fetched {
		decks = append(decks, reconcile.Deck{Name: d.name, Cards: d.list.Map()})
	}
	inventory := reconcile.BuildInventory(owned.Map(), purchases)
	plan := reconcile.ReconcileLibrary(inventory, decks)

	for _, w := range plan.Warnings {
		s.logger.Warn("Deck card not available in inventory",
			zap.String("deck", w.Deck),
			zap.String("card", w.Card),
			zap.Int("required", w.Required),
			zap.Int("have", w.Have),
		)
	}

	// Step 5: Write outputs
	result := &Result{
		OwnedFile:     s.files.OwnedPath(),
		OwnedTotal:    owned.Total(),
		OwnedUnique:   len(owned.Map()),
		Purchases:     summary,
		AvailableFile: s.files.AvailablePath(),
		Plan:          plan,
	}

	if summary.Created {
		if err := s.store.Write(ctx, col.PurchasedFile, nil); err != nil {
			return nil, fmt.Errorf("failed to create purchased cards file: %w", err)
		}
		s.logger.Info("Created empty purchased cards file", zap.String("file", col.PurchasedFile))
	}

	for i, d := range fetched {
		if err := s.store.Write(ctx, d.file, d.list); err != nil {
			return nil, fmt.Errorf("failed to write %s deck: %w", d.name, err)
		}
		result.Decks = append(result.Decks, DeckUpdate{
			Name:   d.name,
			File:   d.file,
			Total:  d.list.Total(),
			Unique: len(decks[i].Cards),
		})
		s.logger.Info("Updated deck", zap.String("deck", d.name), zap.String("file", d.file))
	}

	if err := s.store.Write(ctx, result.OwnedFile, owned); err != nil {
		return nil, fmt.Errorf("failed to write owned cards: %w", err)
	}
	s.logger.Info("Updated owned cards", zap.String("file", result.OwnedFile), zap.Int("unique", result.OwnedUnique))

	if !summary.Created {
		result.PurchasedFile = s.files.PurchasedFormattedPath()
		if err := s.store.Write(ctx, result.PurchasedFile, cardlist.FromMap(purchases, cardlist.ByName)); err != nil {
			return nil, fmt.Errorf("failed to write formatted purchases: %w", err)
		}
		s.logger.Info("Processed purchased cards", zap.Int("unique", summary.Unique), zap.Int("entries", summary.Entries))
	}

	if err := s.store.Write(ctx, result.AvailableFile, cardlist.FromMap(plan.Available, cardlist.LibraryOrder)); err != nil {
		return nil, fmt.Errorf("failed to write available cards: %w", err)
	}
	s.logger.Info("Updated available cards",
		zap.String("file", result.AvailableFile),
		zap.Int("total", plan.Summary.AvailableTotal),
		zap.Int("unique", plan.Summary.AvailableUnique),
	)

	return result, nil
}

// readPurchases loads the purchase log. A missing log counts as empty and is
// flagged for creation.
func (s *Service) readPurchases(ctx context.Context, file string) (reconcile.QuantityMap, PurchaseSummary, error) {
	summary := PurchaseSummary{File: file}

	exists, err := s.store.Exists(ctx, file)
	if err != nil {
		return nil, summary, fmt.Errorf("failed to check purchased cards file: %w", err)
	}
	if !exists {
		summary.Created = true
		return reconcile.QuantityMap{}, summary, nil
	}

	raw, err := s.store.Read(ctx, file)
	if err != nil {
		return nil, summary, fmt.Errorf("failed to read purchased cards: %w", err)
	}
	purchases := raw.Map()

	summary.Entries = len(raw)
	summary.Unique = len(purchases)
	summary.Total = purchases.Total()
	return purchases, summary, nil
}
