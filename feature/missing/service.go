package missing

import (
	"context"
	"errors"
	"fmt"

	"mtg-utils/core/cardlist"
	"mtg-utils/core/config"
	"mtg-utils/core/reconcile"

	"go.uber.org/zap"
)

// ErrDeckSelector is returned unless exactly one of DeckFile or MoxfieldID is set.
var ErrDeckSelector = errors.New("provide exactly one of --deck-file or --moxfield-id")

// TargetName names the checked deck when it is not part of the collection.
const TargetName = "target"

// DeckSource fetches a deck from the remote card database.
type DeckSource interface {
	FetchDeck(ctx context.Context, deckID string) (cardlist.List, error)
}

// Request selects the deck to check.
type Request struct {
	// DeckFile is a list file in the store.
	DeckFile string
	// MoxfieldID is a remote deck identifier.
	MoxfieldID string
}

// Validate checks that exactly one selector is set.
func (r Request) Validate() error {
	if (r.DeckFile == "") == (r.MoxfieldID == "") {
		return ErrDeckSelector
	}
	return nil
}

// Service runs the missing-cards check.
type Service struct {
	source DeckSource
	store  cardlist.Store
	files  cardlist.Config
	logger *zap.Logger
}

// NewService creates a new missing-cards service.
func NewService(source DeckSource, store cardlist.Store, files cardlist.Config, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		store:  store,
		files:  files,
		logger: logger,
	}
}

// Check loads the requested deck, the available pool and the other configured
// decks, then resolves the shortfall.
func (s *Service) Check(ctx context.Context, col *config.Collection, req Request) (*reconcile.MissingReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	target, err := s.loadTarget(ctx, col, req)
	if err != nil {
		return nil, err
	}

	availableFile := s.files.AvailablePath()
	available, err := s.store.Read(ctx, availableFile)
	if err != nil {
		if errors.Is(err, cardlist.ErrNotExist) {
			return nil, fmt.Errorf("available cards not found at %s, run update-card-library first: %w", availableFile, err)
		}
		return nil, err
	}

	decks := make([]reconcile.Deck, 0, len(col.Decks))
	for _, name := range col.DeckNames() {
		file := col.Decks[name].File
		list, err := s.store.Read(ctx, file)
		if errors.Is(err, cardlist.ErrNotExist) {
			s.logger.Warn("Deck file not found, skipping", zap.String("deck", name), zap.String("file", file))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s deck: %w", name, err)
		}
		decks = append(decks, reconcile.Deck{Name: name, Cards: list.Map()})
	}

	demand := reconcile.AggregateDemand(decks)
	report := reconcile.ResolveShortfall(target, available.Map(), demand.Index)

	s.logger.Debug("Resolved shortfall",
		zap.String("deck", target.Name),
		zap.Int("still_missing", report.Summary.StillMissingTotal),
		zap.Int("borrowable", report.Summary.BorrowableTotal),
	)
	return report, nil
}

func (s *Service) loadTarget(ctx context.Context, col *config.Collection, req Request) (reconcile.Deck, error) {
	name, ok := col.FindDeck(req.DeckFile, req.MoxfieldID)
	if !ok {
		name = TargetName
	}

	var (
		list cardlist.List
		err  error
	)
	if req.MoxfieldID != "" {
		s.logger.Debug("Fetching deck", zap.String("id", req.MoxfieldID))
		list, err = s.source.FetchDeck(ctx, req.MoxfieldID)
		if err != nil {
			return reconcile.Deck{}, fmt.Errorf("could not retrieve deck with Moxfield ID %s: %w", req.MoxfieldID, err)
		}
		if len(list) == 0 {
			return reconcile.Deck{}, fmt.Errorf("could not retrieve deck with Moxfield ID %s: no cards", req.MoxfieldID)
		}
	} else {
		list, err = s.store.Read(ctx, req.DeckFile)
		if err != nil {
			return reconcile.Deck{}, err
		}
	}

	return reconcile.Deck{Name: name, Cards: list.Map()}, nil
}
