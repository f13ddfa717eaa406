// File: services/favourites/favourites.go
package favourites

import (
	"context"
	"fmt"
	"sync"
	"time"

	favouriteRepo "trimmr/database/repository/favourite"
	salonRepo "trimmr/database/repository/salon"
	"trimmr/models"
	"trimmr/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FavouritesService keeps each user's favourite set in sync with the
// favourites collection, applying mutations optimistically with rollback on
// remote failure.
type FavouritesService interface {
	// Load fetches the user's favourites and hydrates each referenced salon.
	// Favourites whose salon no longer exists are dropped, not errors.
	Load(ctx context.Context, userID string) ([]models.HydratedFavourite, error)
	// Toggle flips the salon's favourite status and returns the new membership.
	Toggle(ctx context.Context, userID, salonID string, snapshot models.SalonRef) (bool, error)
	// IsFavourite reports membership against the local snapshot.
	IsFavourite(userID, salonID string) bool
	// List returns the local snapshot of the user's favourites, newest first.
	List(userID string) []models.Favourite
	// Clear drops the user's local snapshot (sign-out).
	Clear(userID string)
}

// favouriteSet is an immutable snapshot of one user's favourites. Mutations
// build a replacement set and swap it in whole, never edit in place.
type favouriteSet struct {
	favourites []models.Favourite // newest first
	ids        map[string]struct{}
}

func newFavouriteSet(favs []models.Favourite) *favouriteSet {
	set := &favouriteSet{
		favourites: favs,
		ids:        make(map[string]struct{}, len(favs)),
	}
	for _, f := range favs {
		set.ids[f.SalonID] = struct{}{}
	}
	return set
}

func (s *favouriteSet) has(salonID string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[salonID]
	return ok
}

func (s *favouriteSet) find(salonID string) (models.Favourite, bool) {
	if s == nil {
		return models.Favourite{}, false
	}
	for _, f := range s.favourites {
		if f.SalonID == salonID {
			return f, true
		}
	}
	return models.Favourite{}, false
}

// withAdded returns a new set with fav prepended.
func (s *favouriteSet) withAdded(fav models.Favourite) *favouriteSet {
	var favs []models.Favourite
	favs = append(favs, fav)
	if s != nil {
		favs = append(favs, s.favourites...)
	}
	return newFavouriteSet(favs)
}

// withRemoved returns a new set without the salon's favourite.
func (s *favouriteSet) withRemoved(salonID string) *favouriteSet {
	var favs []models.Favourite
	if s != nil {
		for _, f := range s.favourites {
			if f.SalonID != salonID {
				favs = append(favs, f)
			}
		}
	}
	return newFavouriteSet(favs)
}

// DefaultFavouritesService is the production implementation.
type DefaultFavouritesService struct {
	Repo      favouriteRepo.FavouriteRepository
	SalonRepo salonRepo.SalonRepository

	mu        sync.RWMutex
	snapshots map[string]*favouriteSet

	// toggleLocks serializes toggles per (user, salon) so a second tap always
	// observes the first tap's optimistic mutation instead of a stale read.
	toggleMu    sync.Mutex
	toggleLocks map[string]*sync.Mutex
}

// NewDefaultFavouritesService wires a favourites service over the given repositories.
func NewDefaultFavouritesService(repo favouriteRepo.FavouriteRepository, salons salonRepo.SalonRepository) *DefaultFavouritesService {
	return &DefaultFavouritesService{
		Repo:        repo,
		SalonRepo:   salons,
		snapshots:   make(map[string]*favouriteSet),
		toggleLocks: make(map[string]*sync.Mutex),
	}
}

func (s *DefaultFavouritesService) lockFor(userID, salonID string) *sync.Mutex {
	key := userID + ":" + salonID
	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()
	lock, ok := s.toggleLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.toggleLocks[key] = lock
	}
	return lock
}

func (s *DefaultFavouritesService) snapshot(userID string) *favouriteSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshots[userID]
}

func (s *DefaultFavouritesService) replaceSnapshot(userID string, set *favouriteSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[userID] = set
}

// Load fetches the user's favourite records, hydrates each referenced salon
// and replaces the local snapshot. A favourite whose salon cannot be fetched
// (e.g. deleted since it was bookmarked) is silently omitted.
func (s *DefaultFavouritesService) Load(ctx context.Context, userID string) ([]models.HydratedFavourite, error) {
	logger := utils.GetLogger()

	records, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load favourites: %w", err)
	}

	hydrated := make([]models.HydratedFavourite, 0, len(records))
	kept := make([]models.Favourite, 0, len(records))
	for _, rec := range records {
		salon, err := s.SalonRepo.GetByID(ctx, rec.SalonID)
		if err != nil {
			return nil, fmt.Errorf("failed to hydrate favourite %s: %w", rec.ID, err)
		}
		if salon == nil {
			logger.Debug("dropping favourite referencing missing salon",
				zap.String("favouriteID", rec.ID),
				zap.String("salonID", rec.SalonID))
			continue
		}
		hydrated = append(hydrated, models.HydratedFavourite{Favourite: rec, SalonDoc: salon})
		kept = append(kept, rec)
	}

	s.replaceSnapshot(userID, newFavouriteSet(kept))
	return hydrated, nil
}

// Toggle flips the salon's favourite status for the user. The local snapshot
// is mutated first for immediate feedback, then the remote store is updated;
// a remote failure rolls the local mutation back. Toggles for the same
// (user, salon) pair are serialized, so rapid double-taps converge on the
// correct final membership.
func (s *DefaultFavouritesService) Toggle(ctx context.Context, userID, salonID string, snapshot models.SalonRef) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("a signed-in user is required to favourite a salon")
	}
	if salonID == "" {
		return false, fmt.Errorf("a salon is required")
	}

	lock := s.lockFor(userID, salonID)
	lock.Lock()
	defer lock.Unlock()

	if s.snapshot(userID).has(salonID) {
		if err := s.remove(ctx, userID, salonID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.add(ctx, userID, salonID, snapshot); err != nil {
		return false, err
	}
	return true, nil
}

func (s *DefaultFavouritesService) add(ctx context.Context, userID, salonID string, snapshot models.SalonRef) error {
	fav := models.Favourite{
		ID:        uuid.New().String(),
		UserID:    userID,
		SalonID:   salonID,
		Salon:     snapshot,
		CreatedAt: time.Now(),
	}

	// Optimistic insert for instant feedback.
	before := s.snapshot(userID)
	s.replaceSnapshot(userID, before.withAdded(fav))

	if _, err := s.Repo.Create(ctx, fav); err != nil {
		// Roll back the optimistic insert.
		s.replaceSnapshot(userID, s.snapshot(userID).withRemoved(salonID))
		return fmt.Errorf("failed to add favourite: %w", err)
	}
	return nil
}

func (s *DefaultFavouritesService) remove(ctx context.Context, userID, salonID string) error {
	before := s.snapshot(userID)
	removed, ok := before.find(salonID)
	if !ok {
		return nil
	}

	// Optimistic delete for instant feedback.
	s.replaceSnapshot(userID, before.withRemoved(salonID))

	record, err := s.Repo.FindByUserAndSalon(ctx, userID, salonID)
	if err == nil && record != nil {
		err = s.Repo.DeleteByID(ctx, record.ID)
	}
	if err != nil {
		// Roll back the optimistic delete.
		s.replaceSnapshot(userID, s.snapshot(userID).withAdded(removed))
		return fmt.Errorf("failed to remove favourite: %w", err)
	}
	return nil
}

// IsFavourite reports membership against the local snapshot.
func (s *DefaultFavouritesService) IsFavourite(userID, salonID string) bool {
	return s.snapshot(userID).has(salonID)
}

// List returns the local snapshot of the user's favourites, newest first.
func (s *DefaultFavouritesService) List(userID string) []models.Favourite {
	set := s.snapshot(userID)
	if set == nil {
		return []models.Favourite{}
	}
	out := make([]models.Favourite, len(set.favourites))
	copy(out, set.favourites)
	return out
}

// Clear drops the user's local snapshot on sign-out.
func (s *DefaultFavouritesService) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, userID)
}
