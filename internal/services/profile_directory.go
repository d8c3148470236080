package services

import (
	"container/list"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/terraincognita07/remedywhisper/internal/models"
	"go.uber.org/zap"
)

var ErrInvalidProfileID = errors.New("invalid profile id")

const (
	profileKeySeparator      = ":"
	defaultMaxCachedProfiles = 1024
)

type cachedProfile struct {
	id    string
	store *ProfileStore
}

// ProfileDirectory hands out one ProfileStore per profile id. At most
// maxCached stores are kept; the least recently opened one is dropped first.
type ProfileDirectory struct {
	storage   StateStorage
	logger    *zap.Logger
	maxCached int

	mu     sync.Mutex
	stores map[string]*list.Element
	recent *list.List
}

func NewProfileDirectory(storage StateStorage, logger *zap.Logger) *ProfileDirectory {
	return newProfileDirectory(storage, logger, defaultMaxCachedProfiles)
}

func newProfileDirectory(storage StateStorage, logger *zap.Logger, maxCached int) *ProfileDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxCached <= 0 {
		maxCached = defaultMaxCachedProfiles
	}
	return &ProfileDirectory{
		storage:   storage,
		logger:    logger,
		maxCached: maxCached,
		stores:    make(map[string]*list.Element),
		recent:    list.New(),
	}
}

func ProfileStateKey(profileID string) string {
	return models.StateStorageKey + profileKeySeparator + profileID
}

// Open returns the store for profileID, loading it on first use. Corrupt
// stored state is logged and replaced by the defaults.
func (directory *ProfileDirectory) Open(profileID string) (*ProfileStore, error) {
	profileID, err := normalizeProfileID(profileID)
	if err != nil {
		return nil, err
	}

	directory.mu.Lock()
	defer directory.mu.Unlock()

	if element, ok := directory.stores[profileID]; ok {
		directory.recent.MoveToFront(element)
		return element.Value.(*cachedProfile).store, nil
	}

	store, err := directory.load(profileID)
	if err != nil {
		return nil, err
	}

	directory.stores[profileID] = directory.recent.PushFront(&cachedProfile{id: profileID, store: store})
	for directory.recent.Len() > directory.maxCached {
		oldest := directory.recent.Back()
		directory.recent.Remove(oldest)
		delete(directory.stores, oldest.Value.(*cachedProfile).id)
	}
	return store, nil
}

// State returns the current aggregate of profileID. A cached store answers
// directly; otherwise the state is read from storage without being cached.
func (directory *ProfileDirectory) State(profileID string) (models.HealthProfileState, error) {
	profileID, err := normalizeProfileID(profileID)
	if err != nil {
		return models.HealthProfileState{}, err
	}

	directory.mu.Lock()
	element, ok := directory.stores[profileID]
	directory.mu.Unlock()
	if ok {
		return element.Value.(*cachedProfile).store.State(), nil
	}

	store, err := directory.load(profileID)
	if err != nil {
		return models.HealthProfileState{}, err
	}
	return store.State(), nil
}

func (directory *ProfileDirectory) load(profileID string) (*ProfileStore, error) {
	store, err := OpenProfileStore(directory.storage, ProfileStateKey(profileID))
	var corrupt *CorruptStateError
	switch {
	case errors.As(err, &corrupt):
		directory.logger.Warn("stored profile state is corrupt, using defaults",
			zap.String("profile_id", profileID),
			zap.Error(err),
		)
	case err != nil:
		return nil, fmt.Errorf("open profile %s: %w", profileID, err)
	}
	return store, nil
}

// ListProfileIDs enumerates profiles that have stored state.
func (directory *ProfileDirectory) ListProfileIDs() ([]string, error) {
	lister, ok := directory.storage.(StateKeyLister)
	if !ok {
		return nil, errors.New("profile storage cannot list keys")
	}

	prefix := models.StateStorageKey + profileKeySeparator
	keys, err := lister.ListKeys(prefix)
	if err != nil {
		return nil, fmt.Errorf("list profile keys: %w", err)
	}

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		id := strings.TrimPrefix(key, prefix)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (directory *ProfileDirectory) Forget(profileID string) {
	directory.mu.Lock()
	defer directory.mu.Unlock()

	profileID = strings.TrimSpace(profileID)
	if element, ok := directory.stores[profileID]; ok {
		directory.recent.Remove(element)
		delete(directory.stores, profileID)
	}
}

// CachedCount reports how many stores are currently held in memory.
func (directory *ProfileDirectory) CachedCount() int {
	directory.mu.Lock()
	defer directory.mu.Unlock()
	return directory.recent.Len()
}

func normalizeProfileID(profileID string) (string, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" || strings.Contains(profileID, profileKeySeparator) {
		return "", ErrInvalidProfileID
	}
	return profileID, nil
}
