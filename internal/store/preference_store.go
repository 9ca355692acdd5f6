// Package store owns the per-user preference records and their durable
// snapshot. Every mutation rewrites the full snapshot before returning;
// write volume is a handful of settings changes per user per day, so the
// full rewrite stays cheap.
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/devingeorge/global-sales-insights/internal/models"
)

const snapshotFilename = "user-preferences.json"

// Storage abstracts the durable snapshot so tests can substitute an
// in-memory backing store.
type Storage interface {
	// Load returns the raw snapshot, or os.ErrNotExist when none exists yet
	Load() ([]byte, error)
	// Save replaces the snapshot wholesale
	Save(data []byte) error
}

// FileStorage persists the snapshot as a single JSON file under dir
type FileStorage struct {
	path string
}

// NewFileStorage creates the data directory if needed
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{path: filepath.Join(dir, snapshotFilename)}, nil
}

func (f *FileStorage) Load() ([]byte, error) {
	return os.ReadFile(f.path)
}

func (f *FileStorage) Save(data []byte) error {
	return os.WriteFile(f.path, data, 0o644)
}

// PreferenceStore is the repository for UserPreference records: an in-memory
// index backed by a full-rewrite snapshot. Get/Update/Reset for the same user
// id are serialized against each other; operations on different users only
// contend on the short map/persist critical section.
type PreferenceStore struct {
	mu    sync.Mutex // guards prefs, userLocks, and snapshot writes
	prefs map[string]models.UserPreference

	userLocks map[string]*sync.Mutex

	storage       Storage
	defaultSource models.DataSource
	now           func() time.Time
}

// NewPreferenceStore loads the snapshot into memory. A missing, unreadable,
// or corrupt snapshot is logged and treated as an empty store, never fatal.
func NewPreferenceStore(storage Storage, defaultSource models.DataSource, now func() time.Time) *PreferenceStore {
	if now == nil {
		now = time.Now
	}
	s := &PreferenceStore{
		prefs:         make(map[string]models.UserPreference),
		userLocks:     make(map[string]*sync.Mutex),
		storage:       storage,
		defaultSource: defaultSource,
		now:           now,
	}

	data, err := storage.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️  [PREFS] Failed to load preference snapshot, starting fresh: %v", err)
		}
		return s
	}

	var records []models.UserPreference
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("⚠️  [PREFS] Corrupt preference snapshot, starting fresh: %v", err)
		return s
	}
	for _, rec := range records {
		s.prefs[rec.UserID] = rec
	}
	log.Printf("📦 [PREFS] Loaded %d preference record(s)", len(records))
	return s
}

// userLock returns the mutex serializing mutations for one user id
func (s *PreferenceStore) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

func (s *PreferenceStore) fresh(userID string) models.UserPreference {
	return models.UserPreference{
		UserID:     userID,
		DataSource: s.defaultSource,
		UpdatedAt:  s.now(),
	}
}

// persist serializes the full record set to the snapshot. Caller must hold
// s.mu so snapshots are written in mutation order.
func (s *PreferenceStore) persist() {
	records := make([]models.UserPreference, 0, len(s.prefs))
	for _, rec := range s.prefs {
		records = append(records, rec)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Printf("❌ [PREFS] Failed to serialize preferences: %v", err)
		return
	}
	if err := s.storage.Save(data); err != nil {
		log.Printf("❌ [PREFS] Failed to write preference snapshot: %v", err)
	}
}

// Get returns the user's preference record, creating and persisting a
// default one on first access. It never fails.
func (s *PreferenceStore) Get(userID string) models.UserPreference {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if pref, ok := s.prefs[userID]; ok {
		return pref
	}
	pref := s.fresh(userID)
	s.prefs[userID] = pref
	s.persist()
	return pref
}

// Update merges the patch onto the current record (creating a default first
// if none exists), stamps a new modification time, and persists the whole
// store before returning the merged record.
func (s *PreferenceStore) Update(userID string, patch models.PreferencePatch) models.UserPreference {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	pref, ok := s.prefs[userID]
	if !ok {
		pref = s.fresh(userID)
	}

	if patch.DataSource != nil {
		pref.DataSource = *patch.DataSource
	}
	if patch.ViewAsUserID != nil {
		pref.ViewAsUserID = *patch.ViewAsUserID
	}
	if patch.SelectedCanvasID != nil {
		pref.SelectedCanvasID = *patch.SelectedCanvasID
	}
	if patch.SelectedCanvasTitle != nil {
		pref.SelectedCanvasTitle = *patch.SelectedCanvasTitle
	}
	pref.UpdatedAt = s.now()

	s.prefs[userID] = pref
	s.persist()
	return pref
}

// Reset replaces the record with a fresh default, discarding the persona,
// data source override, and canvas selection.
func (s *PreferenceStore) Reset(userID string) models.UserPreference {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	pref := s.fresh(userID)
	s.prefs[userID] = pref
	s.persist()
	return pref
}
