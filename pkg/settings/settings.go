// Package settings stores user preferences and the optional PIN lock as a
// single JSON file alongside the journal.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const fileName = ".settings.json"

// Settings is everything the app remembers about how the user wants it to
// behave. The PIN is stored as entered.
type Settings struct {
	ReminderEnabled       bool   `json:"reminderEnabled"`
	ReminderTime          string `json:"reminderTime"`
	HapticFeedback        bool   `json:"hapticFeedback"`
	ShowEmotionConfidence bool   `json:"showEmotionConfidence"`
	BiometricEnabled      bool   `json:"biometricEnabled"`
	PinEnabled            bool   `json:"pinEnabled"`
	Pin                   string `json:"pin,omitempty"`
	FollowUpQuestions     bool   `json:"followUpQuestions"`
	LastAuthTime          int64  `json:"lastAuthTime,omitempty"`
}

// Defaults mirror a fresh install.
func Defaults() Settings {
	return Settings{
		ReminderTime:          "20:00",
		HapticFeedback:        true,
		ShowEmotionConfidence: true,
		FollowUpQuestions:     true,
	}
}

// Store reads and writes Settings under a base directory.
type Store struct {
	path string
	now  func() time.Time
}

func NewStore(basePath string) *Store {
	return &Store{
		path: filepath.Join(basePath, fileName),
		now:  time.Now,
	}
}

// Load returns the saved settings, or defaults when no file exists yet.
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("settings: read %q: %w", s.path, err)
	}
	out := Defaults()
	if err := json.Unmarshal(data, &out); err != nil {
		return Settings{}, fmt.Errorf("settings: parse %q: %w", s.path, err)
	}
	return out, nil
}

// Save writes settings atomically, via a temp file in the same directory.
func (s *Store) Save(v Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("settings: mkdir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("settings: write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("settings: rename: %w", err)
	}
	return nil
}

// SetPIN enables the PIN lock with the given code.
func (s *Store) SetPIN(pin string) error {
	if pin == "" {
		return errors.New("settings: pin must not be empty")
	}
	cur, err := s.Load()
	if err != nil {
		return err
	}
	cur.Pin = pin
	cur.PinEnabled = true
	return s.Save(cur)
}

// ClearPIN disables the PIN lock and forgets the code.
func (s *Store) ClearPIN() error {
	cur, err := s.Load()
	if err != nil {
		return err
	}
	cur.Pin = ""
	cur.PinEnabled = false
	return s.Save(cur)
}

// VerifyPIN checks the candidate against the stored code and, on success,
// records the authentication time. A disabled lock always verifies.
func (s *Store) VerifyPIN(candidate string) (bool, error) {
	cur, err := s.Load()
	if err != nil {
		return false, err
	}
	if !cur.PinEnabled {
		return true, nil
	}
	if cur.Pin != candidate {
		return false, nil
	}
	cur.LastAuthTime = s.now().UnixMilli()
	if err := s.Save(cur); err != nil {
		return false, err
	}
	return true, nil
}
