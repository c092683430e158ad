package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "20:00", got.ReminderTime)
	assert.True(t, got.HapticFeedback)
	assert.True(t, got.ShowEmotionConfidence)
	assert.True(t, got.FollowUpQuestions)
	assert.False(t, got.PinEnabled)
}

func TestSaveRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	v := Defaults()
	v.ReminderEnabled = true
	v.ReminderTime = "07:30"
	v.FollowUpQuestions = false
	require.NoError(t, s.Save(v))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, s.Save(Defaults()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(s.path), entries[0].Name())
}

func TestPINLifecycle(t *testing.T) {
	s := NewStore(t.TempDir())

	// No lock configured: everything verifies.
	ok, err := s.VerifyPIN("anything")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.SetPIN("4321"))

	ok, err = s.VerifyPIN("0000")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.VerifyPIN("4321")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.ClearPIN())
	got, err := s.Load()
	require.NoError(t, err)
	assert.False(t, got.PinEnabled)
	assert.Empty(t, got.Pin)
}

func TestVerifyPINRecordsAuthTime(t *testing.T) {
	s := NewStore(t.TempDir())
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	require.NoError(t, s.SetPIN("1234"))
	ok, err := s.VerifyPIN("1234")
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, fixed.UnixMilli(), got.LastAuthTime)
}

func TestSetPINRejectsEmpty(t *testing.T) {
	s := NewStore(t.TempDir())
	assert.Error(t, s.SetPIN(""))
}

func TestCorruptFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".settings.json"), []byte("{nope"), 0o600))
	_, err := s.Load()
	assert.Error(t, err)
}
