package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	data map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string][]byte)}
}

func (m *memStorage) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

func (m *memStorage) Put(key string, value []byte) error {
	m.data[key] = value
	return nil
}

func TestSetSemantics(t *testing.T) {
	s := Load(newMemStorage())

	require.NoError(t, s.Add("jet-black"))
	require.NoError(t, s.Add("jet-black")) // duplicate is a no-op
	require.NoError(t, s.Add("navy-wool"))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("jet-black"))
	assert.Equal(t, []string{"jet-black", "navy-wool"}, s.Items())

	require.NoError(t, s.Remove("jet-black"))
	assert.False(t, s.Contains("jet-black"))
	require.NoError(t, s.Remove("jet-black")) // absent is a no-op

	require.NoError(t, s.Clear())
	assert.Zero(t, s.Len())
}

func TestToggle(t *testing.T) {
	s := Load(newMemStorage())

	added, err := s.Toggle("fringed-soft")
	require.NoError(t, err)
	assert.True(t, added)

	removed, err := s.Toggle("fringed-soft")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.False(t, s.Contains("fringed-soft"))
}

func TestPersistence(t *testing.T) {
	storage := newMemStorage()

	first := Load(storage)
	require.NoError(t, first.Add("classic-wool"))
	require.NoError(t, first.Add("camel-fringe"))

	second := Load(storage)
	assert.Equal(t, []string{"camel-fringe", "classic-wool"}, second.Items())
}

func TestCorruptPayloadResets(t *testing.T) {
	storage := newMemStorage()
	storage.data["wishlist"] = []byte("{not json")

	s := Load(storage)
	assert.Zero(t, s.Len())

	require.NoError(t, s.Add("jet-black"))
	assert.Equal(t, []string{"jet-black"}, Load(storage).Items())
}

func TestFileStorage(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)

	_, err = storage.Get("wishlist")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	s := Load(storage)
	require.NoError(t, s.Add("heritage-gray"))

	reloaded := Load(storage)
	assert.True(t, reloaded.Contains("heritage-gray"))
}
