// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Store{}, s)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Store{}, s)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s := Store{
		"SLAM": Papers{
			"2401.00001": "|**2024-01-01**|**Paper A**|Ann|cs.CV|[2401.00001](http://arxiv.org/abs/2401.00001)||\n",
		},
		"NeRF": Papers{},
	}
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	// No temp files left behind next to the store.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCount(t *testing.T) {
	s := Store{
		"SLAM": Papers{"a": "row", "b": "row"},
		"NeRF": Papers{"c": "row"},
	}
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 0, Store{}.Count())
}
