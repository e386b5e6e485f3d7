// Copyright (C) 2025 infratrack-dev
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("should store and read back an object", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "site-photos/a.txt", strings.NewReader("hello"), 5, "text/plain"))

		r, err := s.Get(ctx, "site-photos/a.txt")
		require.NoError(t, err)
		defer r.Close()
		content, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))
	})

	t.Run("should report missing objects", func(t *testing.T) {
		_, err := s.Get(ctx, "does/not/exist")
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("should delete idempotently", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "b.txt", strings.NewReader("x"), 1, "text/plain"))
		require.NoError(t, s.Delete(ctx, "b.txt"))
		require.NoError(t, s.Delete(ctx, "b.txt"))
		_, err := s.Get(ctx, "b.txt")
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("should not leave a partial object if the upload breaks off", func(t *testing.T) {
		broken := io.MultiReader(strings.NewReader("half"), iotest.ErrReader(errors.New("connection reset")))

		err := s.Put(ctx, "site-photos/broken.txt", broken, 8, "text/plain")
		assert.ErrorContains(t, err, "connection reset")

		_, err = s.Get(ctx, "site-photos/broken.txt")
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("should refuse keys escaping the root", func(t *testing.T) {
		err := s.Put(ctx, "../escape.txt", strings.NewReader("x"), 1, "text/plain")
		assert.Error(t, err)
	})
}

func TestObjectKey(t *testing.T) {
	now := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	key := ObjectKey("Site Photos", "Bridge Deck.JPG", now)

	assert.True(t, strings.HasPrefix(key, "site-photos/2025/04/"), key)
	assert.True(t, strings.HasSuffix(key, "-bridge-deck.jpg"), key)
	assert.NotEqual(t, key, ObjectKey("Site Photos", "Bridge Deck.JPG", now))
}
