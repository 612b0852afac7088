package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActivity_MarkFavoriteIdempotent(t *testing.T) {
	activity := NewActivity()

	activity.MarkFavorite("u1", "a1")
	activity.MarkFavorite("u1", "a1")

	require.Equal(t, []string{"a1"}, activity.Favorites("u1"))
}

func TestActivity_FavoritesSorted(t *testing.T) {
	activity := NewActivity()

	activity.MarkFavorite("u1", "c")
	activity.MarkFavorite("u1", "a")
	activity.MarkFavorite("u1", "b")

	require.Equal(t, []string{"a", "b", "c"}, activity.Favorites("u1"))
}

func TestActivity_UnknownUserEmpty(t *testing.T) {
	activity := NewActivity()

	require.Empty(t, activity.Favorites("nobody"))
	require.Empty(t, activity.Read("nobody"))
}

func TestActivity_FavoritesAndReadIndependent(t *testing.T) {
	activity := NewActivity()

	activity.MarkFavorite("u1", "fav")
	activity.MarkRead("u1", "seen")

	require.Equal(t, []string{"fav"}, activity.Favorites("u1"))
	require.Equal(t, []string{"seen"}, activity.Read("u1"))
}

func TestActivity_UsersIsolated(t *testing.T) {
	activity := NewActivity()

	activity.MarkRead("u1", "a1")
	activity.MarkRead("u2", "a2")

	require.Equal(t, []string{"a1"}, activity.Read("u1"))
	require.Equal(t, []string{"a2"}, activity.Read("u2"))
}

func TestActivity_ConcurrentMarkReadSameID(t *testing.T) {
	activity := NewActivity()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			activity.MarkRead("u1", "x")
		}()
	}
	wg.Wait()

	require.Equal(t, []string{"x"}, activity.Read("u1"))
}
