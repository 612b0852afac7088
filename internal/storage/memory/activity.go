package memory

import (
	"sort"
	"sync"
)

type activityRecord struct {
	favorites map[string]struct{}
	read      map[string]struct{}
}

// Activity tracks favorited and read article ids per user. Records are
// created lazily on first write and never removed; marks are set-membership,
// so repeating one is a no-op.
type Activity struct {
	mu    sync.Mutex
	users map[string]*activityRecord
}

func NewActivity() *Activity {
	return &Activity{
		users: make(map[string]*activityRecord),
	}
}

func (a *Activity) record(userID string) *activityRecord {
	rec, ok := a.users[userID]
	if !ok {
		rec = &activityRecord{
			favorites: make(map[string]struct{}),
			read:      make(map[string]struct{}),
		}
		a.users[userID] = rec
	}
	return rec
}

// MarkFavorite adds articleID to userID's favorites.
func (a *Activity) MarkFavorite(userID, articleID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record(userID).favorites[articleID] = struct{}{}
}

// Favorites returns userID's favorited article ids, sorted. Unknown users
// get an empty list.
func (a *Activity) Favorites(userID string) []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	rec, ok := a.users[userID]
	if !ok {
		return []string{}
	}
	return sortedKeys(rec.favorites)
}

// MarkRead adds articleID to userID's read set.
func (a *Activity) MarkRead(userID, articleID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record(userID).read[articleID] = struct{}{}
}

// Read returns userID's read article ids, sorted. Unknown users get an
// empty list.
func (a *Activity) Read(userID string) []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	rec, ok := a.users[userID]
	if !ok {
		return []string{}
	}
	return sortedKeys(rec.read)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
