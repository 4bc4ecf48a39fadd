package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipkeeper/clipkeeperd/internal/domain"
	"github.com/clipkeeper/clipkeeperd/internal/logger"
	"github.com/clipkeeper/clipkeeperd/internal/player"
	"github.com/clipkeeper/clipkeeperd/internal/tabs"
	"github.com/clipkeeper/clipkeeperd/internal/view"
)

const watchURL = "https://www.youtube.com/watch?v=abc123"

var watchPage = tabs.Page{TabID: "7", URL: watchURL}

type savedRecord struct {
	videoKey string
	list     []domain.Bookmark
}

// fakeStore serves a fixed list and reports writes on a channel so
// tests can observe the asynchronous persist step.
type fakeStore struct {
	mu       sync.Mutex
	list     []domain.Bookmark
	fetchErr error
	saveErr  error
	fetches  int
	saves    chan savedRecord
}

func newFakeStore(list []domain.Bookmark) *fakeStore {
	return &fakeStore{
		list:  list,
		saves: make(chan savedRecord, 4),
	}
}

func (f *fakeStore) FetchBookmarks(_ context.Context, videoKey string) ([]domain.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]domain.Bookmark, len(f.list))
	copy(out, f.list)
	return out, nil
}

func (f *fakeStore) SaveBookmarks(_ context.Context, videoKey string, list []domain.Bookmark) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves <- savedRecord{videoKey: videoKey, list: list}
	return nil
}

func (f *fakeStore) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *fakeStore) awaitSave(t *testing.T) savedRecord {
	t.Helper()
	select {
	case rec := <-f.saves:
		return rec
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for record write")
		return savedRecord{}
	}
}

func (f *fakeStore) assertNoSave(t *testing.T) {
	t.Helper()
	select {
	case rec := <-f.saves:
		t.Fatalf("unexpected record write: %+v", rec)
	case <-time.After(50 * time.Millisecond):
	}
}

type dispatched struct {
	tabID string
	cmd   player.Command
}

type fakePublisher struct {
	mu       sync.Mutex
	err      error
	commands []dispatched
}

func (f *fakePublisher) Dispatch(_ context.Context, tabID string, cmd player.Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.commands = append(f.commands, dispatched{tabID: tabID, cmd: cmd})
	return nil
}

func (f *fakePublisher) last(t *testing.T) dispatched {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.commands, "no playback command dispatched")
	return f.commands[len(f.commands)-1]
}

func newController(store *fakeStore, pub *fakePublisher) *Controller {
	return New(store, pub, logger.New("error", false), time.Second)
}

func TestInitializeNotWatchPage(t *testing.T) {
	store := newFakeStore(nil)
	c := newController(store, &fakePublisher{})

	v, err := c.Initialize(context.Background(), tabs.Page{TabID: "7", URL: "https://example.com/"})

	require.NoError(t, err)
	assert.True(t, v.NotWatchPage)
	assert.Equal(t, view.NotWatchPageMessage, v.Message)
	assert.Zero(t, store.fetchCount(), "not-applicable branch must not touch storage")
	store.assertNoSave(t)
}

func TestInitializeAbsentRecord(t *testing.T) {
	store := newFakeStore(nil)
	c := newController(store, &fakePublisher{})

	v, err := c.Initialize(context.Background(), watchPage)

	require.NoError(t, err)
	assert.Equal(t, "abc123", v.VideoKey)
	assert.Empty(t, v.Rows)
	assert.Equal(t, view.NoBookmarksPlaceholder, v.Placeholder)
	assert.False(t, v.ShowDeleteAll)
	store.assertNoSave(t)
}

func TestInitializeRendersStoredOrder(t *testing.T) {
	store := newFakeStore([]domain.Bookmark{
		{Time: 30, Desc: "later"},
		{Time: 5, Desc: "earlier"},
	})
	c := newController(store, &fakePublisher{})

	v, err := c.Initialize(context.Background(), watchPage)

	require.NoError(t, err)
	require.Len(t, v.Rows, 2)
	assert.Equal(t, 30.0, v.Rows[0].Time, "rows must keep stored order, no re-sorting")
	assert.Equal(t, 5.0, v.Rows[1].Time)
	assert.True(t, v.ShowDeleteAll)
}

func TestPlayDispatchesWithoutStorage(t *testing.T) {
	store := newFakeStore([]domain.Bookmark{{Time: 12.5}})
	pub := &fakePublisher{}
	c := newController(store, pub)

	err := c.Play(context.Background(), watchPage, 12.5)

	require.NoError(t, err)
	assert.Zero(t, store.fetchCount(), "play must not touch storage")

	got := pub.last(t)
	assert.Equal(t, "7", got.tabID)
	assert.Equal(t, player.CommandPlay, got.cmd.Type)
	require.NotNil(t, got.cmd.Value)
	assert.Equal(t, 12.5, *got.cmd.Value)
}

func TestBeginEditSeedsOverlay(t *testing.T) {
	store := newFakeStore([]domain.Bookmark{{Time: 12.5, Desc: "old note"}})
	c := newController(store, &fakePublisher{})

	overlay, err := c.BeginEdit(context.Background(), watchPage, 12.5)

	require.NoError(t, err)
	require.NotNil(t, overlay)
	assert.Equal(t, 12.5, overlay.Time)
	assert.Equal(t, "old note", overlay.Desc)
}

func TestBeginEditMissingTargetIsSilentNoop(t *testing.T) {
	store := newFakeStore([]domain.Bookmark{{Time: 12.5, Desc: "old note"}})
	c := newController(store, &fakePublisher{})

	overlay, err := c.BeginEdit(context.Background(), watchPage, 99)

	require.NoError(t, err)
	assert.Nil(t, overlay, "missing target opens no overlay")
	store.assertNoSave(t)
}

func TestCommitEditUpdatesAllDuplicates(t *testing.T) {
	store := newFakeStore([]domain.Bookmark{
		{Time: 5.0, Desc: "a"},
		{Time: 5.0, Desc: "b"},
	})
	c := newController(store, &fakePublisher{})

	v, err := c.CommitEdit(context.Background(), watchPage, 5.0, "c")

	require.NoError(t, err)
	require.Len(t, v.Rows, 2)
	assert.Equal(t, "c", v.Rows[0].Note)
	assert.Equal(t, "c", v.Rows[1].Note)
	assert.Nil(t, v.Overlay, "overlay dismissed after commit")

	rec := store.awaitSave(t)
	assert.Equal(t, "abc123", rec.videoKey)
	require.Len(t, rec.list, 2)
	assert.Equal(t, "c", rec.list[0].Desc)
	assert.Equal(t, "c", rec.list[1].Desc)
}

func TestCommitEditMissingTargetStillWritesUnchangedList(t *testing.T) {
	store := newFakeStore([]domain.Bookmark{{Time: 5.0, Desc: "a"}})
	c := newController(store, &fakePublisher{})

	v, err := c.CommitEdit(context.Background(), watchPage, 77, "x")

	require.NoError(t, err)
	assert.Nil(t, v.Overlay, "overlay dismissed even without a match")

	rec := store.awaitSave(t)
	require.Len(t, rec.list, 1)
	assert.Equal(t, "a", rec.list[0].Desc, "record contents unchanged")
}

func TestDeleteFiltersWithinTolerance(t *testing.T) {
	store := newFakeStore([]domain.Bookmark{
		{Time: 9.9995, Desc: "dup low"},
		{Time: 4.0, Desc: "keep"},
		{Time: 10.0005, Desc: "dup high"},
	})
	pub := &fakePublisher{}
	c := newController(store, pub)

	v, err := c.Delete(context.Background(), watchPage, 10.0)

	require.NoError(t, err)
	require.Len(t, v.Rows, 1)
	assert.Equal(t, 4.0, v.Rows[0].Time)
	assert.False(t, v.ShowDeleteAll)

	rec := store.awaitSave(t)
	require.Len(t, rec.list, 1)
	assert.Equal(t, 4.0, rec.list[0].Time)

	got := pub.last(t)
	assert.Equal(t, player.CommandDelete, got.cmd.Type)
	require.NotNil(t, got.cmd.Value)
	assert.Equal(t, 10.0, *got.cmd.Value)
}

func TestDeleteAllSkipsFetch(t *testing.T) {
	store := newFakeStore([]domain.Bookmark{
		{Time: 1}, {Time: 2}, {Time: 3},
	})
	pub := &fakePublisher{}
	c := newController(store, pub)

	v, err := c.DeleteAll(context.Background(), watchPage)

	require.NoError(t, err)
	assert.Empty(t, v.Rows)
	assert.Equal(t, view.NoBookmarksPlaceholder, v.Placeholder)
	assert.Zero(t, store.fetchCount(), "delete-all needs no read before write")

	rec := store.awaitSave(t)
	assert.Equal(t, "abc123", rec.videoKey)
	assert.Empty(t, rec.list)

	got := pub.last(t)
	assert.Equal(t, player.CommandDeleteAll, got.cmd.Type)
	assert.Nil(t, got.cmd.Value)
}

func TestMutationsRejectNonWatchPage(t *testing.T) {
	store := newFakeStore(nil)
	c := newController(store, &fakePublisher{})
	page := tabs.Page{TabID: "7", URL: "https://example.com/"}

	_, err := c.CommitEdit(context.Background(), page, 1, "x")
	assert.ErrorIs(t, err, ErrNotWatchPage)

	_, err = c.Delete(context.Background(), page, 1)
	assert.ErrorIs(t, err, ErrNotWatchPage)

	_, err = c.DeleteAll(context.Background(), page)
	assert.ErrorIs(t, err, ErrNotWatchPage)

	assert.ErrorIs(t, c.Play(context.Background(), page, 1), ErrNotWatchPage)
	store.assertNoSave(t)
}

func TestDeleteStillRendersWhenDispatchFails(t *testing.T) {
	store := newFakeStore([]domain.Bookmark{{Time: 2.0}})
	pub := &fakePublisher{err: errors.New("bridge gone")}
	c := newController(store, pub)

	v, err := c.Delete(context.Background(), watchPage, 2.0)

	require.NoError(t, err, "dispatch failures are logged, not surfaced")
	assert.Empty(t, v.Rows)
	store.awaitSave(t)
}

func TestInitializeFetchErrorPropagates(t *testing.T) {
	store := newFakeStore(nil)
	store.fetchErr = errors.New("redis down")
	c := newController(store, &fakePublisher{})

	_, err := c.Initialize(context.Background(), watchPage)
	assert.Error(t, err)
}
