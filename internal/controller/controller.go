// Package controller implements the bookmark mutation protocol: every
// user action is one fetch → transform → persist → render cycle against
// the per-video record. The rendered view is computed from the
// transformed in-memory list; the storage write is a fire-and-forget
// side effect, logged on completion and never surfaced to the popup.
package controller

import (
	"context"
	"errors"
	"time"

	"github.com/clipkeeper/clipkeeperd/internal/domain"
	"github.com/clipkeeper/clipkeeperd/internal/logger"
	"github.com/clipkeeper/clipkeeperd/internal/player"
	"github.com/clipkeeper/clipkeeperd/internal/tabs"
	"github.com/clipkeeper/clipkeeperd/internal/view"
)

// ErrNotWatchPage marks a mutation attempted against a page that has no
// video key. Initialize handles that branch itself; the popup never
// offers mutations there, so reaching this is a caller bug.
var ErrNotWatchPage = errors.New("active page is not a video watch page")

// DefaultWriteTimeout bounds each asynchronous record write.
const DefaultWriteTimeout = 5 * time.Second

// BookmarkStore is the slice of the store adapter the controller needs.
type BookmarkStore interface {
	FetchBookmarks(ctx context.Context, videoKey string) ([]domain.Bookmark, error)
	SaveBookmarks(ctx context.Context, videoKey string, list []domain.Bookmark) error
}

// Controller orchestrates fetch-transform-write-render cycles.
type Controller struct {
	store        BookmarkStore
	publisher    player.Publisher
	logger       logger.Logger
	writeTimeout time.Duration
}

// New creates a controller over the given store and playback channel.
func New(store BookmarkStore, publisher player.Publisher, log logger.Logger, writeTimeout time.Duration) *Controller {
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &Controller{
		store:        store,
		publisher:    publisher,
		logger:       log,
		writeTimeout: writeTimeout,
	}
}

// Initialize renders the popup for the active page. A page without a
// video key gets the not-applicable view and no storage access; an
// absent record renders the empty placeholder. Never writes.
func (c *Controller) Initialize(ctx context.Context, page tabs.Page) (view.View, error) {
	videoKey, ok := domain.ParseVideoKey(page.URL)
	if !ok {
		c.logger.Debug("popup opened outside a watch page",
			logger.String("url", page.URL))
		return view.NotApplicable(), nil
	}

	list, err := c.store.FetchBookmarks(ctx, videoKey)
	if err != nil {
		return view.View{}, err
	}

	c.logger.Info("popup initialized",
		logger.String("video", videoKey),
		logger.Int("bookmarks", len(list)))
	return view.Render(videoKey, list), nil
}

// Play dispatches a PLAY command carrying the target time to the page
// context. No persistence interaction.
func (c *Controller) Play(ctx context.Context, page tabs.Page, t float64) error {
	if _, ok := domain.ParseVideoKey(page.URL); !ok {
		return ErrNotWatchPage
	}

	cmd := player.NewCommand(player.CommandPlay, &t)
	return c.publisher.Dispatch(ctx, page.TabID, cmd)
}

// BeginEdit fetches the current list and seeds the edit overlay with
// the bookmark whose time matches exactly. A missing target yields a
// nil overlay: the documented silent no-op, no modal shown.
func (c *Controller) BeginEdit(ctx context.Context, page tabs.Page, t float64) (*view.EditOverlay, error) {
	videoKey, ok := domain.ParseVideoKey(page.URL)
	if !ok {
		return nil, ErrNotWatchPage
	}

	list, err := c.store.FetchBookmarks(ctx, videoKey)
	if err != nil {
		return nil, err
	}

	b, found := domain.FindExact(list, t)
	if !found {
		return nil, nil
	}
	return &view.EditOverlay{Time: b.Time, Desc: b.Desc}, nil
}

// CommitEdit replaces the note on every bookmark whose time equals t
// exactly, persists the updated list, and renders it. The overlay is
// dismissed unconditionally, even when nothing matched; the returned
// view always carries a nil overlay.
func (c *Controller) CommitEdit(ctx context.Context, page tabs.Page, t float64, desc string) (view.View, error) {
	videoKey, ok := domain.ParseVideoKey(page.URL)
	if !ok {
		return view.View{}, ErrNotWatchPage
	}

	list, err := c.store.FetchBookmarks(ctx, videoKey)
	if err != nil {
		return view.View{}, err
	}

	updated, count := domain.UpdateNote(list, t, desc)
	if count == 0 {
		c.logger.Debug("edit target not found",
			logger.String("video", videoKey),
			logger.Float64("time", t))
	}

	c.persist(videoKey, updated, "edit")
	return view.Render(videoKey, updated), nil
}

// Delete runs a single fetch → tolerance-filter → persist → render
// cycle and notifies the page context. The removed rows disappear from
// the returned view immediately; the write completes in the background.
func (c *Controller) Delete(ctx context.Context, page tabs.Page, t float64) (view.View, error) {
	videoKey, ok := domain.ParseVideoKey(page.URL)
	if !ok {
		return view.View{}, ErrNotWatchPage
	}

	list, err := c.store.FetchBookmarks(ctx, videoKey)
	if err != nil {
		return view.View{}, err
	}

	remaining, removed := domain.RemoveAt(list, t)
	if removed == 0 {
		c.logger.Debug("delete target not found",
			logger.String("video", videoKey),
			logger.Float64("time", t))
	}

	c.persist(videoKey, remaining, "delete")
	c.dispatch(ctx, page.TabID, player.NewCommand(player.CommandDelete, &t))

	return view.Render(videoKey, remaining), nil
}

// DeleteAll sets the video's record to the empty list without reading
// it first, notifies the page context, and renders the empty view.
func (c *Controller) DeleteAll(ctx context.Context, page tabs.Page) (view.View, error) {
	videoKey, ok := domain.ParseVideoKey(page.URL)
	if !ok {
		return view.View{}, ErrNotWatchPage
	}

	c.persist(videoKey, []domain.Bookmark{}, "delete_all")
	c.dispatch(ctx, page.TabID, player.NewCommand(player.CommandDeleteAll, nil))

	return view.Render(videoKey, nil), nil
}

// persist writes the full list in the background with its own timeout.
// Failures are logged only; the popup already rendered optimistically
// and reconciles on its next open. Last write wins on the record.
func (c *Controller) persist(videoKey string, list []domain.Bookmark, op string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.writeTimeout)
		defer cancel()

		if err := c.store.SaveBookmarks(ctx, videoKey, list); err != nil {
			c.logger.Error("record write failed",
				logger.String("video", videoKey),
				logger.String("op", op),
				logger.Error(err))
			return
		}
		c.logger.Debug("record updated",
			logger.String("video", videoKey),
			logger.String("op", op),
			logger.Int("bookmarks", len(list)))
	}()
}

// dispatch sends a playback command, logging any failure. The channel
// is one-way; a lost notification only desyncs the page-side markers
// until the next page load.
func (c *Controller) dispatch(ctx context.Context, tabID string, cmd player.Command) {
	if err := c.publisher.Dispatch(ctx, tabID, cmd); err != nil {
		c.logger.Warn("playback command dispatch failed",
			logger.String("tab", tabID),
			logger.String("type", string(cmd.Type)),
			logger.Error(err))
	}
}
