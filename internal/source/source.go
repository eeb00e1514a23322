// Package source provides the content providers the server layer reads from.
//
// Fresh re-loads both collections from disk on every call, matching the
// core "pure function of current filesystem state" contract. Watched is an
// explicit caller-layer cache: it holds an immutable snapshot and reloads
// it when the watcher reports a change — never implicitly.
package source

import (
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/seralys/inkwell/internal/loader"
	"github.com/seralys/inkwell/internal/models"
)

// Source hands out the current content collections, both newest-first.
type Source interface {
	Posts() []models.Post
	Thoughts() []models.Thought
}

// Fresh loads from disk on every call.
type Fresh struct {
	postsRoot    string
	thoughtsRoot string
	logger       *slog.Logger
}

// NewFresh creates a Fresh source over the two content roots.
func NewFresh(postsRoot, thoughtsRoot string, logger *slog.Logger) *Fresh {
	return &Fresh{postsRoot: postsRoot, thoughtsRoot: thoughtsRoot, logger: logger}
}

// Posts loads the post collection from disk.
func (f *Fresh) Posts() []models.Post {
	return loader.LoadPosts(f.postsRoot, f.logger)
}

// Thoughts loads the thought collection from disk.
func (f *Fresh) Thoughts() []models.Thought {
	return loader.LoadThoughts(f.thoughtsRoot, f.logger)
}

// snapshot is one immutable view of both collections. Readers get the
// whole struct by pointer and must not mutate it.
type snapshot struct {
	posts    []models.Post
	thoughts []models.Thought
}

// Watched serves an in-memory snapshot, replaced wholesale on Reload.
type Watched struct {
	postsRoot    string
	thoughtsRoot string
	logger       *slog.Logger

	current atomic.Pointer[snapshot]
	reload  singleflight.Group
}

// NewWatched creates a Watched source and loads the initial snapshot.
func NewWatched(postsRoot, thoughtsRoot string, logger *slog.Logger) *Watched {
	w := &Watched{postsRoot: postsRoot, thoughtsRoot: thoughtsRoot, logger: logger}
	w.Reload()
	return w
}

// Posts returns the posts of the current snapshot.
func (w *Watched) Posts() []models.Post {
	return w.current.Load().posts
}

// Thoughts returns the thoughts of the current snapshot.
func (w *Watched) Thoughts() []models.Thought {
	return w.current.Load().thoughts
}

// Reload rebuilds the snapshot from disk. Concurrent calls collapse into
// a single load.
func (w *Watched) Reload() {
	_, _, _ = w.reload.Do("reload", func() (any, error) {
		s := &snapshot{
			posts:    loader.LoadPosts(w.postsRoot, w.logger),
			thoughts: loader.LoadThoughts(w.thoughtsRoot, w.logger),
		}
		w.current.Store(s)
		w.logger.Debug("source: snapshot reloaded",
			slog.Int("posts", len(s.posts)),
			slog.Int("thoughts", len(s.thoughts)))
		return nil, nil
	})
}
