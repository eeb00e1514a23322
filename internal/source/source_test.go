package source

import (
	"path/filepath"
	"testing"

	"github.com/seralys/inkwell/internal/testutil"
)

func TestFresh_ReflectsDiskChanges(t *testing.T) {
	postsRoot := testutil.ContentRoot(t)
	thoughtsRoot := testutil.ContentRoot(t)
	src := NewFresh(postsRoot, thoughtsRoot, testutil.Logger())

	if got := src.Posts(); len(got) != 0 {
		t.Fatalf("initial posts = %d, want 0", len(got))
	}

	testutil.PostFile(t, postsRoot, "new.md", "New", "2024-01-01", "", nil, "x")
	if got := src.Posts(); len(got) != 1 {
		t.Errorf("posts after write = %d, want 1 (fresh mode re-loads)", len(got))
	}

	testutil.ThoughtFile(t, thoughtsRoot, "t.md", "2024-01-01", "", nil, "hm")
	if got := src.Thoughts(); len(got) != 1 {
		t.Errorf("thoughts after write = %d, want 1", len(got))
	}
}

func TestWatched_SnapshotStableUntilReload(t *testing.T) {
	postsRoot := testutil.ContentRoot(t)
	thoughtsRoot := testutil.ContentRoot(t)
	testutil.PostFile(t, postsRoot, "a.md", "A", "2024-01-01", "", nil, "x")

	src := NewWatched(postsRoot, thoughtsRoot, testutil.Logger())
	if got := src.Posts(); len(got) != 1 {
		t.Fatalf("initial snapshot posts = %d, want 1", len(got))
	}

	// Writing a file does not change the snapshot until Reload.
	testutil.PostFile(t, postsRoot, "b.md", "B", "2024-02-01", "", nil, "x")
	if got := src.Posts(); len(got) != 1 {
		t.Errorf("posts before reload = %d, want 1", len(got))
	}

	src.Reload()
	if got := src.Posts(); len(got) != 2 {
		t.Errorf("posts after reload = %d, want 2", len(got))
	}
}

func TestWatched_MissingRootsLoadEmpty(t *testing.T) {
	base := t.TempDir()
	src := NewWatched(
		filepath.Join(base, "no-posts"),
		filepath.Join(base, "no-thoughts"),
		testutil.Logger(),
	)
	if got := src.Posts(); len(got) != 0 {
		t.Errorf("posts = %d, want 0", len(got))
	}
	if got := src.Thoughts(); len(got) != 0 {
		t.Errorf("thoughts = %d, want 0", len(got))
	}
}
