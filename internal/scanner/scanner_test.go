package scanner

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/seralys/inkwell/internal/testutil"
)

func TestScan_FindsNestedMarkdown(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.WriteFile(t, root, "a.md", "one")
	testutil.WriteFile(t, root, "sub/b.md", "two")
	testutil.WriteFile(t, root, "sub/deep/c.md", "three")
	testutil.WriteFile(t, root, "notes.txt", "not markdown")

	files := Scan(root, testutil.Logger())
	if len(files) != 3 {
		t.Fatalf("len = %d, want 3", len(files))
	}

	var rels []string
	for _, f := range files {
		rels = append(rels, f.RelPath)
	}
	sort.Strings(rels)
	want := []string{"a.md", "sub/b.md", "sub/deep/c.md"}
	for i, r := range rels {
		if r != want[i] {
			t.Errorf("rels[%d] = %q, want %q", i, r, want[i])
		}
	}
}

func TestScan_RelPathsUseForwardSlashes(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.WriteFile(t, root, "x/y/z.md", "deep")

	files := Scan(root, testutil.Logger())
	if len(files) != 1 {
		t.Fatalf("len = %d, want 1", len(files))
	}
	if files[0].RelPath != "x/y/z.md" {
		t.Errorf("RelPath = %q, want x/y/z.md", files[0].RelPath)
	}
	if files[0].AbsPath != filepath.Join(root, "x", "y", "z.md") {
		t.Errorf("AbsPath = %q", files[0].AbsPath)
	}
}

func TestScan_MissingRootIsEmpty(t *testing.T) {
	files := Scan(filepath.Join(t.TempDir(), "does-not-exist"), testutil.Logger())
	if len(files) != 0 {
		t.Errorf("len = %d, want 0", len(files))
	}
}

func TestScan_RootIsFileNotDir(t *testing.T) {
	root := testutil.ContentRoot(t)
	testutil.WriteFile(t, root, "plain.md", "x")

	files := Scan(filepath.Join(root, "plain.md"), testutil.Logger())
	if len(files) != 0 {
		t.Errorf("len = %d, want 0", len(files))
	}
}

func TestScan_EmptyDir(t *testing.T) {
	files := Scan(t.TempDir(), testutil.Logger())
	if len(files) != 0 {
		t.Errorf("len = %d, want 0", len(files))
	}
}
