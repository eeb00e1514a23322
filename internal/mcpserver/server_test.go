package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/seralys/inkwell/internal/api"
	"github.com/seralys/inkwell/internal/source"
	"github.com/seralys/inkwell/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	postsRoot := testutil.ContentRoot(t)
	thoughtsRoot := testutil.ContentRoot(t)
	testutil.PostFile(t, postsRoot, "hello-go.md", "Hello Go", "2024-03-01", "golang", []string{"go"}, "a body about go")
	testutil.PostFile(t, postsRoot, "life.md", "Slow Mornings", "2024-01-01", "life", nil, "coffee and quiet")
	testutil.ThoughtFile(t, thoughtsRoot, "t.md", "2024-02-01", "", nil, "a go thought")

	src := source.NewFresh(postsRoot, thoughtsRoot, testutil.Logger())
	return New(api.NewService(src))
}

func toolRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	if len(r.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := r.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", r.Content[0])
	}
	return tc.Text
}

func TestSearchContentTool(t *testing.T) {
	srv := testServer(t)
	res, err := srv.searchContent(context.Background(), toolRequest("search_content", map[string]any{"query": "go"}))
	if err != nil {
		t.Fatalf("searchContent: %v", err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "hello-go") {
		t.Errorf("result missing top hit: %s", text)
	}
	if !strings.Contains(text, "thought") {
		t.Errorf("result missing thought hit: %s", text)
	}
}

func TestSearchContentTool_MissingQuery(t *testing.T) {
	srv := testServer(t)
	res, err := srv.searchContent(context.Background(), toolRequest("search_content", nil))
	if err != nil {
		t.Fatalf("searchContent: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for missing query")
	}
}

func TestRecentPostsTool(t *testing.T) {
	srv := testServer(t)
	res, err := srv.recentPosts(context.Background(), toolRequest("recent_posts", map[string]any{"n": 1}))
	if err != nil {
		t.Fatalf("recentPosts: %v", err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "Hello Go") {
		t.Errorf("newest post missing: %s", text)
	}
	if strings.Contains(text, "Slow Mornings") {
		t.Errorf("n=1 should not include older post: %s", text)
	}
}

func TestReadPostTool(t *testing.T) {
	srv := testServer(t)
	res, err := srv.readPost(context.Background(), toolRequest("read_post", map[string]any{"slug": "hello-go"}))
	if err != nil {
		t.Fatalf("readPost: %v", err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "a body about go") {
		t.Errorf("body missing: %s", text)
	}

	res, err = srv.readPost(context.Background(), toolRequest("read_post", map[string]any{"slug": "nope"}))
	if err != nil {
		t.Fatalf("readPost: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for unknown slug")
	}
}

func TestListCategoriesTool(t *testing.T) {
	srv := testServer(t)
	res, err := srv.listCategories(context.Background(), toolRequest("list_categories", nil))
	if err != nil {
		t.Fatalf("listCategories: %v", err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "golang") || !strings.Contains(text, "life") {
		t.Errorf("categories missing: %s", text)
	}
}
