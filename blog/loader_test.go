package blog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writePost(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

func TestGetPost(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "hello-world.md", `---
title: "Hello"
date: "2024-01-01"
tags:
  - a
  - b
---
# Hi`)

	l := NewLoader(dir)
	post, err := l.GetPost("hello-world")
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}

	if post.Slug != "hello-world" {
		t.Errorf("Slug = %q, want %q", post.Slug, "hello-world")
	}
	if post.Title != "Hello" {
		t.Errorf("Title = %q, want %q", post.Title, "Hello")
	}
	if post.Date != "2024-01-01" {
		t.Errorf("Date = %q, want %q", post.Date, "2024-01-01")
	}
	if len(post.Tags) != 2 || post.Tags[0] != "a" || post.Tags[1] != "b" {
		t.Errorf("Tags = %#v, want [a b]", post.Tags)
	}
	if post.ContentHTML != "<h1>Hi</h1>\n" {
		t.Errorf("ContentHTML = %q, want %q", post.ContentHTML, "<h1>Hi</h1>\n")
	}
	if post.Content != "# Hi" {
		t.Errorf("Content = %q, want %q", post.Content, "# Hi")
	}
}

func TestGetPostMissing(t *testing.T) {
	l := NewLoader(t.TempDir())
	if _, err := l.GetPost("no-such-post"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestGetPostRejectsPathEscapes(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "content")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writePost(t, parent, "outside.md", "# secret")

	l := NewLoader(dir)
	for _, slug := range []string{"../outside", "..", "sub/post", `sub\post`, "a..b"} {
		if _, err := l.GetPost(slug); !errors.Is(err, ErrPostNotFound) {
			t.Errorf("GetPost(%q) err = %v, want ErrPostNotFound", slug, err)
		}
	}
}

func TestGetPostMalformedReportsNotFound(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "broken.md", "---\ntags: [unclosed\n---\nbody")

	l := NewLoader(dir)
	if _, err := l.GetPost("broken"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestFrontMatterDefaults(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "bare.md", "just a body")

	l := NewLoader(dir)
	post, err := l.GetPost("bare")
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if post.Title != "" || post.Description != "" || post.Date != "" || post.Author != "" ||
		post.Image != "" || post.ReadingTime != "" {
		t.Errorf("expected empty string defaults, got %+v", post)
	}
	if post.Tags == nil || len(post.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty non-nil slice", post.Tags)
	}
	if post.Featured {
		t.Error("Featured should default to false")
	}
}

func TestListPostsSortedByDateDescending(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "oldest.md", "---\ntitle: oldest\ndate: \"2023-05-01\"\n---\nx")
	writePost(t, dir, "newest.md", "---\ntitle: newest\ndate: \"2024-03-01\"\n---\nx")
	writePost(t, dir, "middle.md", "---\ntitle: middle\ndate: \"2023-11-20\"\n---\nx")

	l := NewLoader(dir)
	posts, err := l.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("len = %d, want 3", len(posts))
	}
	want := []string{"newest", "middle", "oldest"}
	for i, title := range want {
		if posts[i].Title != title {
			t.Errorf("posts[%d].Title = %q, want %q", i, posts[i].Title, title)
		}
	}
}

func TestListPostsTiesAreStable(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a-first.md", "---\ndate: \"2024-01-01\"\n---\nx")
	writePost(t, dir, "b-second.md", "---\ndate: \"2024-01-01\"\n---\nx")
	writePost(t, dir, "c-third.md", "---\ndate: \"2024-01-01\"\n---\nx")

	l := NewLoader(dir)
	first, err := l.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := l.ListPosts()
		if err != nil {
			t.Fatalf("ListPosts: %v", err)
		}
		for j := range first {
			if again[j].Slug != first[j].Slug {
				t.Fatalf("order changed between calls: %q vs %q", again[j].Slug, first[j].Slug)
			}
		}
	}
}

func TestListPostsMissingDirectory(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "does-not-exist"))
	posts, err := l.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("len = %d, want 0", len(posts))
	}
}

func TestListPostsSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "good.md", "---\ntitle: good\n---\nx")
	writePost(t, dir, "broken.md", "---\ntags: [unclosed\n---\nx")
	writePost(t, dir, "notes.txt", "not markdown")

	l := NewLoader(dir)
	posts, err := l.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "good" {
		t.Fatalf("posts = %+v, want only the good one", posts)
	}
}

func TestListFeatured(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "plain.md", "---\ntitle: plain\n---\nx")
	writePost(t, dir, "star.md", "---\ntitle: star\nfeatured: true\n---\nx")

	l := NewLoader(dir)
	posts, err := l.ListFeatured()
	if err != nil {
		t.Fatalf("ListFeatured: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "star" {
		t.Fatalf("posts = %+v, want only the featured one", posts)
	}
}

func TestListByTag(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "one.md", "---\ntitle: one\ntags: [go, security]\n---\nx")
	writePost(t, dir, "two.md", "---\ntitle: two\ntags: [security]\n---\nx")
	writePost(t, dir, "three.md", "---\ntitle: three\ntags: [news]\n---\nx")

	l := NewLoader(dir)
	posts, err := l.ListByTag("security")
	if err != nil {
		t.Fatalf("ListByTag: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len = %d, want 2", len(posts))
	}

	// Exact match only, no substring matching.
	posts, err = l.ListByTag("sec")
	if err != nil {
		t.Fatalf("ListByTag: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("len = %d, want 0 for partial tag", len(posts))
	}
}

func TestRenderingIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "post.md", "---\ntitle: t\n---\n# Heading\n\nsome **bold** text\n")

	l := NewLoader(dir)
	first, err := l.GetPost("post")
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := l.GetPost("post")
		if err != nil {
			t.Fatalf("GetPost: %v", err)
		}
		if again.ContentHTML != first.ContentHTML {
			t.Fatalf("HTML differs between renders:\n%q\n%q", again.ContentHTML, first.ContentHTML)
		}
	}
}
