package loader

import "github.com/seralys/inkwell/internal/models"

// RecentPosts returns the first n posts of an already date-sorted
// collection. n larger than the collection returns everything.
func RecentPosts(posts []models.Post, n int) []models.Post {
	if n < 0 {
		n = 0
	}
	if n > len(posts) {
		n = len(posts)
	}
	return posts[:n]
}

// PostsByCategory filters by exact category match, preserving order.
func PostsByCategory(posts []models.Post, category string) []models.Post {
	var out []models.Post
	for _, p := range posts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// PostsByTag filters posts whose tag set contains tag, preserving order.
func PostsByTag(posts []models.Post, tag string) []models.Post {
	var out []models.Post
	for _, p := range posts {
		if containsTag(p.Tags, tag) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order over the
// date-sorted collection. The order is part of the contract: it falls out
// of the input order and is not re-sorted.
func Categories(posts []models.Post) []string {
	seen := make(map[string]struct{}, len(posts))
	var out []string
	for _, p := range posts {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Tags returns the distinct tags across all posts in first-seen order.
func Tags(posts []models.Post) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// Moods returns the distinct moods across all thoughts in first-seen order.
func Moods(thoughts []models.Thought) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, th := range thoughts {
		if _, ok := seen[th.Mood]; ok {
			continue
		}
		seen[th.Mood] = struct{}{}
		out = append(out, th.Mood)
	}
	return out
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
