package entity

import (
	"strings"
	"time"
)

const (
	// LinkPrefix is prepended to a post's relative permalink.
	LinkPrefix = "https://reddit.com"

	// PreviewLength is the number of characters of body text kept in a preview.
	PreviewLength = 300

	deletedAuthor = "[deleted]"
)

type Post struct {
	ID        string
	Subreddit string
	Title     string
	// Author is empty when the account was deleted.
	Author    string
	Body      string
	Score     int
	Permalink string
	Created   time.Time
}

func NewPost(id, subreddit, title, author, body string, score int, permalink string, created time.Time) *Post {
	if author == deletedAuthor {
		author = ""
	}
	return &Post{
		ID:        id,
		Subreddit: subreddit,
		Title:     title,
		Author:    author,
		Body:      body,
		Score:     score,
		Permalink: permalink,
		Created:   created,
	}
}

func (p *Post) HasAuthor() bool {
	return p.Author != ""
}

// AuthorName returns the author or the "[deleted]" placeholder.
func (p *Post) AuthorName() string {
	if !p.HasAuthor() {
		return deletedAuthor
	}
	return p.Author
}

func (p *Post) Link() string {
	permalink := p.Permalink
	if permalink != "" && !strings.HasPrefix(permalink, "/") {
		permalink = "/" + permalink
	}
	return LinkPrefix + permalink
}

func (p *Post) Preview() string {
	return Truncate(p.Body, PreviewLength)
}

// Matches reports whether the title or the body contains any of keywords.
func (p *Post) Matches(keywords []string) bool {
	return ContainsKeywords(p.Title, keywords) || ContainsKeywords(p.Body, keywords)
}

// Truncate cuts s to its first n characters and appends "..." when s is longer.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
