package entity

import "fmt"

type ParseMode string

const (
	ParseModeMarkdown ParseMode = "Markdown"
	ParseModeNone     ParseMode = ""
)

type Message struct {
	Text                  string
	ParseMode             ParseMode
	DisableWebPagePreview bool
}

const postTemplate = `🔔 *New Reddit Post Found!*

*Subreddit:* r/%s
*Title:* %s
*Author:* u/%s
*Score:* %d

*Link:* %s

*Preview:*
%s`

func NewMessageFromPost(post *Post) *Message {
	text := fmt.Sprintf(postTemplate,
		post.Subreddit,
		post.Title,
		post.AuthorName(),
		post.Score,
		post.Link(),
		post.Preview(),
	)
	return NewMessage(text, ParseModeMarkdown)
}

func NewMessage(text string, mode ParseMode) *Message {
	return &Message{
		Text:      text,
		ParseMode: mode,
	}
}
