package reddit

import (
	"net/url"
	"strings"
)

// JoinSubreddits builds the multi-subreddit path segment "a+b+c".
func JoinSubreddits(subreddits []string) string {
	names := make([]string, 0, len(subreddits))
	for _, s := range subreddits {
		s = strings.TrimPrefix(strings.TrimSpace(s), "r/")
		if s != "" {
			names = append(names, s)
		}
	}
	return strings.Join(names, "+")
}

// relativePermalink turns an absolute post URL into a path starting with "/".
func relativePermalink(link string) string {
	if link == "" {
		return ""
	}
	if strings.HasPrefix(link, "/") {
		return link
	}
	u, err := url.Parse(link)
	if err != nil || u.Path == "" {
		return link
	}
	return u.Path
}

func subredditFromPermalink(permalink string) string {
	parts := strings.Split(strings.Trim(permalink, "/"), "/")
	if len(parts) >= 2 && parts[0] == "r" {
		return parts[1]
	}
	return ""
}
