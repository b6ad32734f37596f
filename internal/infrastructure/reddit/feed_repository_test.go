package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"redditTelegramBot/internal/domain/entity"
)

const atomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<category term="test" label="r/test"/>
	<title>newest submissions : test</title>
	<entry>
		<author>
			<name>/u/alice</name>
			<uri>https://www.reddit.com/user/alice</uri>
		</author>
		<category term="test" label="r/test"/>
		<content type="html">&lt;!-- SC_OFF --&gt;&lt;div class=&quot;md&quot;&gt;&lt;p&gt;Need someone today.&lt;/p&gt;&lt;/div&gt;&lt;!-- SC_ON --&gt; &amp;#32; submitted by &amp;#32; &lt;a href=&quot;https://www.reddit.com/user/alice&quot;&gt; /u/alice &lt;/a&gt;</content>
		<id>t3_a1</id>
		<link href="https://www.reddit.com/r/test/comments/a1/urgent_hiring/"/>
		<updated>2024-01-02T15:04:05+00:00</updated>
		<published>2024-01-02T15:04:05+00:00</published>
		<title>Urgent hiring</title>
	</entry>
	<entry>
		<author>
			<name>/u/bob</name>
		</author>
		<category term="golang" label="r/golang"/>
		<content type="html">&lt;table&gt;&lt;tr&gt;&lt;td&gt;submitted by /u/bob&lt;/td&gt;&lt;/tr&gt;&lt;/table&gt;</content>
		<id>t3_b2</id>
		<link href="https://www.reddit.com/r/golang/comments/b2/link_post/"/>
		<updated>2024-01-02T14:00:00+00:00</updated>
		<title>Link post</title>
	</entry>
</feed>`

func newFeedServer(t *testing.T, body string, gotPath *string, gotUA *string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotPath != nil {
			*gotPath = r.URL.RequestURI()
		}
		if gotUA != nil {
			*gotUA = r.Header.Get("User-Agent")
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFeedRepository_FetchNew_Success(t *testing.T) {
	var path, ua string
	server := newFeedServer(t, atomFeed, &path, &ua)

	repo := NewFeedRepository(server.URL, "test-agent/1.0")
	posts, err := repo.FetchNew(context.Background(), []string{"test", "golang"}, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != "/r/test+golang/new/.rss?limit=25" {
		t.Errorf("unexpected request path: %s", path)
	}
	if ua != "test-agent/1.0" {
		t.Errorf("expected user agent 'test-agent/1.0', got '%s'", ua)
	}

	want := []*entity.Post{
		{
			ID:        "a1",
			Subreddit: "test",
			Title:     "Urgent hiring",
			Author:    "alice",
			Body:      "Need someone today.",
			Permalink: "/r/test/comments/a1/urgent_hiring/",
			Created:   time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		},
		{
			ID:        "b2",
			Subreddit: "golang",
			Title:     "Link post",
			Author:    "bob",
			Body:      "submitted by /u/bob",
			Permalink: "/r/golang/comments/b2/link_post/",
			Created:   time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC),
		},
	}

	opt := cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })
	if diff := cmp.Diff(want, posts, opt); diff != "" {
		t.Errorf("posts mismatch (-want +got):\n%s", diff)
	}
}

func TestFeedRepository_FetchNew_RespectsLimit(t *testing.T) {
	server := newFeedServer(t, atomFeed, nil, nil)

	repo := NewFeedRepository(server.URL, "test-agent/1.0")
	posts, err := repo.FetchNew(context.Background(), []string{"test"}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].ID != "a1" {
		t.Errorf("expected first entry to be kept, got %s", posts[0].ID)
	}
}

func TestFeedRepository_FetchNew_InvalidXML(t *testing.T) {
	server := newFeedServer(t, "invalid xml content", nil, nil)

	repo := NewFeedRepository(server.URL, "test-agent/1.0")
	_, err := repo.FetchNew(context.Background(), []string{"test"}, 25)
	if err == nil {
		t.Error("expected error for invalid XML, got nil")
	}
}

func TestFeedRepository_FetchNew_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	repo := NewFeedRepository(server.URL, "test-agent/1.0")
	_, err := repo.FetchNew(context.Background(), []string{"test"}, 25)
	if err == nil {
		t.Error("expected error for non-OK status, got nil")
	}
}

func TestFeedRepository_FetchNew_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(atomFeed))
	}))
	defer server.Close()

	repo := NewFeedRepository(server.URL, "test-agent/1.0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchNew(ctx, []string{"test"}, 25)
	if err == nil {
		t.Error("expected error for cancelled context, got nil")
	}
}

func TestNewFeedRepository_DefaultBaseURL(t *testing.T) {
	repo := NewFeedRepository("", "ua").(*feedRepository)

	if repo.baseURL != defaultFeedBaseURL {
		t.Errorf("expected %s, got %s", defaultFeedBaseURL, repo.baseURL)
	}
	if !strings.HasPrefix(repo.baseURL, "https://") {
		t.Errorf("expected https base url, got %s", repo.baseURL)
	}
}
