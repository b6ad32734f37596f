package html

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// bodySelector matches the block Reddit wraps around rendered selftext.
const bodySelector = "div.md"

// ExtractText returns the plain text of an HTML fragment. If the fragment
// contains a rendered Reddit body only that block is used. Paragraphs are
// separated by blank lines.
func ExtractText(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	doc.Find("script, style").Remove()

	root := doc.Find(bodySelector).First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	var blocks []string
	root.Find("p, li, pre, blockquote, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		// nested blocks are picked up through their parent
		if s.ParentsFiltered("p, li, pre, blockquote").Length() > 0 {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return strings.Join(strings.Fields(root.Text()), " "), nil
	}
	return strings.Join(blocks, "\n\n"), nil
}
