package readingtime

import (
	"strings"
	"testing"

	"github.com/eringen/pubtheme/content"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "1 min read"},
		{1, "1 min read"},
		{2, "2 min read"},
		{12, "12 min read"},
	}
	for _, tt := range tests {
		if got := Format(tt.minutes); got != tt.expected {
			t.Errorf("Format(%d) = %q, want %q", tt.minutes, got, tt.expected)
		}
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"<p>one two</p><p>three</p>", 3},
		{"<p>fish &amp; chips</p>", 2},
		{"<h1>Title</h1>\n<p>Body <strong>text</strong> here.</p>", 4},
		{"<p>日本語</p>", 3},
	}
	for _, tt := range tests {
		if got := CountWords(tt.input); got != tt.expected {
			t.Errorf("CountWords(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestCountImages(t *testing.T) {
	body := `<p>a</p><img src="/a.jpg"><figure><img
		src="/b.jpg" alt="b"></figure>`
	if got := CountImages(body); got != 2 {
		t.Errorf("CountImages() = %d, want 2", got)
	}
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		extra    int
		expected int
	}{
		{"empty", "", 0, 0},
		{"one minute of words", "<p>" + words(275) + "</p>", 0, 1},
		{"four minutes of words", "<p>" + words(1100) + "</p>", 0, 4},
		// 1 minute of text plus 12+11+10+9+8+7 = 57 seconds of images.
		{"images add time", "<p>" + words(275) + "</p>" + strings.Repeat(`<img src="x.jpg">`, 6), 0, 2},
		{"extra image alone", "", 1, 0},
	}
	for _, tt := range tests {
		if got := Estimate(tt.body, tt.extra); got != tt.expected {
			t.Errorf("%s: Estimate() = %d, want %d", tt.name, got, tt.expected)
		}
	}
}

func TestForPost(t *testing.T) {
	tests := []struct {
		name     string
		post     content.Post
		expected string
	}{
		{"no body", content.Post{}, ""},
		{"short body", content.Post{HTML: "<p>hello</p>"}, "1 min read"},
		{"precomputed wins", content.Post{HTML: "<p>hello</p>", ReadingTime: 7}, "7 min read"},
		{"long body", content.Post{HTML: content.TrustedHTML("<p>" + words(1650) + "</p>")}, "6 min read"},
	}
	for _, tt := range tests {
		if got := ForPost(tt.post); got != tt.expected {
			t.Errorf("%s: ForPost() = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestForPostCountsFeatureImage(t *testing.T) {
	// 412 words is 89.9 seconds: rounds to 1 minute alone, 2 with one image.
	p := content.Post{HTML: content.TrustedHTML("<p>" + words(412) + "</p>")}
	if got := ForPost(p); got != "1 min read" {
		t.Fatalf("without feature image: got %q", got)
	}
	p.FeatureImage = "https://example.com/content/images/pic.jpg"
	if got := ForPost(p); got != "2 min read" {
		t.Errorf("with feature image: got %q, want %q", got, "2 min read")
	}
}
