package content

import "testing"

func TestAuthorAvatarFallback(t *testing.T) {
	tests := []struct {
		author   Author
		expected string
	}{
		{Author{Name: "Ada"}, DefaultAvatar},
		{Author{Name: "Ada", ProfileImage: "https://example.com/ada.png"}, "https://example.com/ada.png"},
	}
	for _, tt := range tests {
		if got := tt.author.Avatar(); got != tt.expected {
			t.Errorf("Avatar() = %q, want %q", got, tt.expected)
		}
	}
}

func TestPublicTagsKeepsOrder(t *testing.T) {
	p := Post{Tags: []Tag{
		{Name: "Go", Slug: "go"},
		{Name: "#hidden", Slug: "hash-hidden", Visibility: VisibilityInternal},
		{Name: "Web", Slug: "web", Visibility: VisibilityPublic},
	}}
	got := p.PublicTags()
	if len(got) != 2 || got[0].Slug != "go" || got[1].Slug != "web" {
		t.Errorf("PublicTags() = %v, want [go web]", got)
	}
}

func TestURLs(t *testing.T) {
	p := Post{Slug: "hello-world", PrimaryAuthor: Author{Slug: "ada"}}
	if got := p.URL(); got != "/hello-world/" {
		t.Errorf("Post.URL() = %q", got)
	}
	if got := p.PrimaryAuthor.URL(); got != "/author/ada" {
		t.Errorf("Author.URL() = %q", got)
	}
	if got := (Tag{Slug: "go"}).URL(); got != "/tag/go/" {
		t.Errorf("Tag.URL() = %q", got)
	}
}
