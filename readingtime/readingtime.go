// Package readingtime estimates how long a post takes to read.
//
// Words are counted on the text content of the post body at 275 words per
// minute. Each image adds a diminishing number of seconds: 12 for the first,
// one less for each following image, never less than 3.
package readingtime

import (
	"html"
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/eringen/pubtheme/content"
)

const (
	wordsPerMinute   = 275
	firstImageSecs   = 12
	minImageSecs     = 3
	minuteString     = "1 min read"
	minutesSuffix    = " min read"
	cjkRangeStartsAt = 0x3040
)

var (
	reImage = regexp.MustCompile(`(?s)<img.*?>`)
	reWords = regexp.MustCompile(`[a-zA-Z\x{00C0}-\x{00FF}0-9_\x{0392}-\x{03C9}\x{0410}-\x{04F9}]+|[\x{4E00}-\x{9FFF}\x{3400}-\x{4DBF}\x{F900}-\x{FAFF}\x{3040}-\x{309F}\x{AC00}-\x{D7AF}]+`)

	textPolicy = newTextPolicy()
)

func newTextPolicy() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}

// ForPost returns the display string for a post's reading time, such as
// "4 min read". A reading time precomputed by the CMS wins over the estimate.
// The feature image counts as one extra image. Posts with neither body nor
// precomputed time yield "".
func ForPost(p content.Post) string {
	if p.HTML == "" && p.ReadingTime == 0 {
		return ""
	}
	minutes := p.ReadingTime
	if minutes == 0 {
		extra := 0
		if p.HasFeatureImage() {
			extra = 1
		}
		minutes = Estimate(p.HTML.String(), extra)
	}
	return Format(minutes)
}

// Format renders minutes as "1 min read" or "N min read".
func Format(minutes int) string {
	if minutes <= 1 {
		return minuteString
	}
	return strconv.Itoa(minutes) + minutesSuffix
}

// Estimate returns the estimated reading time of body in whole minutes.
// additionalImages counts images that are displayed with the post but are
// not part of body.
func Estimate(body string, additionalImages int) int {
	words := CountWords(body)
	images := CountImages(body) + additionalImages

	seconds := float64(words) / (float64(wordsPerMinute) / 60)
	for i := firstImageSecs; i > firstImageSecs-images; i-- {
		seconds += float64(max(i, minImageSecs))
	}
	return int(math.Round(seconds / 60))
}

// CountWords counts words in the text content of body. Runs of CJK
// characters count one word per character.
func CountWords(body string) int {
	text := html.UnescapeString(textPolicy.Sanitize(body))
	count := 0
	for _, m := range reWords.FindAllString(text, -1) {
		r, _ := utf8.DecodeRuneInString(m)
		if r >= cjkRangeStartsAt {
			count += utf8.RuneCountInString(m)
			continue
		}
		count++
	}
	return count
}

// CountImages counts <img> tags in body.
func CountImages(body string) int {
	return len(reImage.FindAllStringIndex(body, -1))
}
