package views

import (
	"strconv"
	"strings"
)

// ContentImagesPath is the path segment under which the CMS stores uploads.
// Resized variants live under ContentImagesPath + "size/w{width}/".
const ContentImagesPath = "/content/images/"

// FeatureImageSizes is the sizes attribute that accompanies the srcset.
const FeatureImageSizes = "(min-width: 1400px) 1400px, 92vw"

// FeatureImageWidths are the widths offered in a feature image srcset.
var FeatureImageWidths = []int{300, 600, 1000, 2000}

// ImageSizeURL returns a single srcset entry for featureImage scaled to
// width, e.g. "https://x/content/images/size/w600/2021/01/pic.jpg 600w".
//
// It reports false when featureImage is empty or does not contain
// ContentImagesPath, in which case no resized variant can be addressed.
func ImageSizeURL(featureImage string, width int) (string, bool) {
	if featureImage == "" {
		return "", false
	}
	domain, uri, ok := strings.Cut(featureImage, ContentImagesPath)
	if !ok {
		return "", false
	}
	w := strconv.Itoa(width)
	return domain + ContentImagesPath + "size/w" + w + "/" + uri + " " + w + "w", true
}

// FeatureImageSrcset joins ImageSizeURL entries for each width with ", ".
// With no widths given, FeatureImageWidths is used.
func FeatureImageSrcset(featureImage string, widths ...int) (string, bool) {
	if len(widths) == 0 {
		widths = FeatureImageWidths
	}
	entries := make([]string, 0, len(widths))
	for _, w := range widths {
		entry, ok := ImageSizeURL(featureImage, w)
		if !ok {
			return "", false
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, ", "), true
}
