// Package screenshot discovers screenshot image files in a single
// directory and decides, by name alone, what counts as one.
package screenshot

import (
	"strings"

	"github.com/samber/lo"
)

// Naming conventions of the common screen-capture utilities. The last
// two cover the unicode no-break space and non-breaking hyphen some
// localized capture tools produce.
var screenshotPatterns = []string{
	"screenshot",
	"screen shot",
	"screen shot",
	"screen‑shot",
}

// Raster formats the capture utilities write.
var imageExtensions = []string{
	".png",
	".jpg",
	".jpeg",
	".heic",
	".tiff",
	".gif",
	".bmp",
}

// IsScreenshotName reports whether a file base name looks like a
// screenshot: a case-insensitive match of one of the known naming
// conventions, with an image extension. It never fails, regardless of
// input.
func IsScreenshotName(name string) bool {
	lower := strings.ToLower(name)

	matched := lo.SomeBy(screenshotPatterns, func(pattern string) bool {
		return strings.Contains(lower, pattern)
	})
	if !matched {
		return false
	}

	return lo.SomeBy(imageExtensions, func(ext string) bool {
		return strings.HasSuffix(lower, ext)
	})
}
