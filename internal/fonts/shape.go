package fonts

import "github.com/abdullahdiaa/garabic"

// Shape performs contextual glyph joining and reorders the text into visual
// order so a left-to-right drawing primitive renders it correctly. Any failure
// degrades to the raw input string rather than aborting the render.
func Shape(s string) (out string) {
	if s == "" {
		return ""
	}
	defer func() {
		if recover() != nil {
			out = s
		}
	}()
	return garabic.Shape(s)
}
