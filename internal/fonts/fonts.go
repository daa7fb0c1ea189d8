// Package fonts resolves a TTF font able to render Arabic script for PDF
// exports and prepares Arabic strings for a left-to-right drawing primitive.
package fonts

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Placeholder stub fonts show up as tiny files; anything below this is rejected.
const minFontSize = 30 * 1024

// Config is resolved once at startup and shared read-only across requests.
type Config struct {
	Family string
	Path   string
}

// HasArabic reports whether a script-capable TTF was found. When false the
// renderer stays on the built-in Latin font and Arabic glyphs come out garbled.
func (c Config) HasArabic() bool {
	return c.Path != ""
}

type candidate struct {
	family string
	path   string
}

// Resolve probes bundled fonts first, then platform font directories, and
// returns the first plausible candidate. Missing fonts are a diagnostic, not
// an error: the Helvetica fallback still yields a readable Latin document.
func Resolve(log *logrus.Logger, projectFontDir string) Config {
	candidates := []candidate{
		{"Amiri", filepath.Join(projectFontDir, "Amiri-Regular.ttf")},
		{"NotoNaskhArabic", filepath.Join(projectFontDir, "NotoNaskhArabic-Regular.ttf")},
		{"DejaVuSans", filepath.Join(projectFontDir, "DejaVuSans.ttf")},
	}

	if winDir := os.Getenv("WINDIR"); winDir != "" {
		winFonts := filepath.Join(winDir, "Fonts")
		candidates = append(candidates,
			candidate{"TraditionalArabic", filepath.Join(winFonts, "trado.ttf")},
			candidate{"Tahoma", filepath.Join(winFonts, "tahoma.ttf")},
			candidate{"Arial", filepath.Join(winFonts, "arial.ttf")},
			candidate{"ArialUnicodeMS", filepath.Join(winFonts, "arialuni.ttf")},
			candidate{"SegoeUI", filepath.Join(winFonts, "segoeui.ttf")},
			candidate{"TimesNewRoman", filepath.Join(winFonts, "times.ttf")},
		)
	}

	home, _ := os.UserHomeDir()
	linuxDirs := []string{"/usr/share/fonts/truetype", "/usr/local/share/fonts", filepath.Join(home, ".fonts")}
	for _, dir := range linuxDirs {
		candidates = append(candidates,
			candidate{"NotoNaskhArabic", filepath.Join(dir, "NotoNaskhArabic-Regular.ttf")},
			candidate{"DejaVuSans", filepath.Join(dir, "DejaVuSans.ttf")},
			candidate{"Amiri", filepath.Join(dir, "Amiri-Regular.ttf")},
		)
	}

	macDirs := []string{"/Library/Fonts", "/System/Library/Fonts", filepath.Join(home, "Library", "Fonts")}
	for _, dir := range macDirs {
		candidates = append(candidates,
			candidate{"GeezaPro", filepath.Join(dir, "GeezaPro.ttf")},
			candidate{"ArialUnicodeMS", filepath.Join(dir, "Arial Unicode.ttf")},
			candidate{"NotoNaskhArabic", filepath.Join(dir, "NotoNaskhArabic-Regular.ttf")},
			candidate{"Amiri", filepath.Join(dir, "Amiri-Regular.ttf")},
		)
	}

	for _, cand := range candidates {
		info, err := os.Stat(cand.path)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Size() < minFontSize {
			if log != nil {
				log.WithFields(logrus.Fields{
					"module": "fonts",
					"path":   cand.path,
					"size":   info.Size(),
				}).Debug("font too small, skipping")
			}
			continue
		}
		if log != nil {
			log.WithFields(logrus.Fields{
				"module": "fonts",
				"family": cand.family,
				"path":   cand.path,
			}).Info("arabic font loaded")
		}
		return Config{Family: cand.family, Path: cand.path}
	}

	if log != nil {
		log.WithField("module", "fonts").
			Warn("no arabic font found, falling back to Helvetica (no shaping)")
	}
	return Config{Family: "Helvetica"}
}
