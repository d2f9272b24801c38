package speech

import (
	"strings"

	"golang.org/x/text/language"
)

// qualityMarkers are name fragments that suggest a higher-quality voice.
var qualityMarkers = []string{"natural", "premium", "enhanced", "neural"}

// PreferredVoice picks the best voice for the given language tag: a voice
// in that language whose name carries a quality marker, else the first
// voice in that language, else no voice at all (the platform default).
func PreferredVoice(voices []Voice, lang string) (Voice, bool) {
	want, err := language.Parse(lang)
	if err != nil {
		return Voice{}, false
	}
	wantBase, _ := want.Base()

	var first *Voice
	for i := range voices {
		tag, err := language.Parse(voices[i].Lang)
		if err != nil {
			continue
		}
		base, _ := tag.Base()
		if base != wantBase {
			continue
		}

		if first == nil {
			first = &voices[i]
		}

		name := strings.ToLower(voices[i].Name)
		for _, marker := range qualityMarkers {
			if strings.Contains(name, marker) {
				return voices[i], true
			}
		}
	}

	if first != nil {
		return *first, true
	}
	return Voice{}, false
}
