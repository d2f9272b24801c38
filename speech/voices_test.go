package speech

import "testing"

// TestPreferredVoice tests voice selection across quality and language.
func TestPreferredVoice(t *testing.T) {
	english := Voice{ID: "en1", Name: "English Basic", Lang: "en-US"}
	enhanced := Voice{ID: "en2", Name: "English Enhanced", Lang: "en-GB"}
	german := Voice{ID: "de1", Name: "German Natural", Lang: "de-DE"}

	tests := []struct {
		name   string
		voices []Voice
		lang   string
		want   Voice
		wantOK bool
	}{
		{
			name:   "quality marker wins over first match",
			voices: []Voice{english, enhanced, german},
			lang:   "en-US",
			want:   enhanced,
			wantOK: true,
		},
		{
			name:   "first language match without markers",
			voices: []Voice{german, english},
			lang:   "en-US",
			want:   english,
			wantOK: true,
		},
		{
			name:   "no language match",
			voices: []Voice{german},
			lang:   "en-US",
			wantOK: false,
		},
		{
			name:   "empty voice list",
			voices: nil,
			lang:   "en-US",
			wantOK: false,
		},
		{
			name:   "invalid voice tags are skipped",
			voices: []Voice{{ID: "bad", Name: "Broken", Lang: "???"}, english},
			lang:   "en-US",
			want:   english,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PreferredVoice(tt.voices, tt.lang)
			if ok != tt.wantOK {
				t.Fatalf("PreferredVoice() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.ID != tt.want.ID {
				t.Errorf("PreferredVoice() = %q, want %q", got.ID, tt.want.ID)
			}
		})
	}
}

// TestPreferredVoiceInvalidLang tests that an unparseable request tag
// falls through to the platform default.
func TestPreferredVoiceInvalidLang(t *testing.T) {
	voices := []Voice{{ID: "en1", Name: "English", Lang: "en-US"}}
	if _, ok := PreferredVoice(voices, "not a tag"); ok {
		t.Error("PreferredVoice() ok = true for invalid language tag, want false")
	}
}
