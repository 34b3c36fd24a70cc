package stemmers

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		language string
		word     string
		expected string
	}{
		{"english", "computations", "english:computations"},
		{"spanish", "computaciones", "spanish:computaciones"},
		{"english", "", "english:"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := Key(tt.language, tt.word); got != tt.expected {
				t.Errorf("Key(%q, %q) = %q, want %q", tt.language, tt.word, got, tt.expected)
			}
		})
	}
}

func TestKey_NoNormalization(t *testing.T) {
	// The word is keyed verbatim; casing and whitespace are significant.
	if Key("english", "Running") == Key("english", "running") {
		t.Error("keys must not case-fold the word")
	}
	if Key("english", " word") == Key("english", "word") {
		t.Error("keys must not trim the word")
	}
}

func TestKey_LanguageIsolation(t *testing.T) {
	if Key("english", "comput") == Key("spanish", "comput") {
		t.Error("the same word in different languages must map to different keys")
	}
}
