package matchsim

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestCatalogNarrator_MatchesLanguage(t *testing.T) {
	t.Parallel()

	n := NewCatalogNarrator()
	params := Params{"player": "Arda", "team": "Lions"}

	english := n.Narrate(ParseLanguage("en-GB"), KeyMiss, params)
	if english != "Arda shoots wide for Lions." {
		t.Fatalf("unexpected english text %q", english)
	}

	turkish := n.Narrate(ParseLanguage("tr-TR"), KeyMiss, params)
	if !strings.Contains(turkish, "Arda") || turkish == english {
		t.Fatalf("expected turkish text, got %q", turkish)
	}

	for _, tag := range []string{"de", "xx-invalid-tag!", ""} {
		if got := n.Narrate(ParseLanguage(tag), KeyMiss, params); got != english {
			t.Fatalf("tag %q: expected english fallback, got %q", tag, got)
		}
	}
}

func TestCatalogNarrator_MissingKeyFallsBack(t *testing.T) {
	t.Parallel()

	n := NewCustomNarrator(
		[]language.Tag{language.English, language.Turkish},
		[]map[string]string{{KeyPost: "post {player}"}, {}},
	)
	if got := n.Narrate(language.Turkish, KeyPost, Params{"player": "Kerem"}); got != "post Kerem" {
		t.Fatalf("expected english template for a missing turkish key, got %q", got)
	}
	if got := n.Narrate(language.English, "unknown.key", nil); got != "unknown.key" {
		t.Fatalf("expected the key itself, got %q", got)
	}
}
