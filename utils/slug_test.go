package utils

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"accents and ampersand", "João & Maria", "joao-maria"},
		{"specials dropped", "Festa@2025!", "festa2025"},
		{"plain name", "Usuário de Teste", "usuario-de-teste"},
		{"uppercase", "ANA CLARA", "ana-clara"},
		{"empty", "", DefaultSlug},
		{"whitespace only", "   \t ", DefaultSlug},
		{"symbols only", "@!#$%", DefaultSlug},
		{"ampersand only", "&&&", DefaultSlug},
		{"leading and trailing junk", "  --João--  ", "joao"},
		{"underscores collapse", "foo__bar", "foo-bar"},
		{"numbers kept", "Turma 2025", "turma-2025"},
		{"mixed runs", "a  -  b", "a-b"},
		{"cedilla", "Ação & Reação", "acao-reacao"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Slugify(tc.input)
			if got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSlugifyAlphabet(t *testing.T) {
	inputs := []string{
		"João & Maria", "Festa@2025!", "çãõ é ü ñ", "--a--b--", "x", "陳さん", "🎉 party 🎉",
	}
	for _, in := range inputs {
		got := Slugify(in)
		if got == "" {
			t.Errorf("Slugify(%q) returned empty string", in)
			continue
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Slugify(%q) = %q has leading/trailing hyphen", in, got)
		}
		if strings.Contains(got, "--") {
			t.Errorf("Slugify(%q) = %q has doubled hyphen", in, got)
		}
		for _, r := range got {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
				t.Errorf("Slugify(%q) = %q contains %q outside [a-z0-9-]", in, got, r)
			}
		}
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	if Slugify("João & Maria") != Slugify("João & Maria") {
		t.Error("Slugify is not deterministic")
	}
}
