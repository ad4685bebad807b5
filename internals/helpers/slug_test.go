package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Escuela Rural de Sopocachi": "escuela-rural-de-sopocachi",
		"  Agua para Todos!!  ":      "agua-para-todos",
		"Ayuda   urgente":            "ayuda-urgente",
		"---":                        "",
	}
	for in, want := range cases {
		if got := GenerateSlug(in); got != want {
			t.Errorf("GenerateSlug(%q) = %q, quiero %q", in, got, want)
		}
	}
}
