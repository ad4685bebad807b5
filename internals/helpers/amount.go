package helper

import (
	"fmt"
	"strconv"
	"strings"
)

// StripAmount: convierte un monto ingresado por el usuario ("80.000", "80,000",
// "80 000" o "80000") a entero sin separadores. Los separadores de miles son
// solo presentación; lo que se persiste y transmite es siempre el entero.
func StripAmount(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("monto vacío")
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == ',' || r == ' ':
			// separador de miles
		default:
			return 0, fmt.Errorf("monto inválido: %q", raw)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0, fmt.Errorf("monto inválido: %q", raw)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("monto inválido: %q", raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("el monto debe ser mayor a cero")
	}
	return n, nil
}

// FormatAmount: agrupa miles con punto para mostrar (80000 → "80.000").
func FormatAmount(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}
