package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// GenerateSlug normaliza un texto a slug: minúsculas, no-alfanumérico → "-",
// sin guiones repetidos ni en los extremos.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > DefaultSlugMaxLen {
		out = strings.Trim(out[:DefaultSlugMaxLen], "-")
	}
	return out
}

// EnsureUniqueSlug busca un slug libre en la tabla/columna indicada,
// probando base, base-2, base-3, ...
func EnsureUniqueSlug(db *gorm.DB, base, table, column string) (string, error) {
	if base == "" {
		base = "campana"
	}

	var count int64
	if err := db.Table(table).
		Where(fmt.Sprintf("%s = ?", column), base).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}

	type row struct{ Slug string }
	var rows []row
	if err := db.Table(table).
		Select(column+" as slug").
		Where(fmt.Sprintf("%s = ? OR %s LIKE ?", column, column), base, base+"-%").
		Find(&rows).Error; err != nil {
		return "", err
	}

	maxN := 1
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `-(\d+)$`)
	for _, r := range rows {
		if m := re.FindStringSubmatch(r.Slug); len(m) == 2 {
			var n int
			fmt.Sscanf(m[1], "%d", &n)
			if n > maxN {
				maxN = n
			}
		}
	}
	return fmt.Sprintf("%s-%d", base, maxN+1), nil
}
