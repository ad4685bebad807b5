package constants

import "strings"

// Códigos de departamento soportados por la plataforma (9 fijos).
const (
	DeptLaPaz      = "la_paz"
	DeptSantaCruz  = "santa_cruz"
	DeptCochabamba = "cochabamba"
	DeptOruro      = "oruro"
	DeptPotosi     = "potosi"
	DeptChuquisaca = "chuquisaca"
	DeptTarija     = "tarija"
	DeptBeni       = "beni"
	DeptPando      = "pando"
)

// ProvincesByDepartment: provincias válidas por departamento. Una provincia solo
// es válida dentro de su departamento.
var ProvincesByDepartment = map[string][]string{
	DeptLaPaz:      {"murillo", "omasuyos", "los_andes", "larecaja", "ingavi", "sud_yungas"},
	DeptSantaCruz:  {"andres_ibanez", "warnes", "ichilo", "sara", "obispo_santistevan", "cordillera"},
	DeptCochabamba: {"cercado", "quillacollo", "chapare", "capinota", "punata"},
	DeptOruro:      {"cercado_oruro", "sajama", "pantaleon_dalence", "litoral"},
	DeptPotosi:     {"tomas_frias", "rafael_bustillo", "nor_chichas", "sud_chichas"},
	DeptChuquisaca: {"oropeza", "yamparaez", "zudanez", "tomina"},
	DeptTarija:     {"cercado_tarija", "gran_chaco", "mendez", "arce"},
	DeptBeni:       {"cercado_beni", "vaca_diez", "moxos", "yacuma"},
	DeptPando:      {"nicolas_suarez", "manuripi", "madre_de_dios"},
}

func IsValidDepartment(code string) bool {
	_, ok := ProvincesByDepartment[strings.ToLower(strings.TrimSpace(code))]
	return ok
}

// IsValidProvince: true si la provincia pertenece al departamento indicado.
func IsValidProvince(department, province string) bool {
	provs, ok := ProvincesByDepartment[strings.ToLower(strings.TrimSpace(department))]
	if !ok {
		return false
	}
	province = strings.ToLower(strings.TrimSpace(province))
	for _, p := range provs {
		if p == province {
			return true
		}
	}
	return false
}
