package constants

import "testing"

func TestNineDepartments(t *testing.T) {
	if len(ProvincesByDepartment) != 9 {
		t.Fatalf("hay %d departamentos, quiero 9", len(ProvincesByDepartment))
	}
	for dept, provinces := range ProvincesByDepartment {
		if !IsValidDepartment(dept) {
			t.Errorf("IsValidDepartment(%q) = false", dept)
		}
		if len(provinces) == 0 {
			t.Errorf("departamento %q sin provincias", dept)
		}
	}
}

func TestProvinceBelongsToDepartment(t *testing.T) {
	if !IsValidProvince(DeptLaPaz, "murillo") {
		t.Fatal("murillo pertenece a la_paz")
	}
	if IsValidProvince(DeptPando, "murillo") {
		t.Fatal("murillo no pertenece a pando")
	}
	if IsValidProvince("no_existe", "murillo") {
		t.Fatal("departamento inexistente")
	}
}

func TestRecipientTypes(t *testing.T) {
	for _, rt := range []string{RecipientSelf, RecipientThirdParty, RecipientLegalEntity, RecipientOrg} {
		if !IsValidRecipientType(rt) {
			t.Errorf("IsValidRecipientType(%q) = false", rt)
		}
	}
	if IsValidRecipientType("empresa") {
		t.Error("tipo desconocido no debe pasar")
	}
}

func TestCategories(t *testing.T) {
	if !IsValidCategory("educacion") || !IsValidCategory("salud") {
		t.Fatal("categorías base deben ser válidas")
	}
	if IsValidCategory("") || IsValidCategory("criptomonedas") {
		t.Fatal("categoría desconocida no debe pasar")
	}
}
