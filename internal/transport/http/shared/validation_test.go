package shared

import (
	"testing"
	"time"
)

func TestDNIRule(t *testing.T) {
	valid := []string{"1234567", "12345678", "0000000"}
	for _, dni := range valid {
		v := NewValidator()
		v.DNI("dni", dni)
		if v.HasErrors() {
			t.Errorf("expected %q to be a valid DNI: %v", dni, v.Errors())
		}
	}

	invalid := []string{"", "123", "123456789", "1234a67", "12.34567", "12345678 "}
	for _, dni := range invalid {
		v := NewValidator()
		v.DNI("dni", dni)
		if dni == "12345678 " {
			// trimmed before matching, so trailing space is accepted
			if v.HasErrors() {
				t.Errorf("expected %q to be trimmed and accepted", dni)
			}
			continue
		}
		if !v.HasErrors() {
			t.Errorf("expected %q to be rejected", dni)
		}
	}
}

func TestPersonNameRule(t *testing.T) {
	v := NewValidator()
	v.PersonName("nombre", "El nombre", "María José")
	v.PersonName("apellido", "El apellido", "Ñandú")
	if v.HasErrors() {
		t.Fatalf("expected accented names to be valid: %v", v.Errors())
	}

	cases := map[string]string{
		"":      "empty",
		"A":     "too short",
		"Jos3":  "digits",
		"O'Neil": "punctuation",
	}
	for name := range cases {
		v := NewValidator()
		v.PersonName("nombre", "El nombre", name)
		if !v.HasErrors() {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

func TestBirthDateCalendarYearAge(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	// Year difference counts 18 even though the birthday is in December.
	v := NewValidator()
	if _, ok := v.BirthDate("fechaNacimiento", "2007-12-31", now); !ok {
		t.Fatalf("expected year-difference age 18 to pass: %v", v.Errors())
	}

	v = NewValidator()
	if _, ok := v.BirthDate("fechaNacimiento", "2008-01-01", now); ok {
		t.Fatal("expected age 17 by year difference to fail")
	}

	v = NewValidator()
	if _, ok := v.BirthDate("fechaNacimiento", "1920-06-15", now); ok {
		t.Fatal("expected age over 100 to fail")
	}
}

func TestHireDateRules(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	birth := time.Date(1990, time.March, 2, 0, 0, 0, 0, time.UTC)

	v := NewValidator()
	if _, ok := v.HireDate("fechaContratacion", "2020-01-10", birth, now); !ok {
		t.Fatalf("expected valid hire date: %v", v.Errors())
	}

	v = NewValidator()
	if _, ok := v.HireDate("fechaContratacion", "2026-01-01", birth, now); ok {
		t.Fatal("expected future hire date to fail")
	}

	v = NewValidator()
	if _, ok := v.HireDate("fechaContratacion", "2005-01-01", birth, now); ok {
		t.Fatal("expected hire before age 18 to fail")
	}
}

func TestPasswordRules(t *testing.T) {
	v := NewValidator()
	v.Password("contrasena", "Secreta123")
	v.PasswordConfirmation("confirmacion", "Secreta123", "Secreta123")
	if v.HasErrors() {
		t.Fatalf("expected strong password to pass: %v", v.Errors())
	}

	weak := []string{"", "corta1A", "minusculas1", "MAYUSCULAS1", "SinNumeros"}
	for _, password := range weak {
		v := NewValidator()
		v.Password("contrasena", password)
		if !v.HasErrors() {
			t.Errorf("expected %q to be rejected", password)
		}
	}

	v = NewValidator()
	v.PasswordConfirmation("confirmacion", "Secreta123", "Secreta124")
	if !v.HasErrors() {
		t.Fatal("expected mismatched confirmation to fail")
	}
}

func TestRequestRules(t *testing.T) {
	v := NewValidator()
	v.RequestDuration("duracionDias", 14)
	v.RequestReason("motivo", "Vacaciones familiares en el sur")
	if v.HasErrors() {
		t.Fatalf("expected valid request fields: %v", v.Errors())
	}

	v = NewValidator()
	v.RequestDuration("duracionDias", 0)
	v.RequestDuration("dias2", 366)
	v.RequestReason("motivo", "corto")
	if len(v.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %v", v.Errors())
	}
}

func TestPeriodRule(t *testing.T) {
	valid := []string{"09/2025", "9/2025", "12/2024", "01/1999"}
	for _, period := range valid {
		v := NewValidator()
		v.Period("periodo", period)
		if v.HasErrors() {
			t.Errorf("expected %q to be a valid period: %v", period, v.Errors())
		}
	}

	invalid := []string{"", "13/2025", "00/2025", "2025/09", "09-2025", "9/25"}
	for _, period := range invalid {
		v := NewValidator()
		v.Period("periodo", period)
		if !v.HasErrors() {
			t.Errorf("expected %q to be rejected", period)
		}
	}
}

func TestDateOrder(t *testing.T) {
	v := NewValidator()
	start := time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	v.DateOrder("desde", start, "hasta", end)
	if len(v.Errors()) != 2 {
		t.Fatalf("expected both range fields flagged, got %v", v.Errors())
	}

	v = NewValidator()
	v.DateOrder("desde", end, "hasta", start)
	if v.HasErrors() {
		t.Fatalf("expected ordered range to pass: %v", v.Errors())
	}
}

func TestFirstErrorPerFieldWins(t *testing.T) {
	v := NewValidator()
	v.Add("campo", "primero")
	v.Add("campo", "segundo")
	if v.Errors()["campo"] != "primero" {
		t.Fatalf("expected first message to win, got %q", v.Errors()["campo"])
	}
}
