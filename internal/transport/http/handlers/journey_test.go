package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"adminrec/internal/app/server"
	"adminrec/internal/platform/config"
	"adminrec/internal/platform/db"
)

const adminPassword = "Admin1234"

func startApp(t *testing.T) (*httptest.Server, config.Config) {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:        dbURL,
		JWTSecret:          "test-secret",
		TokenTTL:           time.Hour,
		Environment:        "test",
		SeedAdminDNI:       10000000,
		SeedAdminPassword:  adminPassword,
		SeedDemoData:       true,
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 10000,
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("db connect failed: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool, "../../../../migrations"); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	if err := db.Seed(ctx, pool, cfg); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	app := server.New(cfg, pool)
	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return ts, cfg
}

func doJSON(t *testing.T, method, url, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var payload map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp.StatusCode, payload
}

func login(t *testing.T, baseURL string, dni int, password string) string {
	t.Helper()
	status, payload := doJSON(t, http.MethodPost, baseURL+"/api/login", "", map[string]any{
		"dni":        dni,
		"contrasena": password,
	})
	if status != http.StatusOK {
		t.Fatalf("login for %d returned %d: %v", dni, status, payload)
	}
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatalf("login returned no token: %v", payload)
	}
	return token
}

func TestPersonnelJourney(t *testing.T) {
	ts, cfg := startApp(t)

	adminToken := login(t, ts.URL, cfg.SeedAdminDNI, adminPassword)

	// find a demo sector position to hire into
	status, payload := doJSON(t, http.MethodGet, ts.URL+"/api/jobpositions/", adminToken, nil)
	if status != http.StatusOK {
		t.Fatalf("list positions returned %d: %v", status, payload)
	}
	puestos, _ := payload["puestos"].([]any)
	if len(puestos) == 0 {
		t.Fatal("expected seeded positions")
	}
	var positionID float64
	var sectorID float64
	for _, raw := range puestos {
		puesto := raw.(map[string]any)
		if puesto["nombre"] == "Vendedor" {
			positionID = puesto["id"].(float64)
			sectorID = puesto["sector"].(map[string]any)["id"].(float64)
		}
	}
	if positionID == 0 {
		t.Fatal("seeded Vendedor position not found")
	}

	dni := 90000000 + int(time.Now().UnixNano()%1000000)
	employeePassword := "Empleado1"
	status, payload = doJSON(t, http.MethodPost, ts.URL+"/api/employees/", adminToken, map[string]any{
		"empleado": map[string]any{
			"nombre":            "María",
			"apellido":          "González",
			"dni":               dni,
			"correo":            fmt.Sprintf("maria%d@example.com", dni),
			"domicilio":         "Calle Falsa 123",
			"telefono":          "11 4444-5555",
			"fechaNacimiento":   "1990-05-10",
			"fechaContratacion": "2022-03-01",
			"puesto":            map[string]any{"id": positionID},
		},
		"contrasena": employeePassword,
	})
	if status != http.StatusCreated {
		t.Fatalf("create employee returned %d: %v", status, payload)
	}
	empleado := payload["empleado"].(map[string]any)
	employeeID := empleado["id"].(float64)

	employeeToken := login(t, ts.URL, dni, employeePassword)

	// attendance is once per day
	status, payload = doJSON(t, http.MethodPost, ts.URL+"/api/attendance/", employeeToken, nil)
	if status != http.StatusCreated {
		t.Fatalf("register attendance returned %d: %v", status, payload)
	}
	status, payload = doJSON(t, http.MethodPost, ts.URL+"/api/attendance/", employeeToken, nil)
	if status != http.StatusConflict {
		t.Fatalf("duplicate attendance returned %d: %v", status, payload)
	}
	if payload["mensaje"] != "Ya registraste tu asistencia hoy!" {
		t.Fatalf("unexpected duplicate message: %v", payload["mensaje"])
	}

	status, payload = doJSON(t, http.MethodPost, ts.URL+"/api/requests/", employeeToken, map[string]any{
		"tipoSolicitud": "VACACIONES",
		"duracionDias":  10,
		"motivo":        "Vacaciones familiares en la costa",
	})
	if status != http.StatusCreated {
		t.Fatalf("create request returned %d: %v", status, payload)
	}
	solicitud := payload["solicitud"].(map[string]any)
	requestID := solicitud["id"].(float64)
	if solicitud["estadoSolicitud"] != "PENDIENTE" {
		t.Fatalf("new request should be PENDIENTE, got %v", solicitud["estadoSolicitud"])
	}

	// promote the new hire to supervisor of their sector
	status, payload = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/supervisors/%.0f", ts.URL, sectorID), adminToken, map[string]any{
		"idsSupervisores": []float64{employeeID},
	})
	if status != http.StatusOK {
		t.Fatalf("assign supervisors returned %d: %v", status, payload)
	}

	supervisorToken := login(t, ts.URL, dni, employeePassword)

	status, payload = doJSON(t, http.MethodGet, ts.URL+"/api/requests/all", supervisorToken, nil)
	if status != http.StatusOK {
		t.Fatalf("list sector requests returned %d: %v", status, payload)
	}

	status, payload = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/requests/%.0f", ts.URL, requestID), supervisorToken, map[string]any{
		"estado": "ACEPTADO",
	})
	if status != http.StatusOK {
		t.Fatalf("decide request returned %d: %v", status, payload)
	}

	// terminal state is final
	status, payload = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/requests/%.0f", ts.URL, requestID), supervisorToken, map[string]any{
		"estado": "RECHAZADO",
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("re-deciding returned %d: %v", status, payload)
	}

	// settle the current period: one attendance day was registered above
	periodo := time.Now().Format("01/2006")
	status, payload = doJSON(t, http.MethodPost, ts.URL+"/api/salaries/payments", adminToken, map[string]any{
		"idEmpleado": employeeID,
		"periodo":    periodo,
	})
	if status != http.StatusCreated {
		t.Fatalf("settle salary returned %d: %v", status, payload)
	}
	pago := payload["pago"].(map[string]any)
	if pago["diasTrabajados"].(float64) < 1 {
		t.Fatalf("expected at least one worked day, got %v", pago["diasTrabajados"])
	}
	wantNet := pago["diasTrabajados"].(float64) * pago["horasMinimasTrabajoDiario"].(float64) * pago["valorHora"].(float64)
	if pago["sueldoNeto"].(float64) != wantNet {
		t.Fatalf("net salary %v does not match %v", pago["sueldoNeto"], wantNet)
	}

	// receipt renders as PDF
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/salaries/payments/%s/receipt", ts.URL, pago["id"]), nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("receipt request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("receipt returned %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("receipt content type %q", got)
	}

	// cost report covers the whole roster
	today := time.Now().Format("2006-01-02")
	status, payload = doJSON(t, http.MethodGet, ts.URL+"/api/reports/costs?desde="+today+"&hasta="+today, adminToken, nil)
	if status != http.StatusOK {
		t.Fatalf("cost report returned %d: %v", status, payload)
	}
	reporte := payload["reporte"].(map[string]any)
	if len(reporte["empleados"].([]any)) == 0 {
		t.Fatal("expected employee rows in the report")
	}
}

func TestEmployeeCannotManageEmployees(t *testing.T) {
	ts, cfg := startApp(t)

	adminToken := login(t, ts.URL, cfg.SeedAdminDNI, adminPassword)
	status, _ := doJSON(t, http.MethodGet, ts.URL+"/api/employees/", adminToken, nil)
	if status != http.StatusOK {
		t.Fatalf("admin list employees returned %d", status)
	}

	// no token at all
	status, payload := doJSON(t, http.MethodGet, ts.URL+"/api/employees/", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("anonymous list employees returned %d: %v", status, payload)
	}
}
