package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"vendordash/internal/api/v1"
	"vendordash/internal/config"
)

const vendorsCSV = "Vendor Code,Vendor Name,Name,Phone Number,Email,Area,City,State,Category,Cuisine type 1,Cuisine Type 2,Service Model,Serving Capacity\n" +
	"V001,Pizza Palace,Ann,5551234,ann@example.com,Downtown,Springfield,IL,Restaurant,Italian,,Dine-in,500\n" +
	"V002,Taco Town,Bob,5559876,bob@example.com,,Shelbyville,IL,Food Truck,Mexican,Tex-Mex,Takeaway,5000\n"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.DefaultConfig()
	cfg.Server.DevMode = true
	s, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return s
}

func postFile(t *testing.T, s *Server, name string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = fw.Write(data)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == v1.SessionCookie {
			return ck
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}

func getPage(s *Server, path string, ck *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if ck != nil {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestDashboard_NoUploadShowsPrompt(t *testing.T) {
	s := newTestServer(t)

	w := getPage(s, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Upload a CSV or Excel file from the sidebar") {
		t.Fatalf("upload prompt missing: %s", body)
	}
	if strings.Contains(body, "Filters") {
		t.Fatalf("filters should not render before upload")
	}
}

func TestDashboard_UploadThenBasicAndAdvanced(t *testing.T) {
	s := newTestServer(t)

	w := postFile(t, s, "vendors.csv", []byte(vendorsCSV))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	ck := sessionCookie(t, w)

	body := getPage(s, "/", ck).Body.String()
	if !strings.Contains(body, "Select a specific vendor from the sidebar to see details.") {
		t.Fatalf("basic prompt missing: %s", body)
	}

	body = getPage(s, "/?vendor=Pizza+Palace", ck).Body.String()
	for _, want := range []string{"V001 · Pizza Palace", "Primary location", "Downtown, Springfield, IL", "Owner details", "Italian", "ann@example.com"} {
		if !strings.Contains(body, want) {
			t.Fatalf("basic view missing %q", want)
		}
	}

	body = getPage(s, "/?vendor=Ghost", ck).Body.String()
	if !strings.Contains(body, "No data found for the selected vendor.") {
		t.Fatalf("not-found warning missing")
	}

	body = getPage(s, "/?advanced=true&q=taco", ck).Body.String()
	if !strings.Contains(body, "Showing 1 vendor(s) matching the filters.") {
		t.Fatalf("advanced summary missing: %s", body)
	}
	if !strings.Contains(body, "V002 · Taco Town") || strings.Contains(body, "V001 · Pizza Palace</summary>") {
		t.Fatalf("advanced cards wrong: %s", body)
	}
	if !strings.Contains(body, "Mexican / Tex-Mex") {
		t.Fatalf("cuisine text missing")
	}

	body = getPage(s, "/?advanced=true&q=taco&capacity=500", ck).Body.String()
	if !strings.Contains(body, "No vendors match the current search and serving capacity filter.") {
		t.Fatalf("empty message missing")
	}
	if strings.Contains(body, "<details") {
		t.Fatalf("no cards expected")
	}
}

func TestUpload_FailureHaltsDashboard(t *testing.T) {
	s := newTestServer(t)

	w := postFile(t, s, "vendors.xls", []byte{0xD0, 0xCF, 0x11, 0xE0})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "save the workbook as .xlsx") {
		t.Fatalf("remedy missing: %s", body)
	}
	if strings.Contains(body, "Filters") || strings.Contains(body, "Vendor overview") {
		t.Fatalf("no partial dashboard expected")
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	if w := getPage(s, "/healthz", nil); w.Code != http.StatusOK {
		t.Fatalf("healthz status: %d", w.Code)
	}
	if w := getPage(s, "/static/app.css", nil); w.Code != http.StatusOK {
		t.Fatalf("static status: %d", w.Code)
	}
}
