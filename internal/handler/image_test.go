package handler_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/msomdec/medical-image-vault/internal/service"
)

func TestHandleServe(t *testing.T) {
	app := newTestApp(t)
	app.seed(t, service.Upload{
		Data:         []byte("\x89PNG\r\n\x1a\nrest"),
		ContentType:  "image/png",
		OriginalName: "a.png",
		MedicalCase:  "c",
		Description:  "d",
	})

	records, err := app.images.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	resp, err := http.Get(app.srv.URL + "/files/" + records[0].Filename)
	if err != nil {
		t.Fatalf("GET file: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "\x89PNG\r\n\x1a\nrest" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestHandleServe_FallbackExtensionSniffed(t *testing.T) {
	app := newTestApp(t)
	app.seed(t, service.Upload{
		Data:         []byte("\xff\xd8\xff\xe0jpeg"),
		OriginalName: "scan.bin",
		MedicalCase:  "c",
		Description:  "d",
	})

	records, err := app.images.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	resp, err := http.Get(app.srv.URL + "/files/" + records[0].Filename)
	if err != nil {
		t.Fatalf("GET file: %v", err)
	}
	resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("expected sniffed image/jpeg, got %q", ct)
	}
}

func TestHandleServe_NotFound(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/files/missing.png", "/files/..%2Fapp.db"} {
		resp, err := http.Get(app.srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("GET %s: expected 404, got %d", path, resp.StatusCode)
		}
	}
}
