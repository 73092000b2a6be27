package handler_test

import (
	"encoding/json"
	"net/http"
	"slices"
	"testing"

	"github.com/msomdec/medical-image-vault/internal/handler"
	"github.com/msomdec/medical-image-vault/internal/service"
)

func getJSON(t *testing.T, rawURL string, v any) int {
	t.Helper()
	resp, err := http.Get(rawURL)
	if err != nil {
		t.Fatalf("GET %s: %v", rawURL, err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode
}

func TestAPIListImages(t *testing.T) {
	app := newTestApp(t)
	seedStrokeAndChest(t, app)

	var all struct {
		Images []handler.ImageDTO `json:"images"`
		Count  int                `json:"count"`
	}
	if status := getJSON(t, app.srv.URL+"/api/images", &all); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if all.Count != 2 || len(all.Images) != 2 {
		t.Fatalf("expected 2 images, got count=%d len=%d", all.Count, len(all.Images))
	}
	if all.Images[0].ID != 2 || all.Images[1].ID != 1 {
		t.Fatalf("expected newest first, got %d then %d", all.Images[0].ID, all.Images[1].ID)
	}
	first := all.Images[0]
	if first.URL != "/files/"+first.Filename {
		t.Fatalf("unexpected url %q", first.URL)
	}
	if !slices.Equal(first.Tags, []string{"Emergency", "X-ray"}) {
		t.Fatalf("unexpected tags %v", first.Tags)
	}

	var filtered struct {
		Images []handler.ImageDTO `json:"images"`
		Count  int                `json:"count"`
	}
	getJSON(t, app.srv.URL+"/api/images?tag=MRI&case=stroke", &filtered)
	if filtered.Count != 1 || filtered.Images[0].OriginalName != "a.jpg" {
		t.Fatalf("expected the stroke record only, got %+v", filtered)
	}
}

func TestAPIListImages_EmptyIsArray(t *testing.T) {
	app := newTestApp(t)

	var body map[string]json.RawMessage
	getJSON(t, app.srv.URL+"/api/images", &body)

	if string(body["images"]) != "[]" {
		t.Fatalf("expected empty array, got %s", body["images"])
	}
}

func TestAPICount(t *testing.T) {
	app := newTestApp(t)
	app.seed(t, service.Upload{OriginalName: "a.png", MedicalCase: "c", Description: "d"})

	var body struct {
		Count int `json:"count"`
	}
	getJSON(t, app.srv.URL+"/api/images/count", &body)
	if body.Count != 1 {
		t.Fatalf("expected 1, got %d", body.Count)
	}
}

func apiDelete(t *testing.T, app *testApp, path string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, app.srv.URL+path, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s: %v", path, err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, body
}

func TestAPIDelete(t *testing.T) {
	app := newTestApp(t)
	id := app.seed(t, service.Upload{OriginalName: "a.png", MedicalCase: "c", Description: "d"})

	status, body := apiDelete(t, app, "/api/images/1")
	if status != http.StatusOK || body["deleted"] != true {
		t.Fatalf("expected deleted=true, got %d %v", status, body)
	}

	status, body = apiDelete(t, app, "/api/images/1")
	if status != http.StatusOK || body["deleted"] != false {
		t.Fatalf("expected deleted=false for id %d, got %d %v", id, status, body)
	}

	status, body = apiDelete(t, app, "/api/images/nope")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["error"] == nil {
		t.Fatalf("expected an error message, got %v", body)
	}
}

func TestAPITags(t *testing.T) {
	app := newTestApp(t)

	var tags handler.TagsDTO
	getJSON(t, app.srv.URL+"/api/tags", &tags)

	if !slices.Equal(tags.Imaging, []string{"CT", "MRI", "Ultrasound", "X-ray"}) {
		t.Fatalf("unexpected imaging tags %v", tags.Imaging)
	}
	if len(tags.Other) != 6 || len(tags.All) != 10 {
		t.Fatalf("unexpected vocabulary sizes: other=%d all=%d", len(tags.Other), len(tags.All))
	}
}
