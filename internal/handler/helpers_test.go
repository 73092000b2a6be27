package handler_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"

	"github.com/msomdec/medical-image-vault/internal/handler"
	"github.com/msomdec/medical-image-vault/internal/service"
	"github.com/msomdec/medical-image-vault/internal/storage"
)

const testMaxUploadBytes = 1 << 20

type testApp struct {
	srv    *httptest.Server
	images *service.ImageService
	store  *storage.Storage
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	st, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "app_data"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	images := service.NewImageService(st.Images(), st.Files, st)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, images, st, testMaxUploadBytes)

	srv := httptest.NewServer(handler.Observe(handler.SecurityHeaders(mux)))
	t.Cleanup(srv.Close)

	return &testApp{srv: srv, images: images, store: st}
}

func (a *testApp) seed(t *testing.T, up service.Upload) int64 {
	t.Helper()
	if up.Data == nil {
		up.Data = []byte("seed")
	}
	id, err := a.images.Save(context.Background(), up)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	return id
}

type uploadFile struct {
	name        string
	contentType string
	data        []byte
}

// multipartBody builds an upload form. file may be nil to omit the image part.
func multipartBody(t *testing.T, fields map[string][]string, file *uploadFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, values := range fields {
		for _, v := range values {
			if err := mw.WriteField(key, v); err != nil {
				t.Fatalf("WriteField: %v", err)
			}
		}
	}

	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="`+file.name+`"`)
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("CreatePart: %v", err)
		}
		if _, err := part.Write(file.data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}
