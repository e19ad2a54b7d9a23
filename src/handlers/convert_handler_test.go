package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/username/tallybridge/src/config"
	"github.com/username/tallybridge/src/logger"
	"github.com/username/tallybridge/src/security"
	"github.com/username/tallybridge/src/services"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func newTestConvertHandler() *ConvertHandler {
	tokens := security.NewTokenService("a-test-only-secret-that-is-32-bytes!", time.Minute)
	svc := services.NewUploadService(cache.New(time.Minute, time.Minute), tokens)
	return NewConvertHandler(svc, tokens)
}

func multipartRequest(t *testing.T, sellerState string, files map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if sellerState != "" {
		if err := writer.WriteField("seller_state", sellerState); err != nil {
			t.Fatalf("WriteField failed: %v", err)
		}
	}
	for name, content := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		header.Set("Content-Type", "text/csv")
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("CreatePart failed: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("part write failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("writer close failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/convert", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandleConvertAndDownload(t *testing.T) {
	handler := newTestConvertHandler()

	req := multipartRequest(t, "Goa", map[string]string{
		"amazon_jan.csv": "invoice-id,ship-state,taxable-value,tax-amount\nA1,Goa,100,18\n",
	})
	rec := httptest.NewRecorder()
	handler.HandleConvert(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("convert status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var summary services.BatchSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if summary.RowCount != 1 || summary.DownloadToken == "" {
		t.Fatalf("summary = %+v", summary)
	}

	downloadReq := httptest.NewRequest(http.MethodGet, "/api/download?token="+summary.DownloadToken, nil)
	downloadRec := httptest.NewRecorder()
	handler.HandleDownload(downloadRec, downloadReq)

	if downloadRec.Code != http.StatusOK {
		t.Fatalf("download status = %d, body = %s", downloadRec.Code, downloadRec.Body.String())
	}
	if ct := downloadRec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %q", ct)
	}
	if downloadRec.Body.Len() == 0 {
		t.Error("download body must not be empty")
	}
}

func TestHandleConvertMissingSellerState(t *testing.T) {
	handler := newTestConvertHandler()

	// No seller_state field and no SELLER_STATE default configured.
	prev := config.Cfg.SellerState
	config.Cfg.SellerState = ""
	defer func() { config.Cfg.SellerState = prev }()

	req := multipartRequest(t, "", map[string]string{
		"amazon.csv": "invoice-id\nA1\n",
	})
	rec := httptest.NewRecorder()
	handler.HandleConvert(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleConvertNoFiles(t *testing.T) {
	handler := newTestConvertHandler()

	req := multipartRequest(t, "Goa", nil)
	rec := httptest.NewRecorder()
	handler.HandleConvert(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleConvertRejectsBadExtension(t *testing.T) {
	handler := newTestConvertHandler()

	req := multipartRequest(t, "Goa", map[string]string{
		"report.pdf": "%PDF-1.4",
	})
	rec := httptest.NewRecorder()
	handler.HandleConvert(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleDownloadBadToken(t *testing.T) {
	handler := newTestConvertHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/download?token=garbage", nil)
	rec := httptest.NewRecorder()
	handler.HandleDownload(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
