package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/neocodez/portfolio/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	validator := utils.NewFileValidator([]string{".png", ".jpg"}, []string{"image/png", "image/jpeg"}, 1)
	store := newMemStore()

	r := newTestRouter()
	r.POST("/upload", UploadImage(store, validator))

	send := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := send(multipartRequest(t, "image", "logo.png", pngHeader))
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "File uploaded successfully", body["message"])
	filename, _ := body["filename"].(string)
	assert.True(t, strings.HasPrefix(filename, "uploads/"))
	assert.True(t, strings.HasSuffix(filename, ".png"))
	assert.Equal(t, "https://cdn.test/"+filename, body["path"])
	assert.Equal(t, pngHeader, store.objects[filename])

	w = send(multipartRequest(t, "", "", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Please upload a file"}`, w.Body.String())

	w = send(multipartRequest(t, "image", "notes.txt", []byte("hello")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send(multipartRequest(t, "image", "fake.png", []byte("plain text, not an image")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, store.objects, 1)
}

func TestUploadImage_Disabled(t *testing.T) {
	r := newTestRouter()
	r.POST("/upload", UploadImage(nil, utils.NewFileValidator(nil, nil, 1)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "image", "logo.png", pngHeader))
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}
