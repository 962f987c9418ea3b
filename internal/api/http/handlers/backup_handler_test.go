package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArchiveEchoApp() *fiber.App {
	app := fiber.New()
	app.Post("/restore/", func(c *fiber.Ctx) error {
		data, err := restoreArchiveBytes(c)
		if err != nil {
			return err
		}
		return c.Send(data)
	})
	return app
}

func TestRestoreArchiveBytesMultipartUpload(t *testing.T) {
	payload := []byte("PK\x03\x04archive-bytes")

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "backup.zip")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest("POST", "/restore/", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := newArchiveEchoApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestRestoreArchiveBytesRawBodyFallback(t *testing.T) {
	payload := []byte("PK\x03\x04raw-body")

	req := httptest.NewRequest("POST", "/restore/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/zip")

	resp, err := newArchiveEchoApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
