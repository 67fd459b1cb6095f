package controller

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"ai-litepaper-be/internal/dto"
	"ai-litepaper-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLitepaperService records the format passed to Download and returns a
// canned result.
type stubLitepaperService struct {
	downloadFormat string
	downloadResult *dto.DownloadResult
	downloadErr    error
}

func (s *stubLitepaperService) Generate(ctx context.Context, req *dto.CreateLitepaperRequest) (*dto.GenerateLitepaperResponse, error) {
	return nil, nil
}

func (s *stubLitepaperService) Create(ctx context.Context, req *dto.CreateLitepaperRequest) (*dto.LitepaperResponse, error) {
	return nil, nil
}

func (s *stubLitepaperService) GetRecent(ctx context.Context) ([]*dto.LitepaperResponse, error) {
	return nil, nil
}

func (s *stubLitepaperService) Download(ctx context.Context, id uuid.UUID, format string) (*dto.DownloadResult, error) {
	s.downloadFormat = format
	return s.downloadResult, s.downloadErr
}

func (s *stubLitepaperService) GenerateFromEntity(ctx context.Context, litepaper *entity.Litepaper, source string) (*dto.LitepaperResponse, *dto.DocumentsResponse, error) {
	return nil, nil, nil
}

func newDownloadApp(stub *stubLitepaperService) *fiber.App {
	app := fiber.New()
	NewLitepaperController(stub).RegisterRoutes(app.Group("/api"))
	return app
}

func TestDownloadFormatQuery(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		expectedFormat string
	}{
		{"defaults to pdf", "/api/litepapers/%s/download", "pdf"},
		{"explicit markdown", "/api/litepapers/%s/download?format=markdown", "markdown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubLitepaperService{
				downloadResult: &dto.DownloadResult{
					FileName:    "Aurora-litepaper.pdf",
					ContentType: "application/pdf",
					Data:        []byte("%PDF-fake"),
				},
			}
			app := newDownloadApp(stub)

			req := httptest.NewRequest("GET", fmt.Sprintf(tt.url, uuid.New()), nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.expectedFormat, stub.downloadFormat)
		})
	}
}

func TestDownloadInvalidId(t *testing.T) {
	stub := &stubLitepaperService{}
	app := newDownloadApp(stub)

	req := httptest.NewRequest("GET", "/api/litepapers/not-a-uuid/download", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, stub.downloadFormat, "service must not be called for an invalid id")
}
