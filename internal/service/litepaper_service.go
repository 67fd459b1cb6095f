package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"ai-litepaper-be/internal/constant"
	"ai-litepaper-be/internal/dto"
	"ai-litepaper-be/internal/entity"
	"ai-litepaper-be/internal/pkg/logger"
	"ai-litepaper-be/internal/repository/contract"
	"ai-litepaper-be/pkg/document"
	"ai-litepaper-be/pkg/events"
	"ai-litepaper-be/pkg/synthesis"

	"github.com/google/uuid"
)

var ErrLitepaperNotFound = errors.New("litepaper not found")

const recentLimit = 5

type ILitepaperService interface {
	// Generate validates, synthesizes content, persists the record and
	// renders every output format in one pass.
	Generate(ctx context.Context, req *dto.CreateLitepaperRequest) (*dto.GenerateLitepaperResponse, error)

	// Create synthesizes and persists a litepaper without rendering documents.
	Create(ctx context.Context, req *dto.CreateLitepaperRequest) (*dto.LitepaperResponse, error)

	// GetRecent lists the newest persisted litepapers.
	GetRecent(ctx context.Context) ([]*dto.LitepaperResponse, error)

	// Download renders one stored litepaper in the requested format.
	Download(ctx context.Context, id uuid.UUID, format string) (*dto.DownloadResult, error)

	// GenerateFromEntity runs the synthesize-persist-render pipeline for a
	// record assembled outside the form flow (chat intake).
	GenerateFromEntity(ctx context.Context, litepaper *entity.Litepaper, source string) (*dto.LitepaperResponse, *dto.DocumentsResponse, error)
}

type litepaperService struct {
	repository contract.LitepaperRepository
	generator  *synthesis.Generator
	renderer   *document.Renderer
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewLitepaperService(
	repository contract.LitepaperRepository,
	generator *synthesis.Generator,
	renderer *document.Renderer,
	publisher IPublisherService,
	log logger.ILogger,
) ILitepaperService {
	return &litepaperService{
		repository: repository,
		generator:  generator,
		renderer:   renderer,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *litepaperService) Generate(ctx context.Context, req *dto.CreateLitepaperRequest) (*dto.GenerateLitepaperResponse, error) {
	lp := entityFromRequest(req)

	res, documents, err := s.GenerateFromEntity(ctx, lp, constant.GenerationSourceForm)
	if err != nil {
		return nil, err
	}

	return &dto.GenerateLitepaperResponse{
		Litepaper: res,
		Documents: documents,
		Message:   "Litepaper generated successfully",
	}, nil
}

func (s *litepaperService) Create(ctx context.Context, req *dto.CreateLitepaperRequest) (*dto.LitepaperResponse, error) {
	lp := entityFromRequest(req)

	if err := s.synthesizeAndPersist(ctx, lp, constant.GenerationSourceForm); err != nil {
		return nil, err
	}
	return toLitepaperResponse(lp), nil
}

func (s *litepaperService) GetRecent(ctx context.Context) ([]*dto.LitepaperResponse, error) {
	records, err := s.repository.FindRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.LitepaperResponse, 0, len(records))
	for _, lp := range records {
		results = append(results, toLitepaperResponse(lp))
	}
	return results, nil
}

func (s *litepaperService) Download(ctx context.Context, id uuid.UUID, format string) (*dto.DownloadResult, error) {
	lp, err := s.repository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if lp == nil {
		return nil, ErrLitepaperNotFound
	}

	data, err := s.renderer.Render(ctx, lp, format)
	if err != nil {
		return nil, err
	}

	return &dto.DownloadResult{
		FileName:    fmt.Sprintf("%s-litepaper.%s", lp.ProjectName, document.FileExtension(format)),
		ContentType: document.ContentType(format),
		Data:        data,
	}, nil
}

func (s *litepaperService) GenerateFromEntity(ctx context.Context, lp *entity.Litepaper, source string) (*dto.LitepaperResponse, *dto.DocumentsResponse, error) {
	if err := s.synthesizeAndPersist(ctx, lp, source); err != nil {
		return nil, nil, err
	}

	documents, err := s.renderDocuments(ctx, lp)
	if err != nil {
		return nil, nil, err
	}

	return toLitepaperResponse(lp), documents, nil
}

func (s *litepaperService) synthesizeAndPersist(ctx context.Context, lp *entity.Litepaper, source string) error {
	content, err := s.generator.Generate(ctx, lp)
	if err != nil {
		s.logger.Error("litepaper", "Content synthesis failed", map[string]interface{}{
			"project": lp.ProjectName,
			"error":   err.Error(),
		})
		return err
	}

	now := time.Now()
	lp.GeneratedContent = content
	lp.Status = constant.LitepaperStatusCompleted
	lp.CreatedAt = now
	lp.UpdatedAt = now

	if err := s.repository.Create(ctx, lp); err != nil {
		return err
	}

	s.logger.Info("litepaper", "Litepaper persisted", map[string]interface{}{
		"id":      lp.Id.String(),
		"project": lp.ProjectName,
		"source":  source,
	})

	s.publishGenerated(ctx, lp, source)
	return nil
}

// renderDocuments produces all formats eagerly. PDF rendering needs a
// headless browser and may fail on constrained hosts; the bundle ships with a
// nil pdf instead of failing the whole request.
func (s *litepaperService) renderDocuments(ctx context.Context, lp *entity.Litepaper) (*dto.DocumentsResponse, error) {
	markdown, err := s.renderer.Render(ctx, lp, constant.OutputFormatMarkdown)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(ctx, lp, constant.OutputFormatHtml)
	if err != nil {
		return nil, err
	}

	documents := &dto.DocumentsResponse{
		Markdown: string(markdown),
		Html:     string(html),
	}

	pdf, err := s.renderer.Render(ctx, lp, constant.OutputFormatPdf)
	if err != nil {
		s.logger.Warn("litepaper", "PDF rendering failed, continuing without it", map[string]interface{}{
			"id":    lp.Id.String(),
			"error": err.Error(),
		})
	} else {
		// PDF bytes are not valid UTF-8, so they travel base64-encoded
		// inside the JSON response.
		encoded := base64.StdEncoding.EncodeToString(pdf)
		documents.Pdf = &encoded
	}

	return documents, nil
}

func (s *litepaperService) publishGenerated(ctx context.Context, lp *entity.Litepaper, source string) {
	payload, err := events.Marshal(events.NewLitepaperGenerated(lp.Id.String(), lp.ProjectName, source))
	if err != nil {
		s.logger.Error("litepaper", "Failed to marshal generation event", map[string]interface{}{
			"id":    lp.Id.String(),
			"error": err.Error(),
		})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Error("litepaper", "Failed to publish generation event", map[string]interface{}{
			"id":    lp.Id.String(),
			"error": err.Error(),
		})
	}
}

func entityFromRequest(req *dto.CreateLitepaperRequest) *entity.Litepaper {
	features := make([]entity.Feature, 0, len(req.Features))
	for _, f := range req.Features {
		features = append(features, entity.Feature{
			Name:        f.Name,
			Description: f.Description,
		})
	}

	lp := &entity.Litepaper{
		Id:                uuid.New(),
		ProjectName:       req.ProjectName,
		TokenSymbol:       req.TokenSymbol,
		Description:       req.Description,
		ProblemStatement:  req.ProblemStatement,
		TargetMarket:      req.TargetMarket,
		MarketSize:        req.MarketSize,
		TotalSupply:       req.TotalSupply,
		InitialPrice:      req.InitialPrice,
		VestingPeriod:     req.VestingPeriod,
		TokenDistribution: req.TokenDistribution,
		Features:          features,
		LogoUrl:           req.LogoUrl,
		OutputFormat:      req.OutputFormat,
		ContentStyle:      req.ContentStyle,
		DocumentLength:    req.DocumentLength,
		IncludeCharts:     req.IncludeCharts,
		Status:            constant.LitepaperStatusPending,
	}
	applyDefaults(lp)
	return lp
}

func applyDefaults(lp *entity.Litepaper) {
	if lp.OutputFormat == "" {
		lp.OutputFormat = constant.OutputFormatPdf
	}
	if lp.ContentStyle == "" {
		lp.ContentStyle = constant.DefaultContentStyle
	}
	if lp.DocumentLength == "" {
		lp.DocumentLength = constant.DefaultDocumentLength
	}
	if lp.IncludeCharts == "" {
		lp.IncludeCharts = constant.DefaultIncludeCharts
	}
}

func toLitepaperResponse(lp *entity.Litepaper) *dto.LitepaperResponse {
	features := make([]dto.FeatureRequest, 0, len(lp.Features))
	for _, f := range lp.Features {
		features = append(features, dto.FeatureRequest{
			Name:        f.Name,
			Description: f.Description,
		})
	}

	var content *dto.GeneratedContentResponse
	if lp.GeneratedContent != nil {
		content = &dto.GeneratedContentResponse{
			ExecutiveSummary:  lp.GeneratedContent.ExecutiveSummary,
			ProblemStatement:  lp.GeneratedContent.ProblemStatement,
			MarketAnalysis:    lp.GeneratedContent.MarketAnalysis,
			Solution:          lp.GeneratedContent.Solution,
			ProductFeatures:   lp.GeneratedContent.ProductFeatures,
			TokenDistribution: lp.GeneratedContent.TokenDistribution,
			TokenomicsUtility: lp.GeneratedContent.TokenomicsUtility,
			EmissionSchedule:  lp.GeneratedContent.EmissionSchedule,
			TokenFlow:         lp.GeneratedContent.TokenFlow,
			ValueGrowth:       lp.GeneratedContent.ValueGrowth,
		}
	}

	return &dto.LitepaperResponse{
		Id:                lp.Id,
		ProjectName:       lp.ProjectName,
		TokenSymbol:       lp.TokenSymbol,
		Description:       lp.Description,
		ProblemStatement:  lp.ProblemStatement,
		TargetMarket:      lp.TargetMarket,
		MarketSize:        lp.MarketSize,
		TotalSupply:       lp.TotalSupply,
		InitialPrice:      lp.InitialPrice,
		VestingPeriod:     lp.VestingPeriod,
		TokenDistribution: lp.TokenDistribution,
		Features:          features,
		LogoUrl:           lp.LogoUrl,
		OutputFormat:      lp.OutputFormat,
		ContentStyle:      lp.ContentStyle,
		DocumentLength:    lp.DocumentLength,
		IncludeCharts:     lp.IncludeCharts,
		GeneratedContent:  content,
		Status:            lp.Status,
		CreatedAt:         lp.CreatedAt,
		UpdatedAt:         lp.UpdatedAt,
	}
}
