package service

import (
	"context"

	"ai-litepaper-be/internal/constant"
	"ai-litepaper-be/internal/dto"
	"ai-litepaper-be/internal/entity"
	"ai-litepaper-be/internal/pkg/logger"
	"ai-litepaper-be/pkg/intake"
	"ai-litepaper-be/pkg/llm"

	"github.com/google/uuid"
)

type IChatbotService interface {
	// Chat runs one turn of the intake conversation. When the turn triggers
	// extraction and the model infers a complete project, the reply carries a
	// reference to the freshly generated litepaper.
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatbotService struct {
	policy    intake.TriggerPolicy
	extractor *intake.Extractor
	litepaper ILitepaperService
	logger    logger.ILogger
}

func NewChatbotService(
	policy intake.TriggerPolicy,
	extractor *intake.Extractor,
	litepaper ILitepaperService,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		policy:    policy,
		extractor: extractor,
		litepaper: litepaper,
		logger:    log,
	}
}

func (s *chatbotService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	history := toHistory(req.ConversationHistory)

	if !s.policy.ShouldExtract(req.Message, len(history)) {
		reply, err := s.extractor.Gather(ctx, req.Message, history)
		if err != nil {
			return nil, err
		}
		return &dto.ChatResponse{Response: reply}, nil
	}

	result, err := s.extractor.Extract(ctx, req.Message, history)
	if err != nil {
		return nil, err
	}

	if !result.Extracted() {
		// The model decided the conversation lacks enough detail; its reply
		// asks follow-up questions.
		return &dto.ChatResponse{Response: result.Response}, nil
	}

	lp := entityFromExtraction(result.Project)
	res, documents, err := s.litepaper.GenerateFromEntity(ctx, lp, constant.GenerationSourceChat)
	if err != nil {
		return nil, err
	}

	s.logger.Info("chatbot", "Litepaper generated from conversation", map[string]interface{}{
		"id":      res.Id.String(),
		"project": res.ProjectName,
	})

	return &dto.ChatResponse{
		Response: result.Response,
		Litepaper: &dto.ChatLitepaperRef{
			Id:          res.Id,
			ProjectName: res.ProjectName,
			Documents:   documents,
		},
	}, nil
}

func toHistory(messages []dto.ChatMessageDTO) []llm.Message {
	history := make([]llm.Message, 0, len(messages))
	for _, m := range messages {
		history = append(history, llm.Message{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return history
}

// entityFromExtraction builds a record from model-inferred fields. Extracted
// records bypass form validation: the extraction prompt already instructs the
// model to supply sensible values, and missing optional fields fall back to
// the same defaults as the form flow.
func entityFromExtraction(project *intake.ExtractedProject) *entity.Litepaper {
	features := make([]entity.Feature, 0, len(project.Features))
	for _, f := range project.Features {
		if f.Name == "" || f.Description == "" {
			continue
		}
		features = append(features, entity.Feature{
			Name:        f.Name,
			Description: f.Description,
		})
	}

	lp := &entity.Litepaper{
		Id:                uuid.New(),
		ProjectName:       project.ProjectName,
		TokenSymbol:       project.TokenSymbol,
		Description:       project.Description,
		ProblemStatement:  project.ProblemStatement,
		TargetMarket:      project.TargetMarket,
		MarketSize:        project.MarketSize,
		TotalSupply:       project.TotalSupply,
		TokenDistribution: project.TokenDistribution,
		Features:          features,
		OutputFormat:      project.OutputFormat,
		Status:            constant.LitepaperStatusPending,
	}
	applyDefaults(lp)
	return lp
}
