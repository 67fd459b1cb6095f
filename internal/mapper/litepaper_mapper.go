package mapper

import (
	"encoding/json"

	"ai-litepaper-be/internal/entity"
	"ai-litepaper-be/internal/model"
)

type LitepaperMapper struct{}

func NewLitepaperMapper() *LitepaperMapper {
	return &LitepaperMapper{}
}

func (m *LitepaperMapper) ToEntity(p *model.Litepaper) (*entity.Litepaper, error) {
	if p == nil {
		return nil, nil
	}

	var distribution map[string]float64
	if len(p.TokenDistribution) > 0 {
		if err := json.Unmarshal(p.TokenDistribution, &distribution); err != nil {
			return nil, err
		}
	}

	var features []entity.Feature
	if len(p.Features) > 0 {
		if err := json.Unmarshal(p.Features, &features); err != nil {
			return nil, err
		}
	}

	var content *entity.LitepaperContent
	if len(p.GeneratedContent) > 0 {
		content = &entity.LitepaperContent{}
		if err := json.Unmarshal(p.GeneratedContent, content); err != nil {
			return nil, err
		}
	}

	return &entity.Litepaper{
		Id:                p.Id,
		ProjectName:       p.ProjectName,
		TokenSymbol:       p.TokenSymbol,
		Description:       p.Description,
		ProblemStatement:  p.ProblemStatement,
		TargetMarket:      p.TargetMarket,
		MarketSize:        p.MarketSize,
		TotalSupply:       p.TotalSupply,
		InitialPrice:      p.InitialPrice,
		VestingPeriod:     p.VestingPeriod,
		TokenDistribution: distribution,
		Features:          features,
		LogoUrl:           p.LogoUrl,
		OutputFormat:      p.OutputFormat,
		ContentStyle:      p.ContentStyle,
		DocumentLength:    p.DocumentLength,
		IncludeCharts:     p.IncludeCharts,
		GeneratedContent:  content,
		Status:            p.Status,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}, nil
}

func (m *LitepaperMapper) ToModel(p *entity.Litepaper) (*model.Litepaper, error) {
	if p == nil {
		return nil, nil
	}

	distribution, err := json.Marshal(p.TokenDistribution)
	if err != nil {
		return nil, err
	}

	features, err := json.Marshal(p.Features)
	if err != nil {
		return nil, err
	}

	var content []byte
	if p.GeneratedContent != nil {
		content, err = json.Marshal(p.GeneratedContent)
		if err != nil {
			return nil, err
		}
	}

	return &model.Litepaper{
		Id:                p.Id,
		ProjectName:       p.ProjectName,
		TokenSymbol:       p.TokenSymbol,
		Description:       p.Description,
		ProblemStatement:  p.ProblemStatement,
		TargetMarket:      p.TargetMarket,
		MarketSize:        p.MarketSize,
		TotalSupply:       p.TotalSupply,
		InitialPrice:      p.InitialPrice,
		VestingPeriod:     p.VestingPeriod,
		TokenDistribution: distribution,
		Features:          features,
		LogoUrl:           p.LogoUrl,
		OutputFormat:      p.OutputFormat,
		ContentStyle:      p.ContentStyle,
		DocumentLength:    p.DocumentLength,
		IncludeCharts:     p.IncludeCharts,
		GeneratedContent:  content,
		Status:            p.Status,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}, nil
}
