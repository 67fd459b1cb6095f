package mapper

import (
	"testing"
	"time"

	"ai-litepaper-be/internal/entity"

	"github.com/google/uuid"
)

func TestLitepaperRoundTrip(t *testing.T) {
	m := NewLitepaperMapper()

	price := 0.05
	vesting := 24
	original := &entity.Litepaper{
		Id:               uuid.New(),
		ProjectName:      "Aurora",
		TokenSymbol:      "AUR",
		Description:      "Decentralized compute",
		ProblemStatement: "Centralized GPU supply",
		TotalSupply:      "1000000000",
		InitialPrice:     &price,
		VestingPeriod:    &vesting,
		TokenDistribution: map[string]float64{
			"team":       20,
			"publicSale": 80,
		},
		Features: []entity.Feature{
			{Name: "Compute Market", Description: "GPU rental"},
		},
		GeneratedContent: &entity.LitepaperContent{
			ExecutiveSummary: "summary",
			ValueGrowth:      "growth",
		},
		OutputFormat: "pdf",
		Status:       "completed",
		CreatedAt:    time.Now().Truncate(time.Second),
	}

	model, err := m.ToModel(original)
	if err != nil {
		t.Fatalf("ToModel() error: %v", err)
	}

	restored, err := m.ToEntity(model)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}

	if restored.Id != original.Id || restored.ProjectName != original.ProjectName {
		t.Errorf("identity fields lost: %+v", restored)
	}
	if restored.TokenDistribution["publicSale"] != 80 {
		t.Errorf("distribution lost: %v", restored.TokenDistribution)
	}
	if len(restored.Features) != 1 || restored.Features[0].Name != "Compute Market" {
		t.Errorf("features lost: %v", restored.Features)
	}
	if restored.GeneratedContent == nil || restored.GeneratedContent.ValueGrowth != "growth" {
		t.Errorf("generated content lost: %+v", restored.GeneratedContent)
	}
	if restored.InitialPrice == nil || *restored.InitialPrice != price {
		t.Errorf("initial price lost")
	}
}

func TestLitepaperWithoutContent(t *testing.T) {
	m := NewLitepaperMapper()

	model, err := m.ToModel(&entity.Litepaper{
		Id:                uuid.New(),
		ProjectName:       "Aurora",
		TokenDistribution: map[string]float64{"team": 100},
		Status:            "pending",
	})
	if err != nil {
		t.Fatalf("ToModel() error: %v", err)
	}

	restored, err := m.ToEntity(model)
	if err != nil {
		t.Fatalf("ToEntity() error: %v", err)
	}
	if restored.GeneratedContent != nil {
		t.Error("unset content should stay nil through the round trip")
	}
}
