package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Litepaper struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectName       string         `gorm:"type:text;not null"`
	TokenSymbol       string         `gorm:"type:text;not null"`
	Description       string         `gorm:"type:text;not null"`
	ProblemStatement  string         `gorm:"type:text;not null"`
	TargetMarket      string         `gorm:"type:text"`
	MarketSize        string         `gorm:"type:text"`
	TotalSupply       string         `gorm:"type:text;not null"`
	InitialPrice      *float64       `gorm:"type:numeric"`
	VestingPeriod     *int           `gorm:"type:integer"`
	TokenDistribution datatypes.JSON `gorm:"type:jsonb;not null"`
	Features          datatypes.JSON `gorm:"type:jsonb;not null"`
	LogoUrl           string         `gorm:"type:text"`
	OutputFormat      string         `gorm:"type:text;not null"`
	ContentStyle      string         `gorm:"type:text"`
	DocumentLength    string         `gorm:"type:text"`
	IncludeCharts     string         `gorm:"type:text"`
	GeneratedContent  datatypes.JSON `gorm:"type:jsonb"`
	Status            string         `gorm:"type:text;not null;index"`
	CreatedAt         time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (Litepaper) TableName() string {
	return "litepapers"
}
