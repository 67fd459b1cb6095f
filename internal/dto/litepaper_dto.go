package dto

import (
	"time"

	"github.com/google/uuid"
)

type FeatureRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CreateLitepaperRequest is the form-submission payload. Field names follow
// the client wire format. Validation runs before any completion call or
// storage write; see serverutils.ValidateRequest.
type CreateLitepaperRequest struct {
	ProjectName       string             `json:"projectName" validate:"required"`
	TokenSymbol       string             `json:"tokenSymbol" validate:"required"`
	Description       string             `json:"description" validate:"required,min=10"`
	ProblemStatement  string             `json:"problemStatement" validate:"required,min=10"`
	TargetMarket      string             `json:"targetMarket" validate:"omitempty,oneof=defi nft infrastructure payments privacy other"`
	MarketSize        string             `json:"marketSize"`
	TotalSupply       string             `json:"totalSupply" validate:"required"`
	InitialPrice      *float64           `json:"initialPrice"`
	VestingPeriod     *int               `json:"vestingPeriod"`
	TokenDistribution map[string]float64 `json:"tokenDistribution" validate:"required,dist_total"`
	Features          []FeatureRequest   `json:"features" validate:"required,min=1,dive"`
	LogoUrl           string             `json:"logoUrl"`
	OutputFormat      string             `json:"outputFormat" validate:"required,oneof=pdf html markdown"`
	ContentStyle      string             `json:"contentStyle"`
	DocumentLength    string             `json:"documentLength"`
	IncludeCharts     string             `json:"includeCharts"`
}

type GeneratedContentResponse struct {
	ExecutiveSummary  string `json:"executiveSummary"`
	ProblemStatement  string `json:"problemStatement"`
	MarketAnalysis    string `json:"marketAnalysis"`
	Solution          string `json:"solution"`
	ProductFeatures   string `json:"productFeatures"`
	TokenDistribution string `json:"tokenDistribution"`
	TokenomicsUtility string `json:"tokenomicsUtility"`
	EmissionSchedule  string `json:"emissionSchedule"`
	TokenFlow         string `json:"tokenFlow"`
	ValueGrowth       string `json:"valueGrowth"`
}

type LitepaperResponse struct {
	Id                uuid.UUID                 `json:"id"`
	ProjectName       string                    `json:"projectName"`
	TokenSymbol       string                    `json:"tokenSymbol"`
	Description       string                    `json:"description"`
	ProblemStatement  string                    `json:"problemStatement"`
	TargetMarket      string                    `json:"targetMarket,omitempty"`
	MarketSize        string                    `json:"marketSize,omitempty"`
	TotalSupply       string                    `json:"totalSupply"`
	InitialPrice      *float64                  `json:"initialPrice,omitempty"`
	VestingPeriod     *int                      `json:"vestingPeriod,omitempty"`
	TokenDistribution map[string]float64        `json:"tokenDistribution"`
	Features          []FeatureRequest          `json:"features"`
	LogoUrl           string                    `json:"logoUrl,omitempty"`
	OutputFormat      string                    `json:"outputFormat"`
	ContentStyle      string                    `json:"contentStyle"`
	DocumentLength    string                    `json:"documentLength"`
	IncludeCharts     string                    `json:"includeCharts"`
	GeneratedContent  *GeneratedContentResponse `json:"generatedContent,omitempty"`
	Status            string                    `json:"status"`
	CreatedAt         time.Time                 `json:"createdAt"`
	UpdatedAt         time.Time                 `json:"updatedAt"`
}

// DocumentsResponse carries the rendered outputs of one generation request.
// Pdf holds the document base64-encoded, or nil when the rendering engine was
// unavailable; callers degrade gracefully instead of failing the request.
type DocumentsResponse struct {
	Pdf      *string `json:"pdf"`
	Html     string  `json:"html"`
	Markdown string  `json:"markdown"`
}

type GenerateLitepaperResponse struct {
	Litepaper *LitepaperResponse `json:"litepaper"`
	Documents *DocumentsResponse `json:"documents"`
	Message   string             `json:"message"`
}

// DownloadResult is the service-level payload for a single-format download.
type DownloadResult struct {
	FileName    string
	ContentType string
	Data        []byte
}
