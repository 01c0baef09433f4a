package models

// Requests for the analysis HTTP endpoints.

type AnalysisRequest struct {
	Address   string `param:"address" json:"address" validate:"required,max=64"`
	BatchSize int    `query:"batch_size" json:"batch_size" default:"50" validate:"gte=1,lte=200"`
}

type AddressRequest struct {
	Address string `param:"address" json:"address" validate:"required,max=64"`
}

type TokenListRequest struct {
	Address string `param:"address" json:"address" validate:"required,max=64"`
	Start   int    `query:"start" json:"start" validate:"gte=0"`
	Limit   int    `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=200"`
}
