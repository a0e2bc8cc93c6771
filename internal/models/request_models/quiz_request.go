package request_models

type StartQuizRequest struct {
	Lang string `json:"lang"`
}

type SelectOptionRequest struct {
	Value string `json:"value" binding:"required"`
}

type SelectPackageRequest struct {
	PackageID *int `json:"package_id" binding:"required"`
}

type GlobeResizeRequest struct {
	Width  int `json:"width" binding:"required,min=1"`
	Height int `json:"height" binding:"required,min=1"`
}

type SamplePackagesQuery struct {
	Personality string   `form:"personality"`
	BudgetLevel string   `form:"budget_level"`
	Interests   []string `form:"interests"`
}
