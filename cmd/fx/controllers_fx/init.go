package controllers_fx

import (
	"go.uber.org/fx"
	"traveldna/internal/api"
	"traveldna/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewShellController),
	fx.Provide(api.NewRouter))
