package controllers_fx

import (
	"go.uber.org/fx"
	"match2b/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSolutionController),
	fx.Provide(controllers.NewSurveyController),
	fx.Provide(controllers.NewDashboardController))
