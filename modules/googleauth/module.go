package googleauth

import (
	"github.com/darkr4m/actually-star-k9/core/config"
	"github.com/darkr4m/actually-star-k9/core/database"
	"github.com/darkr4m/actually-star-k9/core/middleware"
	"github.com/darkr4m/actually-star-k9/modules/googleauth/controller"
	"github.com/darkr4m/actually-star-k9/modules/googleauth/repository"
	"github.com/darkr4m/actually-star-k9/modules/googleauth/router"
	"github.com/darkr4m/actually-star-k9/modules/googleauth/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, googleCfg config.GoogleAPIConfig, mw *middleware.Middleware) {
	repo := repository.NewGoogleAuthRepository(db)
	svc := service.NewGoogleAuthService(repo, googleCfg)
	ctrl := controller.NewGoogleAuthController(svc)

	router.NewGoogleAuthRouter(ctrl).Setup(e, mw)
}

// GetRepository exposes the repository for modules that read stored Google
// credentials, and for the background state cleanup task.
func GetRepository(db database.IDatabase) repository.GoogleAuthRepository {
	return repository.NewGoogleAuthRepository(db)
}
