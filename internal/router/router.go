package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/safedocs/backend/config"
	"github.com/safedocs/backend/internal/handler"
)

func Setup(
	cfg *config.Config,
	templateHandler *handler.TemplateHandler,
	submissionHandler *handler.SubmissionHandler,
	rosterHandler *handler.RosterHandler,
	captureHandler *handler.CaptureHandler,
	configHandler *handler.ConfigHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	api := r.Group("/api")
	{
		templates := api.Group("/templates")
		{
			templates.GET("", templateHandler.List)
			templates.GET("/:kind", templateHandler.Get)
		}

		submissions := api.Group("/submissions")
		{
			submissions.POST("/open", submissionHandler.Open)
			submissions.GET("", submissionHandler.List)
			submissions.GET("/:ref", submissionHandler.Get)
			submissions.POST("/:ref/open", submissionHandler.Reopen)
			submissions.POST("/:ref/status", submissionHandler.ChangeStatus)
			submissions.GET("/:ref/export", submissionHandler.Export)         // 同步下载
			submissions.POST("/:ref/export", submissionHandler.EnqueueExport) // 后台导出
		}

		sessions := api.Group("/sessions")
		{
			sessions.POST("/:token/bind", submissionHandler.Bind)
			sessions.POST("/:token/bind-person", submissionHandler.BindPerson)
			sessions.GET("/:token/validate", submissionHandler.Validate)
			sessions.GET("/:token/diff", submissionHandler.Diff)
			sessions.POST("/:token/save", submissionHandler.Save)
			sessions.POST("/:token/cancel", submissionHandler.Cancel)
		}

		rosters := api.Group("/rosters")
		{
			rosters.GET("/jobs", rosterHandler.Jobs)
			rosters.GET("/people", rosterHandler.People)
			rosters.GET("/locations", rosterHandler.Locations)
			rosters.GET("/categories", rosterHandler.Categories)
		}

		captures := api.Group("/captures")
		{
			captures.POST("/signature", captureHandler.Signature)
			captures.POST("/image", captureHandler.Image)
			captures.GET("/file", captureHandler.Fetch)
		}

		api.GET("/config", configHandler.Get)
	}

	return r
}
