package router

import (
	"heartcare-web/controllers/api"
	"heartcare-web/controllers/check"
	"heartcare-web/controllers/page"
	"heartcare-web/controllers/readProbe"
	"heartcare-web/services/facts"
	"heartcare-web/services/submission"
	"heartcare-web/views"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Router(submissionService *submission.SubmissionService, factTable facts.Table) *gin.Engine {
	route := gin.New()
	route.Use(gin.Logger(), gin.Recovery())
	route.SetHTMLTemplate(views.Templates())
	route.StaticFS("/static", http.FS(views.Static()))

	pageController := page.NewPageController(submissionService, factTable)
	route.GET("/", pageController.Index)
	route.POST("/", pageController.Submit)

	apiController := api.NewApiController(submissionService, factTable)
	apiGroup := route.Group("/api")
	apiGroup.Use(cors.Default())
	{
		apiGroup.POST("/submissions", apiController.Submit)
		apiGroup.GET("/diet", apiController.Diet)
		apiGroup.GET("/facts", apiController.Facts)
		apiGroup.GET("/facts/:id", apiController.Fact)
	}

	route.GET("/read-probe", readProbe.Probe)
	route.GET("/check-live", check.CheckAlive)
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return route
}
