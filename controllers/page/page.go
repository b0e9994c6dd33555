package page

import (
	"heartcare-web/services/facts"
	"heartcare-web/services/submission"
	"heartcare-web/structs"
	"heartcare-web/views"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageController struct {
	submission *submission.SubmissionService
	facts      facts.Table
}

func NewPageController(submissionService *submission.SubmissionService, factTable facts.Table) *PageController {
	return &PageController{submission: submissionService, facts: factTable}
}

// Index 初始畫面，diet 區塊隱藏
func (p *PageController) Index(c *gin.Context) {
	p.render(c, structs.PageState{})
}

func (p *PageController) Submit(c *gin.Context) {
	var vitals structs.VitalsInput
	// 欄位不做驗證，原樣送給 predictor
	_ = c.ShouldBind(&vitals)

	state := p.submission.Submit(c.Request.Context(), structs.PageState{}, vitals)
	p.render(c, state)
}

func (p *PageController) render(c *gin.Context, state structs.PageState) {
	c.HTML(http.StatusOK, views.IndexName, views.IndexData{
		State: state,
		Facts: p.facts.All(),
	})
}
