package api

import (
	"heartcare-web/services/diet"
	"heartcare-web/services/facts"
	"heartcare-web/services/submission"
	"heartcare-web/structs"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApiController struct {
	submission *submission.SubmissionService
	facts      facts.Table
}

func NewApiController(submissionService *submission.SubmissionService, factTable facts.Table) *ApiController {
	return &ApiController{submission: submissionService, facts: factTable}
}

// Submit 以 JSON 回傳 submission 之後的頁面狀態
func (a *ApiController) Submit(c *gin.Context) {
	var vitals structs.VitalsInput
	if err := c.ShouldBindJSON(&vitals); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a.submission.Submit(c.Request.Context(), structs.PageState{}, vitals))
}

func (a *ApiController) Diet(c *gin.Context) {
	age := diet.ParseAge(c.Query("age"))
	c.JSON(http.StatusOK, structs.DietResponse{Age: age, Diet: diet.Recommend(age)})
}

func (a *ApiController) Facts(c *gin.Context) {
	c.JSON(http.StatusOK, a.facts.All())
}

func (a *ApiController) Fact(c *gin.Context) {
	f, ok := a.facts.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "fact not found"})
		return
	}
	c.JSON(http.StatusOK, f)
}
