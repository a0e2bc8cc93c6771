package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"traveldna/internal/models/request_models"
	"traveldna/internal/quiz"
	"traveldna/internal/services"
	"traveldna/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

func localeOf(c *gin.Context, explicit string) quiz.Locale {
	if explicit == "" {
		explicit = c.Query("lang")
	}
	return quiz.NegotiateLocale(explicit, c.GetHeader("Accept-Language"))
}

// ListSteps godoc
// @Summary List quiz steps
// @Description Returns the Travel DNA questions in order, localized by ?lang or Accept-Language
// @Tags Quiz
// @Produce json
// @Param lang query string false "ar or en"
// @Success 200 {object} utils.APIResponse
// @Router /quiz/steps [get]
func (qc *QuizController) ListSteps(c *gin.Context) {
	utils.RespondSuccess(c, qc.quizService.Steps(localeOf(c, "")), "Fetched quiz steps successfully")
}

// OpenSession godoc
// @Summary Open the quiz
// @Description Starts a quiz session when the modal opens
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.StartQuizRequest false "Optional locale"
// @Success 201 {object} utils.APIResponse
// @Router /quiz/sessions [post]
func (qc *QuizController) OpenSession(c *gin.Context) {
	var req request_models.StartQuizRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	sess, err := qc.quizService.OpenSession(c.Request.Context(), localeOf(c, req.Lang))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, sess, "Quiz session opened")
}

func (qc *QuizController) GetSession(c *gin.Context) {
	sess, err := qc.quizService.GetSession(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sess, "Fetched quiz session successfully")
}

// CloseSession godoc
// @Summary Close the quiz
// @Description Tears down the session and any results view when the modal closes
// @Tags Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /quiz/sessions/{id} [delete]
func (qc *QuizController) CloseSession(c *gin.Context) {
	if err := qc.quizService.CloseSession(c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Quiz session closed")
}

// Select godoc
// @Summary Answer the current step
// @Description Sets a single-choice answer or toggles an interest
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.SelectOptionRequest true "Option value"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/select [post]
func (qc *QuizController) Select(c *gin.Context) {
	var req request_models.SelectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Option value is required")
		return
	}

	sess, err := qc.quizService.Select(c.Param("id"), req.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sess, "Answer recorded")
}

// Next godoc
// @Summary Advance the quiz
// @Description Moves to the next step, or submits on the last one and starts loading recommendations
// @Tags Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/next [post]
func (qc *QuizController) Next(c *gin.Context) {
	sess, err := qc.quizService.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Moved to next step"
	if sess.Submitted {
		message = "Quiz submitted"
	}
	utils.RespondSuccess(c, sess, message)
}

func (qc *QuizController) Back(c *gin.Context) {
	sess, err := qc.quizService.Back(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sess, "Moved to previous step")
}

func (qc *QuizController) Restart(c *gin.Context) {
	sess, err := qc.quizService.Restart(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sess, "Quiz restarted")
}
