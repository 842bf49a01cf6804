package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabinshresthaaa/CoverPage/middleware"
	"github.com/rabinshresthaaa/CoverPage/model"
	"github.com/rabinshresthaaa/CoverPage/service"
)

// inputDateLayout is the layout of an HTML date input.
const inputDateLayout = "2006-01-02"

// CoverGenerator renders cover page documents.
type CoverGenerator interface {
	Generate(ctx context.Context, input model.CoverPageInput) (*service.Result, error)
}

type CoverHandler struct {
	generator CoverGenerator
}

func NewCoverHandler(generator CoverGenerator) *CoverHandler {
	return &CoverHandler{generator: generator}
}

// CoverRequest is the submitted form. Field names match the web form.
type CoverRequest struct {
	SubjectName    string `form:"subjectName" json:"subjectName" binding:"required"`
	StudentName    string `form:"studentName" json:"studentName" binding:"required"`
	RollNumber     string `form:"rollNumber" json:"rollNumber" binding:"required"`
	TeacherName    string `form:"teacherName" json:"teacherName" binding:"required"`
	SubmissionDate string `form:"submissionDate" json:"submissionDate" binding:"required,datetime=2006-01-02"`
}

// Input converts the request into the assembler's input record.
func (r CoverRequest) Input() (model.CoverPageInput, error) {
	date, err := time.Parse(inputDateLayout, r.SubmissionDate)
	if err != nil {
		return model.CoverPageInput{}, fmt.Errorf("invalid submissionDate: %w", err)
	}
	return model.CoverPageInput{
		SubjectName:    r.SubjectName,
		StudentName:    r.StudentName,
		RollNumber:     r.RollNumber,
		TeacherName:    r.TeacherName,
		SubmissionDate: date,
	}, nil
}

// Download renders the submitted fields and returns the document as an attachment.
func (h *CoverHandler) Download(c *gin.Context) {
	var req CoverRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	input, err := req.Input()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if username := middleware.GetUsername(c); username != "" {
		ctx = service.WithRequester(ctx, username)
	}

	result, err := h.generator.Generate(ctx, input)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      generateErrorMessage(err),
			"request_id": middleware.GetRequestID(c),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

func generateErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingAsset), errors.Is(err, service.ErrInvalidAsset):
		return "Cover page assets are unavailable"
	case errors.Is(err, service.ErrSerialization):
		return "Failed to build document"
	default:
		return "Failed to generate cover page"
	}
}
