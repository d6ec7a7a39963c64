package generation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-generator/internal/matching"
	"resume-generator/internal/resume"
	"resume-generator/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the generation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the LLM-backed routes to gen and the purely local
// analysis routes to local.
func (h *Handler) RegisterRoutes(gen, local *gin.RouterGroup) {
	gen.POST("/generate-resume", h.generateResume)
	gen.POST("/generate-cover-letter", h.coverLetter)
	gen.POST("/mock-interview", h.mockInterview)

	local.POST("/keywords", h.keywords)
	local.POST("/match-score", h.matchScore)
}

func (h *Handler) generateResume(c *gin.Context) {
	var raw []byte
	if c.Request.Body != nil {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unreadable body", nil)
			return
		}
		raw = b
	}
	req, err := parseGenerateResumeRequest(raw)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	res := h.Svc.GenerateResume(c.Request.Context(), req.toResumeRequest())
	respond.OK(c, toGenerateResumeResponse(res))
}

func (h *Handler) coverLetter(c *gin.Context) {
	req := coverLetterRequest{}
	if err := decodeOptionalJSON(c.Request.Body, &req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	out, err := h.Svc.CoverLetter(c.Request.Context(), req.Input)
	if err != nil {
		if errors.Is(err, ErrEmptyInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "No input provided", nil)
			return
		}
		respond.Error(c, http.StatusBadGateway, "llm_error", "failed to generate cover letter", nil)
		return
	}
	respond.OK(c, OutputResponse{Output: out})
}

func (h *Handler) mockInterview(c *gin.Context) {
	req := mockInterviewRequest{}
	if err := decodeOptionalJSON(c.Request.Body, &req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	if err := validate.Struct(req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid messages", validationDetails(err))
		return
	}

	out, err := h.Svc.MockInterview(c.Request.Context(), req.toMessages())
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "llm_error", "failed to continue interview", nil)
		return
	}
	respond.OK(c, OutputResponse{Output: out})
}

func (h *Handler) keywords(c *gin.Context) {
	req := keywordsRequest{}
	if err := decodeOptionalJSON(c.Request.Body, &req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, KeywordsResponse{Keywords: matching.ExtractKeywords(req.Text).Sorted()})
}

func (h *Handler) matchScore(c *gin.Context) {
	req := matchScoreRequest{}
	if err := decodeOptionalJSON(c.Request.Body, &req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	keywords := matching.ExtractKeywords(req.JobDescription)
	score := matching.Score(resume.Normalize(req.Resume), keywords)
	respond.OK(c, MatchScoreResponse{Score: score, Keywords: keywords.Sorted()})
}

func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Namespace()+": "+fe.Tag())
	}
	return out
}

var errInvalidJSON = errors.New("invalid json body")

func decodeOptionalJSON(body io.ReadCloser, out any) error {
	if body == nil {
		return nil
	}
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidJSON
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return errInvalidJSON
	}
	return nil
}
