package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/contracts"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/infra/metrics"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
	"github.com/gin-gonic/gin"
)

const (
	ModeAll      = "extract"
	ModeTickers  = "tickers"
	ModeProjects = "projects"
)

// Text stays raw: a missing or non-string value extracts as "".
type ExtractRequest struct {
	Text json.RawMessage `json:"text"`
}

type ExtractResponse struct {
	Mode     string   `json:"mode"`
	Keywords []string `json:"keywords"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type KeywordsHandler struct {
	extractor    contracts.KeywordExtractor
	log          pkg.Logger
	maxBodyBytes int64
}

func NewKeywordsHandler(extractor contracts.KeywordExtractor, log pkg.Logger, maxBodyBytes int64) *KeywordsHandler {
	return &KeywordsHandler{
		extractor:    extractor,
		log:          log,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *KeywordsHandler) Extract(c *gin.Context) {
	h.handle(c, ModeAll, h.extractor.Extract)
}

func (h *KeywordsHandler) ExtractTickers(c *gin.Context) {
	h.handle(c, ModeTickers, h.extractor.ExtractTickersOnly)
}

func (h *KeywordsHandler) ExtractProjects(c *gin.Context) {
	h.handle(c, ModeProjects, h.extractor.ExtractProjectsOnly)
}

func (h *KeywordsHandler) handle(c *gin.Context, mode string, extract func(string) []string) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}
	body, err := c.GetRawData()
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		metrics.ExtractRequests.WithLabelValues(mode, "too_large").Inc()
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
		return
	}
	if err != nil {
		metrics.ExtractRequests.WithLabelValues(mode, "bad_request").Inc()
		c.JSON(http.StatusBadRequest, errorResponse{Error: "failed to read body"})
		return
	}

	var req ExtractRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			h.log.Debug("Invalid extract request", "mode", mode, "err", err)
			metrics.ExtractRequests.WithLabelValues(mode, "bad_request").Inc()
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}
	}

	metrics.ExtractRequests.WithLabelValues(mode, "ok").Inc()
	c.JSON(http.StatusOK, ExtractResponse{
		Mode:     mode,
		Keywords: extract(textOf(req.Text)),
	})
}

func textOf(raw json.RawMessage) string {
	var text string
	if len(raw) == 0 || json.Unmarshal(raw, &text) != nil {
		return ""
	}
	return text
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
