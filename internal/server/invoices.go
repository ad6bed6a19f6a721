package server

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/invoicepilot/invoicepilot/constants"
	"github.com/invoicepilot/invoicepilot/internal/common"
	"github.com/invoicepilot/invoicepilot/internal/export"
	"github.com/invoicepilot/invoicepilot/internal/llm"
	"github.com/invoicepilot/invoicepilot/internal/pipeline"
	"github.com/invoicepilot/invoicepilot/internal/repository"
	"github.com/invoicepilot/invoicepilot/internal/utils"
)

// InvoicesHandler owns the invoice HTTP endpoints. The heavy lifting happens
// in the pipeline and repository; handlers only decode requests and render
// one terminal message per outcome.
type InvoicesHandler struct {
	repo           repository.InvoiceRepository
	proc           *pipeline.Processor
	exporter       *export.Service
	logger         *slog.Logger
	maxUploadBytes int64
}

func NewInvoicesHandler(
	repo repository.InvoiceRepository,
	proc *pipeline.Processor,
	exporter *export.Service,
	logger *slog.Logger,
	maxUploadBytes int64,
) *InvoicesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 15 * 1024 * 1024
	}
	return &InvoicesHandler{
		repo:           repo,
		proc:           proc,
		exporter:       exporter,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *InvoicesHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ProcessUpload accepts a multipart invoice upload plus an optional note and
// runs it through the pipeline. The response always carries the terminal
// state and its single user-facing message.
func (h *InvoicesHandler) ProcessUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if _, ok := constants.AllowedContentTypes[contentType]; !ok {
		// browsers sometimes send a generic type; fall back to the extension
		contentType = mime.TypeByExtension(filepath.Ext(fh.Filename))
		if _, ok := constants.AllowedContentTypes[contentType]; !ok {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "only PDF, JPEG and PNG uploads are supported"})
			return
		}
	}

	f, err := fh.Open()
	if err != nil {
		h.logger.Error("open upload failed", "filename", fh.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}
	defer func() { _ = f.Close() }()
	b, err := io.ReadAll(f)
	if err != nil {
		h.logger.Error("read upload failed", "filename", fh.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}

	res := h.proc.ProcessUpload(c.Request.Context(), llm.ExtractRequest{
		Document: llm.Document{
			Filename:    fh.Filename,
			ContentType: contentType,
			Bytes:       b,
		},
		UserNote: c.PostForm("note"),
	})

	body := gin.H{"state": res.State, "message": res.Message}
	if res.InvoiceID != uuid.Nil {
		body["invoice_id"] = res.InvoiceID
	}
	if len(res.Reasons) > 0 {
		body["reasons"] = res.Reasons
	}
	c.JSON(http.StatusOK, body)
}

func (h *InvoicesHandler) List(c *gin.Context) {
	var filter repository.ListFilter
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !constants.IsInvoiceStatus(s) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		filter.Status = &s
	}
	var err error
	if filter.IssueFrom, err = parseDateQuery(c.Query("from")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.IssueTo, err = parseDateQuery(c.Query("to")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoices, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, "list invoices failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *InvoicesHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	inv, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "get invoice failed")
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoicesHandler) ListItems(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	// 404 on unknown invoice rather than an empty list
	if _, err := h.repo.GetByID(c.Request.Context(), id); err != nil {
		h.fail(c, err, "get invoice failed")
		return
	}
	items, err := h.repo.ListLineItems(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "list line items failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"line_items": items})
}

type updateStatusRequest struct {
	Status string   `json:"status" binding:"required"`
	Errors []string `json:"errors"`
}

func (h *InvoicesHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if !constants.IsInvoiceStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}
	err := h.repo.UpdateStatus(c.Request.Context(), id, constants.InvoiceStatus(req.Status), req.Errors)
	if err != nil {
		h.fail(c, err, "update status failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *InvoicesHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "delete invoice failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InvoicesHandler) Export(c *gin.Context) {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.exporter.ExportInvoicesXLSX(c.Request.Context(), from, to)
	if err != nil {
		h.fail(c, err, "export failed")
		return
	}
	filename := "invoices-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
}

func (h *InvoicesHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// fail maps repository errors to status codes; internal detail goes to the
// log only.
func (h *InvoicesHandler) fail(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, common.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	h.logger.Error(logMsg, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func parseDateQuery(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := utils.ParseYMD(s)
	if err != nil {
		return nil, errors.New("dates must be YYYY-MM-DD")
	}
	return &t, nil
}
