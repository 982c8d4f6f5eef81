package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"gstmitra/internal/csvexport"
	"gstmitra/internal/domain"
	"gstmitra/internal/service"
	"gstmitra/internal/xlsxexport"
)

// FilingHandler handles upload, listing, and export of filings.
type FilingHandler struct {
	filingService service.FilingService
	maxFileBytes  int64
}

// NewFilingHandler creates a new FilingHandler.
func NewFilingHandler(filingService service.FilingService, maxFileSizeMB int64) *FilingHandler {
	return &FilingHandler{
		filingService: filingService,
		maxFileBytes:  maxFileSizeMB * 1024 * 1024,
	}
}

// Upload handles POST /api/v1/filings/upload
// @Summary Upload a sales CSV
// @Description Upload a CSV of sales transactions and receive the computed GST filing
// @Tags filings
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file of sales transactions"
// @Success 201 {object} APIResponse{data=domain.Filing} "Filing processed"
// @Failure 400 {object} APIResponse "Missing file, bad CSV, or empty dataset"
// @Failure 413 {object} APIResponse "File too large"
// @Router /filings/upload [post]
func (h *FilingHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	if h.maxFileBytes > 0 && header.Size > h.maxFileBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}
	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".csv" && ext != "" {
		HandleError(c, domain.ErrUnsupportedFileType)
		return
	}

	filing, err := h.filingService.ProcessUpload(c.Request.Context(), header.Filename, file)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, filing)
}

// List handles GET /api/v1/filings
// @Summary List filings
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.Filing}
// @Router /filings [get]
func (h *FilingHandler) List(c *gin.Context) {
	filings, err := h.filingService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, filings, len(filings))
}

// GetByID handles GET /api/v1/filings/:id
// @Summary Get a filing by id
// @Produce json
// @Param id path int true "Filing ID"
// @Success 200 {object} APIResponse{data=domain.Filing}
// @Failure 404 {object} APIResponse "Filing not found"
// @Router /filings/{id} [get]
func (h *FilingHandler) GetByID(c *gin.Context) {
	id, ok := parseFilingID(c)
	if !ok {
		return
	}

	filing, err := h.filingService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, filing)
}

// Export handles GET /api/v1/filings/:id/export?format=csv|xlsx
// @Summary Download a filing's tax breakdown
// @Produce octet-stream
// @Param id path int true "Filing ID"
// @Param format query string false "Export format (csv or xlsx)" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} APIResponse "Unsupported format"
// @Failure 404 {object} APIResponse "Filing not found"
// @Router /filings/{id}/export [get]
func (h *FilingHandler) Export(c *gin.Context) {
	id, ok := parseFilingID(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		HandleError(c, domain.ErrUnsupportedFormat)
		return
	}

	filing, err := h.filingService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch format {
	case "xlsx":
		var buf bytes.Buffer
		if err := xlsxexport.WriteFiling(&buf, filing); err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="filing-%d.xlsx"`, filing.ID))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		var buf bytes.Buffer
		buf.Write(csvexport.BOM)
		w := csvexport.NewWriter(&buf)
		if err := w.WriteHeader(); err != nil {
			HandleError(c, err)
			return
		}
		if err := w.WriteFiling(filing); err != nil {
			HandleError(c, err)
			return
		}
		w.Flush()
		if err := w.Error(); err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="filing-%d.csv"`, filing.ID))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	}
}

func parseFilingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "filing id must be an integer")
		return 0, false
	}
	return id, true
}
