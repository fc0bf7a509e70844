package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"datachat/dataset"
	"datachat/models"
	"datachat/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IngestDatasetHandler loads an already-parsed dataset for the session
// @Summary      Load a dataset from JSON rows
// @Description  Store a dataset of JSON rows for the session. Columns are optional; when omitted they are derived from the first row. Replaces any dataset the session already had.
// @Tags         Dataset
// @Accept       json
// @Produce      json
// @Param        request  body      models.DatasetRequest  true  "Dataset rows with optional column order"
// @Header       200      {string}  X-Session-ID           "Optional session ID, defaults to \"default\""
// @Success      200      {object}  models.UploadResponse  "Dataset profile"
// @Failure      400      {object}  map[string]string      "Invalid request or inconsistent rows"
// @Router       /api/dataset [post]
func (h *Handlers) IngestDatasetHandler(c *gin.Context) {
	var req models.DatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ds := &dataset.Dataset{Columns: req.Columns, Rows: req.Rows}
	profile, err := h.profiler.Build(ds)
	if err != nil {
		var mismatch *dataset.SchemaMismatchError
		if errors.As(err, &mismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": mismatch.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = "default"
	}

	h.datasets.Put(sessionID, ds)
	log.Printf("[DATASET HANDLER] Session %s loaded dataset: %d rows, %d columns", sessionID, len(ds.Rows), len(profile))

	c.JSON(http.StatusOK, models.UploadResponse{
		SessionID: sessionID,
		Rows:      len(ds.Rows),
		Columns:   ds.ColumnNames(),
		Profile:   profile,
	})
}

// UploadDatasetHandler loads a dataset from an uploaded CSV or TSV file
// @Summary      Upload a dataset file
// @Description  Upload a CSV or TSV file whose first row is the header. Cells that parse as numbers or booleans keep their type; empty cells become null. When no session header is sent a new session ID is minted and returned.
// @Tags         Dataset
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV or TSV file"
// @Header       200   {string}  X-Session-ID           "Optional session ID"
// @Success      200   {object}  models.UploadResponse  "Dataset profile"
// @Failure      400   {object}  map[string]string      "No file, bad extension, oversized or unparseable file"
// @Router       /api/dataset/upload [post]
func (h *Handlers) UploadDatasetHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	if err := validation.CheckUploadFile(file.Filename, file.Size, h.maxUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
		return
	}
	defer src.Close()

	delimiter := ','
	if strings.ToLower(filepath.Ext(file.Filename)) == ".tsv" {
		delimiter = '\t'
	}

	ds, err := parseTable(src, delimiter)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiler.Build(ds)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// File uploads mint a fresh session when the caller sent none, so
	// separate uploads don't clobber each other's data.
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	h.datasets.Put(sessionID, ds)
	log.Printf("[DATASET HANDLER] Session %s uploaded %s: %d rows, %d columns", sessionID, file.Filename, len(ds.Rows), len(profile))

	c.JSON(http.StatusOK, models.UploadResponse{
		SessionID: sessionID,
		Rows:      len(ds.Rows),
		Columns:   ds.ColumnNames(),
		Profile:   profile,
	})
}

// SQLDatasetHandler loads a dataset from a SQL Server query
// @Summary      Load a dataset from SQL Server
// @Description  Run a read-only query against the configured SQL Server and store the result set as the session's dataset. max_rows caps how many rows are kept.
// @Tags         Dataset
// @Accept       json
// @Produce      json
// @Param        request  body      models.SQLDatasetRequest  true  "SELECT query with optional row cap"
// @Header       200      {string}  X-Session-ID              "Optional session ID, defaults to \"default\""
// @Success      200      {object}  models.UploadResponse     "Dataset profile"
// @Failure      400      {object}  map[string]string         "Invalid request or non-SELECT query"
// @Failure      503      {object}  map[string]string         "SQL Server not configured"
// @Failure      500      {object}  map[string]string         "Query execution error"
// @Router       /api/dataset/sql [post]
func (h *Handlers) SQLDatasetHandler(c *gin.Context) {
	var req models.SQLDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	query := strings.TrimSpace(req.Query)
	lower := strings.ToLower(query)
	if !strings.HasPrefix(lower, "select") && !strings.HasPrefix(lower, "with") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only SELECT queries are allowed"})
		return
	}

	if h.sqlService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SQL Server service is not configured"})
		return
	}

	ds, err := h.sqlService.QueryDataset(c.Request.Context(), query, req.MaxRows)
	if err != nil {
		log.Printf("[DATASET HANDLER] SQL query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Query failed: %v", err)})
		return
	}
	if len(ds.Rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query returned no rows"})
		return
	}

	profile, err := h.profiler.Build(ds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to profile dataset: %v", err)})
		return
	}

	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = "default"
	}

	h.datasets.Put(sessionID, ds)
	log.Printf("[DATASET HANDLER] Session %s loaded dataset from SQL: %d rows, %d columns", sessionID, len(ds.Rows), len(profile))

	c.JSON(http.StatusOK, models.UploadResponse{
		SessionID: sessionID,
		Rows:      len(ds.Rows),
		Columns:   ds.ColumnNames(),
		Profile:   profile,
	})
}

// ProfileHandler returns the profile of the session's dataset
// @Summary      Get the dataset profile
// @Description  Return each column's name, inferred semantic type and sample values for the session's dataset
// @Tags         Dataset
// @Produce      json
// @Header       200  {string}  X-Session-ID            "Optional session ID, defaults to \"default\""
// @Success      200  {object}  models.ProfileResponse  "Dataset profile"
// @Failure      404  {object}  map[string]string       "No dataset loaded"
// @Router       /api/dataset/profile [get]
func (h *Handlers) ProfileHandler(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = "default"
	}

	ds, ok := h.datasets.Get(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No dataset loaded for this session"})
		return
	}

	profile, err := h.profiler.Build(ds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to profile dataset: %v", err)})
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		SessionID: sessionID,
		Rows:      len(ds.Rows),
		Profile:   profile,
	})
}

// DeleteDatasetHandler drops the session's dataset
// @Summary      Clear the session's dataset
// @Tags         Dataset
// @Produce      json
// @Header       200  {string}  X-Session-ID       "Optional session ID, defaults to \"default\""
// @Success      200  {object}  map[string]string  "Dataset cleared"
// @Router       /api/dataset [delete]
func (h *Handlers) DeleteDatasetHandler(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = "default"
	}

	h.datasets.Delete(sessionID)
	c.JSON(http.StatusOK, gin.H{"message": "Dataset cleared"})
}

// parseTable reads a delimited file whose first record is the header.
func parseTable(r io.Reader, delimiter rune) (*dataset.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true
	// Ragged rows are padded with nulls instead of rejected.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	header := records[0]
	if len(header) > 0 {
		// Excel exports often lead with a BOM.
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	rows := make([]dataset.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(dataset.Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = parseCell(record[i])
			} else {
				row[name] = nil
			}
		}
		rows = append(rows, row)
	}

	return &dataset.Dataset{Columns: header, Rows: rows}, nil
}

// parseCell types a raw cell: numbers and booleans become native
// values, empty cells become nil, everything else stays a string.
func parseCell(raw string) interface{} {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n
	}
	switch strings.ToLower(trimmed) {
	case "true":
		return true
	case "false":
		return false
	}
	return trimmed
}
