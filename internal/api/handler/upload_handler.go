package handler

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/distribution"
	"github.com/Mukeshpandey0286/agent-management-backend/internal/store"
	"github.com/Mukeshpandey0286/agent-management-backend/pkg/utils"
)

// maxUploadSize caps the multipart form at 10 MB, plenty for contact files.
const maxUploadSize = 10 << 20

// UploadContacts ingests a contact file and distributes it across agents
// @Summary Upload and distribute contacts
// @Description Upload a CSV of contacts (columns: FirstName, Phone, Notes). Every row is validated, then the valid rows are split evenly across the active agents and persisted as one list per agent.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 201 {object} distribution.IngestResult
// @Failure 400 {object} map[string]interface{} "Schema, validation or precondition failure"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /uploads [post]
func UploadContacts(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "A file field named 'file' is required")
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".csv" {
		utils.WriteError(w, http.StatusBadRequest, "Only CSV files are supported")
		return
	}

	columns, rows, err := decodeCSV(file)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Failed to parse CSV: "+err.Error())
		return
	}

	agents, err := store.ListActiveAgents()
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load agents")
		return
	}

	meta := distribution.BatchMetadata{
		Columns:    columns,
		FileName:   header.Filename,
		UploadedBy: r.Header.Get("X-User-ID"),
	}

	result, err := distribution.Ingest(rows, agents, meta)
	if err != nil {
		writeIngestError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "Contacts distributed successfully",
		"distribution": result,
	})
}

// decodeCSV reads the file into a normalized header plus one RawRow per
// line. Header cells are trimmed and stripped of quotes; row values are
// keyed by the canonical column name so the pipeline never sees the raw
// header spelling.
func decodeCSV(file io.Reader) ([]string, []distribution.RawRow, error) {
	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
	}

	var rows []distribution.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		row := make(distribution.RawRow, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[distribution.NormalizeColumn(col)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return columns, rows, nil
}

// writeIngestError maps the pipeline's failure taxonomy onto HTTP codes.
// Validation failures come back with the full structured row list so the
// uploader can fix the file in one pass.
func writeIngestError(w http.ResponseWriter, err error) {
	var schemaErr *distribution.SchemaError
	if errors.As(err, &schemaErr) {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":          "Missing required columns",
			"missingColumns": schemaErr.Missing,
		})
		return
	}

	var rowErr *distribution.RowValidationError
	if errors.As(err, &rowErr) {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":       "Some rows failed validation; nothing was distributed",
			"invalidRows": rowErr.Rows,
		})
		return
	}

	switch {
	case errors.Is(err, distribution.ErrEmptyUpload):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, distribution.ErrNoActiveAgents):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
