package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"felt2felt-api/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ImportTournaments bulk-creates tournament series from an uploaded CSV or
// XLSX file. Column headers are the series field names. The insert is one
// transaction: either every row lands or none do.
func (s *TournamentService) ImportTournaments(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("csvFile")
	if err != nil || fileHeader.Size == 0 {
		return c.Status(400).JSON(fiber.Map{"msg": "No file uploaded. Please select a CSV file."})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"msg": "Error processing the CSV file."})
	}
	defer file.Close()

	var rows []map[string]string
	if strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			return c.Status(500).JSON(fiber.Map{"msg": "Error processing the CSV file."})
		}
		rows, err = parseXLSXRows(data)
	} else {
		rows, err = parseCSVRows(file)
	}
	if err != nil {
		log.Printf("ERROR parsing import file %s: %v", fileHeader.Filename, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Error processing the CSV file."})
	}

	if len(rows) == 0 {
		return c.Status(400).JSON(fiber.Map{"msg": "CSV file is empty or could not be parsed."})
	}

	now := time.Now()
	series := make([]models.TournamentSeries, 0, len(rows))
	for i, row := range rows {
		t, buildErr := buildSeriesFromRow(row)
		if buildErr != nil {
			return c.Status(400).JSON(fiber.Map{"msg": fmt.Sprintf("Row %d: %v", i+1, buildErr)})
		}
		// Derive the status here rather than relying on per-row save hooks
		// firing during the batch insert.
		t.ApplyStatus(now)
		series = append(series, *t)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&series).Error
	})
	if err != nil {
		log.Printf("ERROR during database import: %v", err)
		return c.Status(500).JSON(fiber.Map{"msg": "An error occurred while importing data into the database."})
	}

	return c.JSON(fiber.Map{"msg": fmt.Sprintf("Successfully imported %d records.", len(series))})
}

// parseCSVRows reads a CSV stream into header-keyed row maps.
func parseCSVRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseXLSXRows reads the first sheet of an XLSX workbook the same way.
func parseXLSXRows(data []byte) ([]map[string]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// buildSeriesFromRow maps one import row onto a TournamentSeries. Headers
// match the JSON field names used elsewhere: seriesName, majorCircuit, city,
// region, country, startDate, endDate, officialSite, tags (comma-separated).
func buildSeriesFromRow(row map[string]string) (*models.TournamentSeries, error) {
	if row["seriesName"] == "" {
		return nil, fmt.Errorf("seriesName is required")
	}
	if row["city"] == "" || row["region"] == "" || row["country"] == "" {
		return nil, fmt.Errorf("city, region and country are required")
	}

	startDate, err := parseDate(row["startDate"])
	if err != nil {
		return nil, fmt.Errorf("invalid startDate %q", row["startDate"])
	}
	endDate, err := parseDate(row["endDate"])
	if err != nil {
		return nil, fmt.Errorf("invalid endDate %q", row["endDate"])
	}
	if startDate.After(endDate) {
		return nil, fmt.Errorf("startDate is after endDate")
	}

	var tags []string
	if row["tags"] != "" {
		tags = strings.Split(row["tags"], ",")
	}

	return &models.TournamentSeries{
		ID:           uuid.NewString(),
		SeriesName:   row["seriesName"],
		MajorCircuit: row["majorCircuit"],
		City:         row["city"],
		Region:       row["region"],
		Country:      row["country"],
		StartDate:    startDate,
		EndDate:      endDate,
		OfficialSite: row["officialSite"],
		Tags:         normalizeTags(tags),
	}, nil
}
