package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// listSeparator splits list cells such as "bf;gf".
const listSeparator = ";"

// csvColumns is the column order written by Encode.
var csvColumns = []string{"name", "liked_by", "location", "tags", "cost", "max_people", "cost_type"}

// CSVParser reads and writes ideas as CSV with a header row.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed ideas.
// Expected columns: name, liked_by, location, tags, cost, max_people, cost_type.
// Only name is required; list cells are separated by ";".
func (p *CSVParser) Parse(r io.Reader) ([]RawIdea, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	if _, ok := colIndex["name"]; !ok {
		return nil, fmt.Errorf("missing required column: name")
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawIdeas.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawIdea, error) {
	var ideas []RawIdea
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		idea, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		ideas = append(ideas, idea)
	}

	return ideas, nil
}

// parseRecord converts a CSV record to a RawIdea.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (RawIdea, error) {
	idea := RawIdea{
		Name:     getColumn(record, colIndex, "name"),
		LikedBy:  splitList(getColumn(record, colIndex, "liked_by")),
		Location: splitList(getColumn(record, colIndex, "location")),
		Tags:     splitList(getColumn(record, colIndex, "tags")),
		CostType: getColumn(record, colIndex, "cost_type"),
		LineNum:  lineNum,
	}

	if costStr := getColumn(record, colIndex, "cost"); costStr != "" {
		cost, err := strconv.ParseFloat(costStr, 64)
		if err != nil {
			return RawIdea{}, fmt.Errorf("line %d: invalid cost value %q: %w", lineNum, costStr, err)
		}
		idea.Cost = &cost
	}

	if maxStr := getColumn(record, colIndex, "max_people"); maxStr != "" {
		maxPeople, err := strconv.Atoi(maxStr)
		if err != nil {
			return RawIdea{}, fmt.Errorf("line %d: invalid max_people value %q: %w", lineNum, maxStr, err)
		}
		idea.MaxPeople = &maxPeople
	}

	return idea, nil
}

// Encode writes ideas as CSV with a header row.
func (p *CSVParser) Encode(w io.Writer, ideas []RawIdea) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvColumns); err != nil {
		return err
	}

	for _, idea := range ideas {
		row := []string{
			idea.Name,
			strings.Join(idea.LikedBy, listSeparator),
			strings.Join(idea.Location, listSeparator),
			strings.Join(idea.Tags, listSeparator),
			formatOptionalFloat(idea.Cost),
			formatOptionalInt(idea.MaxPeople),
			idea.CostType,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

func splitList(cell string) StringList {
	if cell == "" {
		return nil
	}
	var out StringList
	for _, part := range strings.Split(cell, listSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
