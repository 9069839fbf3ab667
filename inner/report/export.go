package report

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
)

const locationSheet = "Employees by location"

// ExportLocationCounts выгружает количество сотрудников по локациям в xlsx,
// строки отсортированы по id локации
func ExportLocationCounts(counts map[int64]int64) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", locationSheet); err != nil {
		return nil, fmt.Errorf("error renaming sheet: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("error creating header style: %w", err)
	}
	if err = f.SetSheetRow(locationSheet, "A1", &[]any{"Location ID", "Employees"}); err != nil {
		return nil, fmt.Errorf("error writing header: %w", err)
	}
	if err = f.SetCellStyle(locationSheet, "A1", "B1", style); err != nil {
		return nil, fmt.Errorf("error styling header: %w", err)
	}

	locationIds := make([]int64, 0, len(counts))
	for locationId := range counts {
		locationIds = append(locationIds, locationId)
	}
	slices.Sort(locationIds)

	for i, locationId := range locationIds {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err = f.SetSheetRow(locationSheet, cell, &[]any{locationId, counts[locationId]}); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buffer, nil
}
