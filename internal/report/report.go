// Package report writes an import summary workbook
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/services/importer"
)

// Sheet names
const (
	SheetSummary     = "Summary"
	SheetAttachments = "Attachments"
)

var attachmentHeader = []interface{}{"Name", "Type", "Category", "Source", "Cached"}

// Save writes the workbook for output to path
func Save(path string, output *importer.ImportCharacterOutput) error {
	f, err := build(output)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save report to %s", path)
	}
	return nil
}

// Write writes the workbook for output to w
func Write(w io.Writer, output *importer.ImportCharacterOutput) error {
	f, err := build(output)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	return nil
}

func build(output *importer.ImportCharacterOutput) (*excelize.File, error) {
	if output == nil || output.Actor == nil {
		return nil, errors.InvalidArgument("import output with an actor is required")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "failed to name summary sheet")
	}
	if _, err := f.NewSheet(SheetAttachments); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "failed to add attachments sheet")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "failed to create style")
	}

	if err := writeSummary(f, output, bold); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeAttachments(f, output, bold); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func writeSummary(f *excelize.File, output *importer.ImportCharacterOutput, bold int) error {
	actor := output.Actor
	rows := [][2]interface{}{
		{"Actor", actor.Name},
		{"Actor ID", actor.ID},
		{"Created", output.Created},
		{"Character URL", actor.Flags.CharacterURL},
		{"Last Sync", actor.Flags.LastSync},
	}
	if sys := actor.System; sys != nil {
		rows = append(rows,
			[2]interface{}{"Level", sys.Details.Level},
			[2]interface{}{"HP", fmt.Sprintf("%d/%d", sys.Attributes.HP.Value, sys.Attributes.HP.Max)},
			[2]interface{}{"AC", sys.Attributes.AC.Value},
			[2]interface{}{"Prof", sys.Attributes.Prof},
		)
	}
	rows = append(rows, [2]interface{}{"Attachments", len(output.Attachments)})

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "invalid summary cell")
		}
		if err := f.SetSheetRow(SheetSummary, cell, &[]interface{}{row[0], row[1]}); err != nil {
			return errors.Wrap(err, "failed to write summary row")
		}
	}

	if err := f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return errors.Wrap(err, "failed to style summary")
	}
	if err := f.SetColWidth(SheetSummary, "A", "A", 16); err != nil {
		return errors.Wrap(err, "failed to size summary")
	}
	return f.SetColWidth(SheetSummary, "B", "B", 48)
}

func writeAttachments(f *excelize.File, output *importer.ImportCharacterOutput, bold int) error {
	if err := f.SetSheetRow(SheetAttachments, "A1", &attachmentHeader); err != nil {
		return errors.Wrap(err, "failed to write attachments header")
	}
	if err := f.SetCellStyle(SheetAttachments, "A1", "E1", bold); err != nil {
		return errors.Wrap(err, "failed to style attachments header")
	}

	for i, a := range output.Attachments {
		if a == nil || a.Document == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "invalid attachment cell")
		}
		row := []interface{}{a.Document.Name, string(a.Document.Type), string(a.Category), a.Source, a.Cached}
		if err := f.SetSheetRow(SheetAttachments, cell, &row); err != nil {
			return errors.Wrap(err, "failed to write attachment row")
		}
	}

	if err := f.SetColWidth(SheetAttachments, "A", "A", 32); err != nil {
		return errors.Wrap(err, "failed to size attachments")
	}
	return f.SetColWidth(SheetAttachments, "B", "E", 16)
}
