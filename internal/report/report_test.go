package report_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/report"
	"github.com/KirkDiggler/ddb-importer/internal/services/importer"
)

type ReportTestSuite struct {
	suite.Suite
	output *importer.ImportCharacterOutput
}

func (s *ReportTestSuite) SetupTest() {
	s.output = &importer.ImportCharacterOutput{
		Created: true,
		Actor: &vtt.Actor{
			ID:   "actor_1",
			Name: "Thorin Oakenshield",
			Flags: vtt.ImportFlags{
				CharacterURL: "https://www.dndbeyond.com/characters/1",
				LastSync:     "2024-05-01T12:00:00Z",
			},
			System: &vtt.ActorSystem{
				Attributes: vtt.Attributes{
					HP:   vtt.HitPoints{Value: 40, Max: 44},
					AC:   vtt.ArmorClass{Value: 18},
					Prof: 3,
				},
				Details: vtt.Details{Level: 5},
			},
		},
		Attachments: []*importer.Attachment{
			{Document: &vtt.Document{Name: "Fighter", Type: vtt.DocumentTypeClass}, Category: compendium.CategoryClass, Source: compendium.StoreSRDClasses},
			{Document: &vtt.Document{Name: "Chain Mail", Type: vtt.DocumentTypeEquipment}, Category: compendium.CategoryItem, Source: importer.SourceSynthesized, Cached: true},
		},
	}
}

func TestReportSuite(t *testing.T) {
	suite.Run(t, new(ReportTestSuite))
}

func (s *ReportTestSuite) open(raw []byte) *excelize.File {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = f.Close() })
	return f
}

func (s *ReportTestSuite) TestWrite() {
	var buf bytes.Buffer
	s.Require().NoError(report.Write(&buf, s.output))

	f := s.open(buf.Bytes())
	s.Equal([]string{report.SheetSummary, report.SheetAttachments}, f.GetSheetList())

	summary, err := f.GetRows(report.SheetSummary)
	s.Require().NoError(err)
	values := map[string]string{}
	for _, row := range summary {
		s.Require().Len(row, 2)
		values[row[0]] = row[1]
	}
	s.Equal("Thorin Oakenshield", values["Actor"])
	s.Equal("5", values["Level"])
	s.Equal("40/44", values["HP"])
	s.Equal("18", values["AC"])
	s.Equal("3", values["Prof"])
	s.Equal("TRUE", values["Created"])
	s.Equal("2", values["Attachments"])

	attachments, err := f.GetRows(report.SheetAttachments)
	s.Require().NoError(err)
	s.Equal([][]string{
		{"Name", "Type", "Category", "Source", "Cached"},
		{"Fighter", "class", "class", compendium.StoreSRDClasses, "FALSE"},
		{"Chain Mail", "equipment", "item", importer.SourceSynthesized, "TRUE"},
	}, attachments)
}

func (s *ReportTestSuite) TestSave() {
	path := filepath.Join(s.T().TempDir(), "import.xlsx")
	s.Require().NoError(report.Save(path, s.output))

	f, err := excelize.OpenFile(path)
	s.Require().NoError(err)
	defer func() { _ = f.Close() }()

	name, err := f.GetCellValue(report.SheetSummary, "B1")
	s.Require().NoError(err)
	s.Equal("Thorin Oakenshield", name)
}

func (s *ReportTestSuite) TestRequiresActor() {
	var buf bytes.Buffer
	err := report.Write(&buf, &importer.ImportCharacterOutput{})
	s.True(errors.IsInvalidArgument(err))
	s.Zero(buf.Len())
}
