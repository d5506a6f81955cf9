package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

// importRow is the CSV row shape of a bulk upload. Everything is kept
// as a string so a malformed value fails its own row instead of the
// whole file.
type importRow struct {
	Title        string `csv:"title"`
	Description  string `csv:"description"`
	StartDate    string `csv:"start_date"`
	EndDate      string `csv:"end_date"`
	ContactEmail string `csv:"contact_email"`
	ContactPhone string `csv:"contact_phone_number"`
	Categories   string `csv:"categories"`
}

type bulkImportService struct {
	recruitmentRepo repository.RecruitmentRepository
	categoryRepo    repository.CategoryRepository
}

func NewBulkImportService(recruitmentRepo repository.RecruitmentRepository, categoryRepo repository.CategoryRepository) BulkImportService {
	return &bulkImportService{
		recruitmentRepo: recruitmentRepo,
		categoryRepo:    categoryRepo,
	}
}

func (s *bulkImportService) Import(ctx context.Context, orgID int32, file multipart.File, publish bool) (*domain.ImportReport, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	// Excel exports routinely lead with a UTF-8 BOM.
	data = bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF"))

	var rows []importRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	nameToID, err := s.categoryRepo.NameMap(ctx)
	if err != nil {
		return nil, err
	}

	status := domain.RecruitmentStatusDraft
	if publish {
		status = domain.RecruitmentStatusOpen
	}

	report := &domain.ImportReport{}
	for i, row := range rows {
		// Header is line 1, so data rows start at 2.
		report.Add(s.importOne(ctx, orgID, row, i+2, status, nameToID))
	}
	return report, nil
}

func (s *bulkImportService) importOne(ctx context.Context, orgID int32, row importRow, line int, status domain.RecruitmentStatus, nameToID map[string]int32) domain.ImportRowResult {
	res := domain.ImportRowResult{Line: line}

	for _, f := range []struct{ name, value string }{
		{"title", row.Title},
		{"description", row.Description},
		{"start_date", row.StartDate},
		{"end_date", row.EndDate},
		{"contact_email", row.ContactEmail},
	} {
		if strings.TrimSpace(f.value) == "" {
			res.Reason = fmt.Sprintf("%s is required", f.name)
			return res
		}
	}
	for _, d := range []struct{ name, value string }{
		{"start_date", row.StartDate},
		{"end_date", row.EndDate},
	} {
		if _, err := time.Parse("2006-01-02", strings.TrimSpace(d.value)); err != nil {
			res.Reason = fmt.Sprintf("%s must be YYYY-MM-DD", d.name)
			return res
		}
	}

	var categoryIDs []int32
	for _, name := range strings.Split(row.Categories, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id, ok := nameToID[name]
		if !ok {
			// Unknown names do not sink the row.
			res.Warnings = append(res.Warnings, fmt.Sprintf("unknown category %q skipped", name))
			continue
		}
		categoryIDs = append(categoryIDs, id)
	}

	rec := &domain.Recruitment{
		OrganizationID: orgID,
		Title:          strings.TrimSpace(row.Title),
		Description:    strings.TrimSpace(row.Description),
		StartDate:      strings.TrimSpace(row.StartDate),
		EndDate:        strings.TrimSpace(row.EndDate),
		ContactPhone:   strings.TrimSpace(row.ContactPhone),
		ContactEmail:   strings.TrimSpace(row.ContactEmail),
		Status:         status,
	}
	if err := s.recruitmentRepo.Create(ctx, rec, categoryIDs); err != nil {
		res.Reason = fmt.Sprintf("database error: %v", err)
		return res
	}
	res.Committed = true
	return res
}
