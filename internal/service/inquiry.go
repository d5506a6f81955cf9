package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

type inquiryService struct {
	inquiryRepo     repository.InquiryRepository
	recruitmentRepo repository.RecruitmentRepository
	adminRepo       repository.AdminUserRepository
	sink            NotificationSink
	operatorEmail   string
}

func NewInquiryService(inquiryRepo repository.InquiryRepository, recruitmentRepo repository.RecruitmentRepository, adminRepo repository.AdminUserRepository, sink NotificationSink, operatorEmail string) InquiryService {
	return &inquiryService{
		inquiryRepo:     inquiryRepo,
		recruitmentRepo: recruitmentRepo,
		adminRepo:       adminRepo,
		sink:            sink,
		operatorEmail:   operatorEmail,
	}
}

func (s *inquiryService) SubmitRecruitmentInquiry(ctx context.Context, recruitmentID int32, volunteerID *int32, text string) error {
	if text == "" {
		return invalid("inquiry_text", "inquiry text is required")
	}
	title, orgName, orgID, err := s.recruitmentRepo.GetNotificationInfo(ctx, recruitmentID)
	if err != nil {
		return err
	}

	q := &domain.Inquiry{
		RecruitmentID: recruitmentID,
		VolunteerID:   volunteerID,
		Text:          text,
	}
	if err := s.inquiryRepo.Create(ctx, q); err != nil {
		return err
	}

	// The org may legitimately have no OrgAdmin yet; the inquiry is
	// stored regardless.
	address, err := s.adminRepo.GetOrgAdminAddress(ctx, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Warn("no org admin to relay inquiry to", "recruitment_id", recruitmentID)
			return nil
		}
		logger.Error("org admin lookup failed", "recruitment_id", recruitmentID, "error", err)
		return nil
	}

	subject := fmt.Sprintf("【地域支援Hub】募集「%s」への問い合わせ", title)
	body := fmt.Sprintf("%s ご担当者様\n\n募集「%s」に問い合わせが届きました。\n\n----\n%s\n----\n\n地域支援Hub", orgName, title, text)
	if err := s.sink.Send(ctx, address, orgName, subject, body); err != nil {
		logger.Error("inquiry relay failed", "recruitment_id", recruitmentID, "error", err)
	}
	return nil
}

func (s *inquiryService) SubmitContactInquiry(ctx context.Context, in domain.ContactInquiry) error {
	if in.MunicipalityName == "" {
		return invalid("municipality_name", "municipality name is required")
	}
	if in.ContactPersonName == "" {
		return invalid("contact_person_name", "contact person name is required")
	}
	if in.Content == "" {
		return invalid("inquiry_content", "inquiry content is required")
	}
	if in.ReplyEmail == "" {
		return invalid("reply_email", "reply email is required")
	}

	subject := "【地域支援Hub】お問い合わせ"
	if in.InquiryType == "adoption" {
		subject = "【地域支援Hub】導入に関するお問い合わせ"
	}
	body := fmt.Sprintf("自治体名: %s\n担当者名: %s\n返信先: %s\n電話番号: %s\n\n----\n%s\n----",
		in.MunicipalityName, in.ContactPersonName, in.ReplyEmail, in.PhoneNumber, in.Content)
	return s.sink.SendWithReplyTo(ctx, s.operatorEmail, "", subject, body, in.ReplyEmail)
}
