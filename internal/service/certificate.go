package service

import (
	"context"
	"fmt"

	"volunteerhub-backend/internal/pdf"
	"volunteerhub-backend/internal/repository"
)

type certificateService struct {
	applicationRepo repository.ApplicationRepository
	renderer        *pdf.CertificateRenderer
}

func NewCertificateService(applicationRepo repository.ApplicationRepository, renderer *pdf.CertificateRenderer) CertificateService {
	return &certificateService{
		applicationRepo: applicationRepo,
		renderer:        renderer,
	}
}

func (s *certificateService) Generate(ctx context.Context, applicationID, recruitmentID, volunteerID int32) ([]byte, string, error) {
	data, err := s.applicationRepo.GetCertificateData(ctx, applicationID, recruitmentID, volunteerID)
	if err != nil {
		return nil, "", err
	}
	out, err := s.renderer.Render(data)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("certificate_%d.pdf", applicationID)
	return out, filename, nil
}
