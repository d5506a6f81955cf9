package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

func TestAdminService_RegisterOrganization(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockOrgRepo := new(MockOrganizationRepo)
		mockPrefRepo := new(MockPrefectureRepo)
		svc := service.NewAdminService(mockOrgRepo, mockPrefRepo, nil, nil, nil)

		mockPrefRepo.On("GetByName", ctx, "東京都").Return(&domain.Prefecture{ID: 13, Name: "東京都"}, nil).Once()
		mockOrgRepo.On("Create", ctx, mock.MatchedBy(func(o *domain.Organization) bool {
			return o.PrefectureID == int32(13) && o.Name == "多摩市" && o.IsActive && o.ApplicationDate == "2026-04-01"
		})).Return(nil).Once()

		org, err := svc.RegisterOrganization(ctx, "東京都", "多摩市", "2026-04-01")
		assert.NoError(t, err)
		assert.Equal(t, "多摩市", org.Name)
		mockOrgRepo.AssertExpectations(t)
	})

	t.Run("UnknownPrefecture", func(t *testing.T) {
		mockOrgRepo := new(MockOrganizationRepo)
		mockPrefRepo := new(MockPrefectureRepo)
		svc := service.NewAdminService(mockOrgRepo, mockPrefRepo, nil, nil, nil)

		mockPrefRepo.On("GetByName", ctx, "架空県").Return(nil, errors.New("not found")).Once()

		_, err := svc.RegisterOrganization(ctx, "架空県", "どこか市", "")
		var ve *service.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, "prefecture_name", ve.Field)
		mockOrgRepo.AssertNotCalled(t, "Create")
	})

	t.Run("ApplicationDateDefaultsToToday", func(t *testing.T) {
		mockOrgRepo := new(MockOrganizationRepo)
		mockPrefRepo := new(MockPrefectureRepo)
		svc := service.NewAdminService(mockOrgRepo, mockPrefRepo, nil, nil, nil)

		today := time.Now().Format("2006-01-02")
		mockPrefRepo.On("GetByName", ctx, "東京都").Return(&domain.Prefecture{ID: 13}, nil).Once()
		mockOrgRepo.On("Create", ctx, mock.MatchedBy(func(o *domain.Organization) bool {
			return o.ApplicationDate == today
		})).Return(nil).Once()

		_, err := svc.RegisterOrganization(ctx, "東京都", "多摩市", "")
		assert.NoError(t, err)
		mockOrgRepo.AssertExpectations(t)
	})
}

func TestAdminService_CreateAdminUser(t *testing.T) {
	ctx := context.Background()

	t.Run("HashesPassword", func(t *testing.T) {
		mockAdminRepo := new(MockAdminUserRepo)
		svc := service.NewAdminService(nil, nil, mockAdminRepo, nil, nil)

		mockAdminRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.AdminUser) bool {
			return a.Role == domain.AdminRoleOrgAdmin &&
				bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("staff-pass")) == nil
		})).Return(nil).Once()

		err := svc.CreateAdminUser(ctx, 3, "tama_admin", "staff-pass", domain.AdminRoleOrgAdmin)
		assert.NoError(t, err)
		mockAdminRepo.AssertExpectations(t)
	})

	t.Run("RejectsUnknownRole", func(t *testing.T) {
		mockAdminRepo := new(MockAdminUserRepo)
		svc := service.NewAdminService(nil, nil, mockAdminRepo, nil, nil)

		err := svc.CreateAdminUser(ctx, 3, "tama_admin", "staff-pass", domain.AdminRole("Root"))
		var ve *service.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, "role", ve.Field)
		mockAdminRepo.AssertNotCalled(t, "Create")
	})
}

func TestAdminService_UpdateAdminUserKeepsPasswordWhenBlank(t *testing.T) {
	mockAdminRepo := new(MockAdminUserRepo)
	svc := service.NewAdminService(nil, nil, mockAdminRepo, nil, nil)
	ctx := context.Background()

	mockAdminRepo.On("Update", ctx, "tama_admin", int32(3), domain.AdminRoleStaff, "").Return(nil).Once()

	err := svc.UpdateAdminUser(ctx, "tama_admin", 3, domain.AdminRoleStaff, "")
	assert.NoError(t, err)
	mockAdminRepo.AssertExpectations(t)
}

func TestAdminService_DeleteSuperAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("RefusesSelfDelete", func(t *testing.T) {
		mockSuperRepo := new(MockSuperAdminRepo)
		svc := service.NewAdminService(nil, nil, nil, mockSuperRepo, nil)

		err := svc.DeleteSuperAdmin(ctx, "root", "root")
		assert.ErrorIs(t, err, service.ErrSelfDelete)
		mockSuperRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("DeletesOthers", func(t *testing.T) {
		mockSuperRepo := new(MockSuperAdminRepo)
		svc := service.NewAdminService(nil, nil, nil, mockSuperRepo, nil)

		mockSuperRepo.On("Delete", ctx, "former_operator").Return(nil).Once()

		err := svc.DeleteSuperAdmin(ctx, "root", "former_operator")
		assert.NoError(t, err)
		mockSuperRepo.AssertExpectations(t)
	})
}
