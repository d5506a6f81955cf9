package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/service"
)

func TestApplicationService_ApplyDuplicate(t *testing.T) {
	mockAppRepo := new(MockApplicationRepo)
	svc := service.NewApplicationService(mockAppRepo, nil)
	ctx := context.Background()

	mockAppRepo.On("Create", ctx, int32(5), int32(9)).Return(nil).Once()
	assert.NoError(t, svc.Apply(ctx, 5, 9))

	mockAppRepo.On("Create", ctx, int32(5), int32(9)).Return(repository.ErrDuplicate).Once()
	err := svc.Apply(ctx, 5, 9)
	assert.ErrorIs(t, err, service.ErrAlreadyApplied)

	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_BatchApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("AllOwned", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		svc := service.NewApplicationService(mockAppRepo, nil)

		ids := []int32{1, 2, 3}
		mockAppRepo.On("FilterOwnedIDs", ctx, int32(10), ids).Return([]int32{1, 2, 3}, nil).Once()
		// Only two were still Pending.
		mockAppRepo.On("ApprovePending", ctx, []int32{1, 2, 3}).Return(int64(2), nil).Once()

		updated, err := svc.BatchApprove(ctx, 10, ids)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), updated)
		mockAppRepo.AssertExpectations(t)
	})

	t.Run("ForeignIDRefusesWholeBatch", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		svc := service.NewApplicationService(mockAppRepo, nil)

		ids := []int32{1, 2, 99}
		mockAppRepo.On("FilterOwnedIDs", ctx, int32(10), ids).Return([]int32{1, 2}, nil).Once()

		_, err := svc.BatchApprove(ctx, 10, ids)
		assert.ErrorIs(t, err, service.ErrForbidden)
		mockAppRepo.AssertNotCalled(t, "ApprovePending")
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		svc := service.NewApplicationService(new(MockApplicationRepo), nil)
		_, err := svc.BatchApprove(ctx, 10, nil)
		var ve *service.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestApplicationService_UpdateStatusValidation(t *testing.T) {
	mockAppRepo := new(MockApplicationRepo)
	svc := service.NewApplicationService(mockAppRepo, nil)
	ctx := context.Background()

	err := svc.UpdateStatus(ctx, 1, 10, "Banana")
	var ve *service.ValidationError
	assert.ErrorAs(t, err, &ve)
	mockAppRepo.AssertNotCalled(t, "UpdateStatus")
}
