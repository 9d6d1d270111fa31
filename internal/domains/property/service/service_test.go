package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"recanto/config"
	"recanto/infras/otel/mocks"
	s3Mocks "recanto/infras/s3/mocks"
	propertyMocks "recanto/internal/domains/property/mocks"
	"recanto/internal/domains/property/model"
	"recanto/internal/domains/property/model/dto"
	"recanto/internal/domains/property/service"
	cacheMocks "recanto/shared/cache/mocks"
	"recanto/shared/constant"
	gDto "recanto/shared/dto"
	"recanto/shared/failure"
)

const (
	ownerID    = "owner-id-456"
	propertyID = "property-id-789"
)

func ownerContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, ownerID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleOwner)
}

func validProperty() model.Property {
	return model.Property{
		ID:            propertyID,
		OwnerID:       ownerID,
		Title:         "Chalé na Serra",
		City:          "Gramado",
		State:         "RS",
		Capacity:      6,
		PricePerNight: 25500,
		Active:        true,
	}
}

func newService(t *testing.T) (service.Property, *propertyMocks.MockProperty, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := propertyMocks.NewMockProperty(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "recanto-media"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	// cache writes and invalidations run in detached goroutines
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockCache, mockS3
}

func TestPropertyService_Create(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	req := dto.CreatePropertyRequest{
		Title:         "Chalé na Serra",
		Description:   "Vista para o vale",
		City:          "Gramado",
		State:         "RS",
		Capacity:      6,
		PricePerNight: 25500,
	}

	t.Run("owner creates a listing", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, property model.Property) error {
				assert.Equal(t, ownerID, property.OwnerID)
				assert.NotEmpty(t, property.ID)
				assert.True(t, property.Active)

				return nil
			})

		res, err := svc.Create(ownerContext(), req)
		assert.NoError(t, err)
		assert.Equal(t, "Chalé na Serra", res.Title)
	})

	t.Run("missing identity", func(t *testing.T) {
		_, err := svc.Create(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("guest role cannot create a listing", func(t *testing.T) {
		ctx := context.WithValue(
			context.WithValue(context.Background(), constant.ContextKeyUserID, "guest-id-123"),
			constant.ContextKeyUserRole, constant.RoleUser)

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})

	t.Run("admin can create a listing", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		ctx := context.WithValue(
			context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id"),
			constant.ContextKeyUserRole, constant.RoleAdmin)

		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		_, err := svc.Create(ownerContext(), req)
		assert.Error(t, err)
	})
}

func TestPropertyService_Get(t *testing.T) {
	svc, mockRepo, mockCache, _ := newService(t)

	t.Run("cache miss loads from repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.NotFound("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validProperty(), nil)

		res, err := svc.Get(context.Background(), propertyID)
		assert.NoError(t, err)
		assert.Equal(t, propertyID, res.ID)
	})

	t.Run("unknown property", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.NotFound("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{}, nil)

		_, err := svc.Get(context.Background(), propertyID)
		assert.Error(t, err)
	})
}

func TestPropertyService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache, _ := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(failure.NotFound("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Property{validProperty()}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, res.Properties, 1)
	assert.Equal(t, 1, res.TotalData)
}

func TestPropertyService_Update(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	req := dto.UpdatePropertyRequest{Title: "Chalé renovado"}

	t.Run("owner updates own listing", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validProperty(), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(ownerContext(), req, propertyID)
		assert.NoError(t, err)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validProperty(), nil)

		ctx := context.WithValue(
			context.WithValue(context.Background(), constant.ContextKeyUserID, "someone-else"),
			constant.ContextKeyUserRole, constant.RoleUser)

		err := svc.Update(ctx, req, propertyID)
		assert.Error(t, err)
	})

	t.Run("admin can update any listing", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validProperty(), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		ctx := context.WithValue(
			context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id"),
			constant.ContextKeyUserRole, constant.RoleAdmin)

		err := svc.Update(ctx, req, propertyID)
		assert.NoError(t, err)
	})
}

func TestPropertyService_Delete(t *testing.T) {
	svc, mockRepo, _, mockS3 := newService(t)

	t.Run("delete removes stored images", func(t *testing.T) {
		property := validProperty()
		property.Images = pq.StringArray{"https://cdn.example.com/recanto-media/property/image-1.jpg"}

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		mockS3.EXPECT().
			GetObjectNameFromURL("recanto-media", property.Images[0]).
			Return("image-1.jpg")

		mockS3.EXPECT().
			DeleteFile(gomock.Any(), "recanto-media", model.EntityName, "image-1.jpg").
			Return(nil)

		err := svc.Delete(ownerContext(), propertyID)
		assert.NoError(t, err)
	})

	t.Run("unknown property", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{}, nil)

		err := svc.Delete(ownerContext(), propertyID)
		assert.Error(t, err)
	})
}
