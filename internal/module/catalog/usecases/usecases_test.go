package usecases_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"booking-portal/internal/module/catalog/mocks"
	"booking-portal/internal/module/catalog/models/entity"
	"booking-portal/internal/module/catalog/models/request"
	"booking-portal/internal/module/catalog/repositories"
	"booking-portal/internal/module/catalog/usecases"
	"booking-portal/internal/pkg/errors"
	log_internal "booking-portal/internal/pkg/log"
	"booking-portal/internal/pkg/session"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log_internal.Nop())
}

func teardown() {
	uc = nil
	repoMock = nil
}

func TestActiveOfferingsReadThrough(t *testing.T) {
	offerings := []entity.Offering{
		{OfferingID: 1, Name: "Jungle Safari", IsActive: true},
		{OfferingID: 2, Name: "Boating", IsActive: false},
	}

	t.Run("miss loads and caches", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("GetCachedList", mock.Anything, repositories.KeyOfferings, "all", mock.Anything).Return(false, nil).Once()
		repoMock.On("ListOfferings", mock.Anything).Return(offerings, nil).Once()
		repoMock.On("CacheList", mock.Anything, repositories.KeyOfferings, "all", offerings).Return(nil).Once()

		active, err := uc.ActiveOfferings(ctx)

		require.NoError(t, err)
		assert.Equal(t, []entity.Offering{offerings[0]}, active)
		repoMock.AssertExpectations(t)
	})

	t.Run("hit skips the backend", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetCachedList", mock.Anything, repositories.KeyOfferings, "all", mock.Anything).
			Run(func(args mock.Arguments) {
				*args.Get(3).(*[]entity.Offering) = offerings
			}).Return(true, nil).Once()

		active, err := uc.ActiveOfferings(context.Background())

		require.NoError(t, err)
		assert.Len(t, active, 1)
		repoMock.AssertNotCalled(t, "ListOfferings", mock.Anything)
	})

	t.Run("broken cache falls back to the backend", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetCachedList", mock.Anything, repositories.KeyOfferings, "all", mock.Anything).
			Return(false, errors.InternalServerError("redis down"))
		repoMock.On("ListOfferings", mock.Anything).Return(offerings, nil)
		repoMock.On("CacheList", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.InternalServerError("redis down"))

		active, err := uc.ActiveOfferings(context.Background())

		require.NoError(t, err)
		assert.Len(t, active, 1)
	})

	t.Run("backend failure is returned", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetCachedList", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		repoMock.On("ListOfferings", mock.Anything).Return(nil, errors.Transport(context.DeadlineExceeded))

		_, err := uc.ActiveOfferings(context.Background())

		assert.True(t, errors.IsTransport(err))
		repoMock.AssertNotCalled(t, "CacheList", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSharedListsLoadWithoutCallerSession(t *testing.T) {
	setup()
	defer teardown()

	ctx := session.WithContext(context.Background(), session.Session{Username: "admin1", AccessToken: "admin-token"})
	repoMock.On("GetCachedList", mock.Anything, repositories.KeyOfferings, "all", mock.Anything).Return(false, nil).Once()
	repoMock.On("ListOfferings", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := session.FromContext(ctx)
		return !ok
	})).Return([]entity.Offering{{OfferingID: 1, IsActive: true}}, nil).Once()
	repoMock.On("CacheList", mock.Anything, repositories.KeyOfferings, "all", mock.Anything).Return(nil).Once()

	active, err := uc.ActiveOfferings(ctx)

	require.NoError(t, err)
	assert.Len(t, active, 1)
	repoMock.AssertExpectations(t)
}

func TestAdminListsBypassCache(t *testing.T) {
	setup()
	defer teardown()

	ctx := session.WithContext(context.Background(), session.Session{Username: "admin1", AccessToken: "admin-token"})
	repoMock.On("ListOfferings", ctx).Return([]entity.Offering{{OfferingID: 1}, {OfferingID: 2}}, nil).Once()
	repoMock.On("ListCategories", ctx).Return([]entity.Category{{CategoryID: 1}}, nil).Once()
	repoMock.On("ListTicketTypes", ctx).Return([]entity.TicketType{{TypeID: 7}}, nil).Once()

	offerings, err := uc.Offerings(ctx)
	require.NoError(t, err)
	assert.Len(t, offerings, 2)

	categories, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	types, err := uc.TicketTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 1)

	repoMock.AssertNotCalled(t, "GetCachedList", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repoMock.AssertNotCalled(t, "CacheList", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConcurrentMissesShareOneLoad(t *testing.T) {
	setup()
	defer teardown()

	var loads int32
	repoMock.On("GetCachedList", mock.Anything, repositories.KeyCategories, "all", mock.Anything).Return(false, nil)
	repoMock.On("ListCategories", mock.Anything).Return(func(ctx context.Context) ([]entity.Category, error) {
		atomic.AddInt32(&loads, 1)
		time.Sleep(100 * time.Millisecond)
		return []entity.Category{{CategoryID: 1, IsActive: true}}, nil
	})
	repoMock.On("CacheList", mock.Anything, repositories.KeyCategories, "all", mock.Anything).Return(nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			categories, err := uc.ActiveCategories(context.Background())
			assert.NoError(t, err)
			assert.Len(t, categories, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestActiveTicketTypes(t *testing.T) {
	setup()
	defer teardown()

	types := []entity.TicketType{{TypeID: 7, OfferingID: 1, UnitPrice: decimal.NewFromInt(500), IsActive: true}}
	repoMock.On("GetCachedList", mock.Anything, repositories.KeyTicketTypes, "active:1,3", mock.Anything).Return(false, nil)
	repoMock.On("ActiveTicketTypesByOfferings", mock.Anything, []int64{1, 3}).Return(types, nil)
	repoMock.On("CacheList", mock.Anything, repositories.KeyTicketTypes, "active:1,3", types).Return(nil)

	got, err := uc.ActiveTicketTypes(context.Background(), "3, 1,3")

	require.NoError(t, err)
	assert.Equal(t, types, got)
}

func TestParseOfferingIDs(t *testing.T) {
	testCases := []struct {
		raw     string
		want    []int64
		wantErr bool
	}{
		{raw: "2,1", want: []int64{1, 2}},
		{raw: " 5 ,,5", want: []int64{5}},
		{raw: "", wantErr: true},
		{raw: "1,x", wantErr: true},
		{raw: "-1", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			ids, err := usecases.ParseOfferingIDs(tc.raw)
			if tc.wantErr {
				assert.Equal(t, 400, errors.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestWritesInvalidateCache(t *testing.T) {
	ctx := session.WithContext(context.Background(), session.Session{Username: "admin1"})

	t.Run("create offering", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("CreateOffering", mock.Anything, request.Offering{Name: "Trek", CreatedBy: "admin1"}).
			Return(entity.Offering{OfferingID: 3, Name: "Trek"}, nil)
		repoMock.On("InvalidateLists", mock.Anything, repositories.KeyOfferings, repositories.KeyTicketTypes).Return(nil).Once()

		offering, err := uc.SaveOffering(ctx, 0, &request.Offering{Name: "Trek"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), offering.OfferingID)
		repoMock.AssertExpectations(t)
	})

	t.Run("update category drops the people limit when extras are off", func(t *testing.T) {
		setup()
		defer teardown()

		limit := 4
		repoMock.On("UpdateCategory", mock.Anything, int64(2), request.Category{Name: "Family"}).
			Return(entity.Category{CategoryID: 2}, nil)
		repoMock.On("InvalidateLists", mock.Anything, repositories.KeyCategories, repositories.KeyTicketTypes).Return(nil).Once()

		_, err := uc.SaveCategory(ctx, 2, &request.Category{Name: "Family", NoOfPeopleAllowed: &limit})

		require.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("failed delete keeps the cache", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("DeleteTicketType", mock.Anything, int64(9)).Return(errors.Conflict("Ticket type in use"))

		err := uc.DeleteTicketType(ctx, 9)

		assert.Equal(t, 409, errors.Code(err))
		repoMock.AssertNotCalled(t, "InvalidateLists", mock.Anything, mock.Anything)
	})

	t.Run("invalidation failure does not fail the write", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("DeleteOffering", mock.Anything, int64(1)).Return(nil)
		repoMock.On("InvalidateLists", mock.Anything, repositories.KeyOfferings, repositories.KeyTicketTypes).
			Return(errors.InternalServerError("redis down"))

		assert.NoError(t, uc.DeleteOffering(ctx, 1))
	})
}

func TestCreateTicketTypePrices(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	_, err := uc.CreateTicketType(ctx, &request.TicketType{CategoryID: 1, OfferingID: 1})
	assert.Equal(t, 400, errors.Code(err))

	_, err = uc.CreateTicketType(ctx, &request.TicketType{CategoryID: 1, OfferingID: 1, UnitPrice: decimal.NewFromInt(100), ExtraPricePerPerson: decimal.NewFromInt(-1)})
	assert.Equal(t, 400, errors.Code(err))

	repoMock.AssertNotCalled(t, "CreateTicketType", mock.Anything, mock.Anything)
}

func TestSpecialDays(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	zero := decimal.Zero

	_, err := uc.CreateSpecialDay(ctx, &request.CreateSpecialDay{Date: "2026-12-25", Name: "Christmas"})
	assert.Equal(t, 400, errors.Code(err))

	_, err = uc.UpdateSpecialDay(ctx, "2026-12-25", &request.UpdateSpecialDay{PriceModifier: &zero})
	assert.Equal(t, 400, errors.Code(err))

	repoMock.On("ToggleSpecialDay", mock.Anything, "2026-12-25").Return(entity.SpecialDay{Date: "2026-12-25", Status: false}, nil)

	day, err := uc.ToggleSpecialDay(ctx, "2026-12-25")
	require.NoError(t, err)
	assert.False(t, day.Status)
}

func TestDeleteUser(t *testing.T) {
	setup()
	defer teardown()

	ctx := session.WithContext(context.Background(), session.Session{Username: "admin1"})

	err := uc.DeleteUser(ctx, "admin1")
	assert.Equal(t, 400, errors.Code(err))

	repoMock.On("DeleteUser", mock.Anything, "ranger").Return(nil)
	assert.NoError(t, uc.DeleteUser(ctx, "ranger"))
}
