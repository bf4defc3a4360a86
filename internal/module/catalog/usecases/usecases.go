package usecases

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"golang.org/x/sync/singleflight"

	"booking-portal/internal/module/catalog/models/entity"
	"booking-portal/internal/module/catalog/models/request"
	"booking-portal/internal/module/catalog/repositories"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/session"
)

const variantAll = "all"

type usecase struct {
	repo  repositories.Repositories
	log   *otelzap.Logger
	loads singleflight.Group
}

type Usecase interface {
	// public
	ActiveOfferings(ctx context.Context) ([]entity.Offering, error)
	ActiveCategories(ctx context.Context) ([]entity.Category, error)
	ActiveTicketTypes(ctx context.Context, offeringIDs string) ([]entity.TicketType, error)
	// admin
	Offerings(ctx context.Context) ([]entity.Offering, error)
	SaveOffering(ctx context.Context, id int64, req *request.Offering) (entity.Offering, error)
	DeleteOffering(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]entity.Category, error)
	SaveCategory(ctx context.Context, id int64, req *request.Category) (entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	TicketTypes(ctx context.Context) ([]entity.TicketType, error)
	CreateTicketType(ctx context.Context, req *request.TicketType) (entity.TicketType, error)
	DeleteTicketType(ctx context.Context, id int64) error
	Settings(ctx context.Context) ([]entity.Setting, error)
	SaveSetting(ctx context.Context, id int64, req *request.Setting) (entity.Setting, error)
	DeleteSetting(ctx context.Context, id int64) error
	SpecialDays(ctx context.Context) ([]entity.SpecialDay, error)
	SpecialDay(ctx context.Context, date string) (entity.SpecialDay, error)
	CreateSpecialDay(ctx context.Context, req *request.CreateSpecialDay) (entity.SpecialDay, error)
	UpdateSpecialDay(ctx context.Context, date string, req *request.UpdateSpecialDay) (entity.SpecialDay, error)
	ToggleSpecialDay(ctx context.Context, date string) (entity.SpecialDay, error)
	DeleteSpecialDay(ctx context.Context, date string) error
	Users(ctx context.Context) ([]entity.User, error)
	CreateUser(ctx context.Context, req *request.User) (entity.User, error)
	DeleteUser(ctx context.Context, username string) error
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// readThrough serves a public list from the cache, loading and storing it on
// a miss. Concurrent misses for the same variant share one backend call,
// made anonymously and detached from any one caller. A broken cache
// degrades to a direct load.
func readThrough[T any](ctx context.Context, u *usecase, key, variant string, load func(context.Context) ([]T, error)) ([]T, error) {
	var items []T
	hit, err := u.repo.GetCachedList(ctx, key, variant, &items)
	if err != nil {
		u.log.Ctx(ctx).Warn(fmt.Sprintf("error read cache %s/%s: %v", key, variant, err))
	}
	if hit {
		return items, nil
	}

	v, err, _ := u.loads.Do(key+"|"+variant, func() (interface{}, error) {
		loadCtx := session.Anonymous(context.WithoutCancel(ctx))
		items, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		if err := u.repo.CacheList(loadCtx, key, variant, items); err != nil {
			u.log.Ctx(ctx).Warn(fmt.Sprintf("error write cache %s/%s: %v", key, variant, err))
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

// invalidate drops cached lists after a write. Ticket types carry offering
// and category names, so they go stale with either.
func (u *usecase) invalidate(ctx context.Context, keys ...string) {
	if err := u.repo.InvalidateLists(ctx, keys...); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error invalidate cache: %v", err))
	}
}

func createdBy(ctx context.Context) string {
	if s, ok := session.FromContext(ctx); ok {
		return s.Username
	}
	return ""
}

// Offerings is the admin list, loaded with the caller's session and never
// cached.
func (u *usecase) Offerings(ctx context.Context) ([]entity.Offering, error) {
	return u.repo.ListOfferings(ctx)
}

func (u *usecase) ActiveOfferings(ctx context.Context) ([]entity.Offering, error) {
	all, err := readThrough(ctx, u, repositories.KeyOfferings, variantAll, u.repo.ListOfferings)
	if err != nil {
		return nil, err
	}

	active := make([]entity.Offering, 0, len(all))
	for _, o := range all {
		if o.IsActive {
			active = append(active, o)
		}
	}
	return active, nil
}

func (u *usecase) SaveOffering(ctx context.Context, id int64, req *request.Offering) (entity.Offering, error) {
	var (
		offering entity.Offering
		err      error
	)
	if id == 0 {
		req.CreatedBy = createdBy(ctx)
		offering, err = u.repo.CreateOffering(ctx, *req)
	} else {
		offering, err = u.repo.UpdateOffering(ctx, id, *req)
	}
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error save offering %d: %v", id, err))
		return entity.Offering{}, err
	}

	u.invalidate(ctx, repositories.KeyOfferings, repositories.KeyTicketTypes)
	return offering, nil
}

func (u *usecase) DeleteOffering(ctx context.Context, id int64) error {
	if err := u.repo.DeleteOffering(ctx, id); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error delete offering %d: %v", id, err))
		return err
	}

	u.invalidate(ctx, repositories.KeyOfferings, repositories.KeyTicketTypes)
	return nil
}

func (u *usecase) Categories(ctx context.Context) ([]entity.Category, error) {
	return u.repo.ListCategories(ctx)
}

func (u *usecase) ActiveCategories(ctx context.Context) ([]entity.Category, error) {
	all, err := readThrough(ctx, u, repositories.KeyCategories, variantAll, u.repo.ListCategories)
	if err != nil {
		return nil, err
	}

	active := make([]entity.Category, 0, len(all))
	for _, c := range all {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

func (u *usecase) SaveCategory(ctx context.Context, id int64, req *request.Category) (entity.Category, error) {
	if !req.ExtraPersonsAllowed {
		req.NoOfPeopleAllowed = nil
	}

	var (
		category entity.Category
		err      error
	)
	if id == 0 {
		req.CreatedBy = createdBy(ctx)
		category, err = u.repo.CreateCategory(ctx, *req)
	} else {
		category, err = u.repo.UpdateCategory(ctx, id, *req)
	}
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error save category %d: %v", id, err))
		return entity.Category{}, err
	}

	u.invalidate(ctx, repositories.KeyCategories, repositories.KeyTicketTypes)
	return category, nil
}

func (u *usecase) DeleteCategory(ctx context.Context, id int64) error {
	if err := u.repo.DeleteCategory(ctx, id); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error delete category %d: %v", id, err))
		return err
	}

	u.invalidate(ctx, repositories.KeyCategories, repositories.KeyTicketTypes)
	return nil
}

func (u *usecase) TicketTypes(ctx context.Context) ([]entity.TicketType, error) {
	return u.repo.ListTicketTypes(ctx)
}

// ParseOfferingIDs reads a comma separated id list into a sorted, distinct
// slice.
func ParseOfferingIDs(raw string) ([]int64, error) {
	seen := map[int64]bool{}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.BadRequest(fmt.Sprintf("invalid offering id %q", part))
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, errors.BadRequest("Please select at least one offering")
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (u *usecase) ActiveTicketTypes(ctx context.Context, offeringIDs string) ([]entity.TicketType, error) {
	ids, err := ParseOfferingIDs(offeringIDs)
	if err != nil {
		return nil, err
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return readThrough(ctx, u, repositories.KeyTicketTypes, "active:"+strings.Join(parts, ","),
		func(ctx context.Context) ([]entity.TicketType, error) {
			return u.repo.ActiveTicketTypesByOfferings(ctx, ids)
		})
}

func (u *usecase) CreateTicketType(ctx context.Context, req *request.TicketType) (entity.TicketType, error) {
	if !req.UnitPrice.IsPositive() {
		return entity.TicketType{}, errors.BadRequest("unit price must be greater than zero")
	}
	if req.ExtraPricePerPerson.IsNegative() {
		return entity.TicketType{}, errors.BadRequest("extra price per person cannot be negative")
	}

	req.CreatedBy = createdBy(ctx)
	ticketType, err := u.repo.CreateTicketType(ctx, *req)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error create ticket type: %v", err))
		return entity.TicketType{}, err
	}

	u.invalidate(ctx, repositories.KeyTicketTypes)
	return ticketType, nil
}

func (u *usecase) DeleteTicketType(ctx context.Context, id int64) error {
	if err := u.repo.DeleteTicketType(ctx, id); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error delete ticket type %d: %v", id, err))
		return err
	}

	u.invalidate(ctx, repositories.KeyTicketTypes)
	return nil
}

func (u *usecase) Settings(ctx context.Context) ([]entity.Setting, error) {
	return u.repo.ListSettings(ctx)
}

func (u *usecase) SaveSetting(ctx context.Context, id int64, req *request.Setting) (entity.Setting, error) {
	if id == 0 {
		return u.repo.CreateSetting(ctx, *req)
	}
	return u.repo.UpdateSetting(ctx, id, *req)
}

func (u *usecase) DeleteSetting(ctx context.Context, id int64) error {
	return u.repo.DeleteSetting(ctx, id)
}

func (u *usecase) SpecialDays(ctx context.Context) ([]entity.SpecialDay, error) {
	return u.repo.ListSpecialDays(ctx)
}

func (u *usecase) SpecialDay(ctx context.Context, date string) (entity.SpecialDay, error) {
	return u.repo.FindSpecialDay(ctx, date)
}

func (u *usecase) CreateSpecialDay(ctx context.Context, req *request.CreateSpecialDay) (entity.SpecialDay, error) {
	if !req.PriceModifier.IsPositive() {
		return entity.SpecialDay{}, errors.BadRequest("price modifier must be greater than zero")
	}
	return u.repo.CreateSpecialDay(ctx, *req)
}

func (u *usecase) UpdateSpecialDay(ctx context.Context, date string, req *request.UpdateSpecialDay) (entity.SpecialDay, error) {
	if req.PriceModifier != nil && !req.PriceModifier.IsPositive() {
		return entity.SpecialDay{}, errors.BadRequest("price modifier must be greater than zero")
	}
	return u.repo.UpdateSpecialDay(ctx, date, *req)
}

func (u *usecase) ToggleSpecialDay(ctx context.Context, date string) (entity.SpecialDay, error) {
	return u.repo.ToggleSpecialDay(ctx, date)
}

func (u *usecase) DeleteSpecialDay(ctx context.Context, date string) error {
	return u.repo.DeleteSpecialDay(ctx, date)
}

func (u *usecase) Users(ctx context.Context) ([]entity.User, error) {
	return u.repo.ListUsers(ctx)
}

func (u *usecase) CreateUser(ctx context.Context, req *request.User) (entity.User, error) {
	user, err := u.repo.CreateUser(ctx, *req)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error create user %s: %v", req.Username, err))
		return entity.User{}, err
	}

	u.log.Ctx(ctx).Info(fmt.Sprintf("user %s created in group %s by %s", user.Username, req.UserGroup, createdBy(ctx)))
	return user, nil
}

func (u *usecase) DeleteUser(ctx context.Context, username string) error {
	if username == createdBy(ctx) {
		return errors.BadRequest("You cannot delete your own account")
	}
	return u.repo.DeleteUser(ctx, username)
}
