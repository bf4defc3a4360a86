package usecases

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"booking-portal/internal/module/booking/models/entity"
	"booking-portal/internal/module/booking/models/request"
	"booking-portal/internal/pkg/errors"
)

// MinHoursBeforeVisit is the reschedule cutoff, counted to the start of the
// visit day.
const MinHoursBeforeVisit = 12

const dateLayout = "2006-01-02"

func parseDate(value string, loc *time.Location) (time.Time, error) {
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	return time.ParseInLocation(dateLayout, value, loc)
}

// HoursUntilVisit counts whole hours from now to midnight of the visit day
// in the venue timezone, rounded down.
func HoursUntilVisit(visitDate string, now time.Time, loc *time.Location) (int, error) {
	visit, err := parseDate(visitDate, loc)
	if err != nil {
		return 0, err
	}
	return int(math.Floor(visit.Sub(now).Hours())), nil
}

// CheckReschedule returns the reason booking may not move to newVisitDate,
// or nil.
func CheckReschedule(booking entity.BookingResult, newVisitDate string, now time.Time, loc *time.Location) error {
	switch booking.BookingStatus {
	case entity.BookingCancelled:
		return errors.UnprocessableEntity("Cannot reschedule a cancelled booking")
	case entity.BookingCompleted:
		return errors.UnprocessableEntity("Cannot reschedule a completed booking")
	}

	hours, err := HoursUntilVisit(booking.VisitDate, now, loc)
	if err != nil {
		return errors.BadGateway(fmt.Sprintf("booking %s has an unreadable visit date", booking.ID))
	}
	if hours < MinHoursBeforeVisit {
		return errors.UnprocessableEntity(fmt.Sprintf(
			"Cannot reschedule within %d hours of visit date. You have %d hours until your visit date.",
			MinHoursBeforeVisit, hours))
	}

	current, _ := parseDate(booking.VisitDate, loc)
	next, err := parseDate(newVisitDate, loc)
	if err != nil {
		return errors.BadRequest("invalid new visit date")
	}
	if next.Equal(current) {
		return errors.UnprocessableEntity("New date must be different from current visit date")
	}

	y, m, d := now.In(loc).Date()
	if !next.After(time.Date(y, m, d, 0, 0, 0, 0, loc)) {
		return errors.UnprocessableEntity("New visit date must be after today")
	}

	return nil
}

func (u *usecase) FindBooking(ctx context.Context, bookingID string) (entity.BookingResult, error) {
	record, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error find booking %s: %v", bookingID, err))
		if errors.Code(err) == http.StatusNotFound {
			return entity.BookingResult{}, errors.NotFound("Booking not found")
		}
		return entity.BookingResult{}, err
	}

	booking, ok := record.Normalize()
	if !ok {
		booking.ID = bookingID
	}
	return booking, nil
}

func (u *usecase) RescheduleBooking(ctx context.Context, bookingID string, req *request.Reschedule) (entity.BookingResult, error) {
	if err := u.validate.Struct(req); err != nil {
		return entity.BookingResult{}, errors.BadRequest(err.Error())
	}

	booking, err := u.FindBooking(ctx, bookingID)
	if err != nil {
		return entity.BookingResult{}, err
	}

	if err := CheckReschedule(booking, req.NewVisitDate, u.opts.Now(), u.opts.Location); err != nil {
		u.log.Ctx(ctx).Info(fmt.Sprintf("reschedule of booking %s refused: %v", bookingID, err))
		return entity.BookingResult{}, err
	}

	record, err := u.repo.RescheduleBooking(ctx, bookingID, request.RescheduleBody{
		NewVisitDate: req.NewVisitDate,
		UpdatedBy:    "STAFF",
	})
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error reschedule booking %s: %v", bookingID, err))
		return entity.BookingResult{}, err
	}

	updated, ok := record.Normalize()
	if !ok {
		updated.ID = bookingID
	}
	return updated, nil
}
