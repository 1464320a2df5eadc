package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

// Service резолвер token-действий над бронированиями
// Токен - единственный авторизационный фактор: ссылки приходят из писем
// и SMS, никакой аутентификации за ними нет
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр резолвера
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// CancelByToken отменяет бронирование по cancel-токену
// Удаление условное и атомарное: из конкурирующих запросов с одним токеном
// выигрывает ровно один, остальные получают ErrTokenNotUsable.
// После успешной отмены токен навсегда непригоден - это и есть single-use
func (s *Service) CancelByToken(ctx context.Context, token string) (string, error) {
	bookingID, err := s.bookingRepo.DeleteByCancelToken(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Не логируем сам токен - он секрет
			s.logger.Warn("CancelByToken: token did not resolve to a live booking")
			return "", ErrTokenNotUsable
		}
		s.logger.Error("CancelByToken: repository error: %v", err)
		return "", fmt.Errorf("%w: CancelByToken - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelByToken: booking id=%s cancelled", bookingID)
	return bookingID, nil
}

// ResolveReschedule резолвит reschedule-токен в бронирование
// Запись не изменяется: управление передаётся интерфейсу бронирования,
// токен можно предъявлять повторно, пока человек не завершит перенос
func (s *Service) ResolveReschedule(ctx context.Context, token string) (*models.RescheduleResponse, error) {
	booking, err := s.bookingRepo.GetByRescheduleToken(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ResolveReschedule: token did not resolve to a live booking")
			return nil, ErrTokenNotUsable
		}
		s.logger.Error("ResolveReschedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: ResolveReschedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ResolveReschedule: booking id=%s handed off to rebooking flow", booking.ID)
	return models.FromDomainBooking(booking), nil
}
