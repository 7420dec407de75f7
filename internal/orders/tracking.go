package orders

import (
	"context"
	"time"

	"github.com/br00tm/DeliverIA/internal/models"
)

// Tracking stages shown to the customer. They are a projection of the
// persisted status, computed on every read and never stored.
const (
	StageConfirmed = "confirmed"
	StageOnTheWay  = "ontheway"
	StageDelivered = "delivered"
	StageCancelled = "cancelled"
)

// TrackingInfo is the live view of an order in flight.
type TrackingInfo struct {
	Order              models.Order `json:"order"`
	Stage              string       `json:"stage"`
	EstimatedDelivery  time.Time    `json:"estimatedDelivery"`
	PreparationMinutes int          `json:"preparationTime"`
	DriverName         string       `json:"driverName,omitempty"`
	DriverPhone        string       `json:"driverPhone,omitempty"`
	DriverLicense      string       `json:"driverLicense,omitempty"`
}

// Tracking builds the tracking projection for an order. Delivery is estimated
// 45 minutes out with 25 minutes of preparation; driver details appear only
// while the order is in flight.
func (s *Service) Tracking(ctx context.Context, orderID string) (TrackingInfo, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return TrackingInfo{}, err
	}

	info := TrackingInfo{
		Order:              order,
		Stage:              stageFor(order.Status),
		EstimatedDelivery:  s.now().Add(45 * time.Minute),
		PreparationMinutes: 25,
	}

	if info.Stage == StageConfirmed || info.Stage == StageOnTheWay {
		info.DriverName = "João Silva"
		info.DriverPhone = "(11) 98765-4321"
		info.DriverLicense = "ABC-1234"
	}
	return info, nil
}

func stageFor(status models.OrderStatus) string {
	switch status {
	case models.StatusOnTheWay:
		return StageOnTheWay
	case models.StatusDelivered:
		return StageDelivered
	case models.StatusCancelled:
		return StageCancelled
	default:
		return StageConfirmed
	}
}
