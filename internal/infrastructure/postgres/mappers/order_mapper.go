package mappers

import (
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
	"gorm.io/datatypes"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:           model.ID,
		ExternalID:   model.ExternalID,
		LocationID:   model.LocationID,
		LocationName: model.Location.Name,
		Status:       domain.OrderStatus(model.Status),
		Amount:       model.Amount,
		RefundAmount: model.RefundAmount,
		Fees: domain.FeeBreakdown{
			PlatformFee:  model.PlatformFee,
			ProcessorFee: model.ProcessorFee,
			NetAmount:    model.NetAmount,
		},
		OrderDate: model.OrderDate.UTC(),
		Customer: domain.CustomerInfo{
			Name:            model.CustomerName,
			Email:           model.CustomerEmail,
			Phone:           model.CustomerPhone,
			BillingAddress:  model.BillingAddress,
			ShippingAddress: model.ShippingAddress,
		},
		Source:       domain.OrderSource(model.Source),
		ConnectionID: model.ConnectionID,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:              order.ID,
		ExternalID:      order.ExternalID,
		LocationID:      order.LocationID,
		Status:          string(order.Status),
		Amount:          order.Amount,
		RefundAmount:    order.RefundAmount,
		PlatformFee:     order.Fees.PlatformFee,
		ProcessorFee:    order.Fees.ProcessorFee,
		NetAmount:       order.Fees.NetAmount,
		OrderDate:       order.OrderDate.UTC(),
		CustomerName:    order.Customer.Name,
		CustomerEmail:   order.Customer.Email,
		CustomerPhone:   order.Customer.Phone,
		BillingAddress:  order.Customer.BillingAddress,
		ShippingAddress: order.Customer.ShippingAddress,
		Source:          string(order.Source),
		ConnectionID:    order.ConnectionID,
	}
}

func ToGORMRawOrder(raw *domain.RawOrder) *models.RawOrderModel {
	return &models.RawOrderModel{
		ExternalID:   raw.ExternalID,
		ConnectionID: raw.ConnectionID,
		Payload:      datatypes.JSON(raw.Payload),
	}
}
