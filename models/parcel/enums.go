package parcel

// PaymentStatus tracks whether the parcel fee has been captured.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// DeliveryStatus is the parcel's position in its shipment lifecycle.
type DeliveryStatus string

const (
	DeliveryStatusPending            DeliveryStatus = "pending"
	DeliveryStatusRiderAssigned      DeliveryStatus = "rider_assigned"
	DeliveryStatusInTransit          DeliveryStatus = "in_transit"
	DeliveryStatusDelivered          DeliveryStatus = "delivered"
	DeliveryStatusWirehouseDelivered DeliveryStatus = "wirehouse_delivered"
)

// CashoutStatus tracks whether the rider has been paid out for the delivery.
type CashoutStatus string

const (
	CashoutStatusNotCashedOut CashoutStatus = "not_cashed_out"
	CashoutStatusCashedOut    CashoutStatus = "cashed_out"
)

func (ds DeliveryStatus) String() string {
	return string(ds)
}

func (ds DeliveryStatus) IsValid() bool {
	switch ds {
	case DeliveryStatusPending, DeliveryStatusRiderAssigned, DeliveryStatusInTransit,
		DeliveryStatusDelivered, DeliveryStatusWirehouseDelivered:
		return true
	default:
		return false
	}
}

// InDelivery reports whether an assigned rider is still responsible for the
// parcel.
func (ds DeliveryStatus) InDelivery() bool {
	return ds == DeliveryStatusRiderAssigned || ds == DeliveryStatusInTransit
}

// InDeliveryStatuses lists the statuses where a rider still holds the parcel.
func InDeliveryStatuses() []DeliveryStatus {
	var statuses []DeliveryStatus
	for _, ds := range GetAllDeliveryStatuses() {
		if ds.InDelivery() {
			statuses = append(statuses, ds)
		}
	}
	return statuses
}

// GetAllDeliveryStatuses returns every valid delivery status.
func GetAllDeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{
		DeliveryStatusPending,
		DeliveryStatusRiderAssigned,
		DeliveryStatusInTransit,
		DeliveryStatusDelivered,
		DeliveryStatusWirehouseDelivered,
	}
}
