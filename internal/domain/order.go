package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusUnperformed OrderStatus = "unperformed"
	OrderStatusInWork      OrderStatus = "in work"
	OrderStatusDelivery    OrderStatus = "delivery"
	OrderStatusCompleted   OrderStatus = "completed"
	OrderStatusRejected    OrderStatus = "rejected"
	OrderStatusFailed      OrderStatus = "failed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusUnperformed, OrderStatusInWork, OrderStatusDelivery,
		OrderStatusCompleted, OrderStatusRejected, OrderStatusFailed:
		return true
	}
	return false
}

// FinishedStatuses are the terminal statuses excluded from the manager report.
var FinishedStatuses = []OrderStatus{
	OrderStatusCompleted,
	OrderStatusRejected,
	OrderStatusFailed,
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentNotChose PaymentMethod = "not chose"
)

type Order struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Firstname    string              `bson:"firstname" json:"firstname"`
	Lastname     string              `bson:"lastname" json:"lastname"`
	Phonenumber  string              `bson:"phonenumber" json:"phonenumber"`
	Address      string              `bson:"address" json:"address"`
	Status       OrderStatus         `bson:"status" json:"status"`
	PayBy        PaymentMethod       `bson:"pay_by" json:"pay_by"`
	Comment      string              `bson:"comment" json:"comment"`
	Items        []OrderItem         `bson:"items" json:"items"`
	RestaurantID *primitive.ObjectID `bson:"restaurant_id,omitempty" json:"restaurant_id,omitempty"`
	RegisteredAt time.Time           `bson:"registered_at" json:"registered_at"`
	CalledAt     *time.Time          `bson:"called_at,omitempty" json:"called_at,omitempty"`
	DeliveredAt  *time.Time          `bson:"delivered_at,omitempty" json:"delivered_at,omitempty"`
}

// OrderItem captures the product price at order time, decoupled from
// later price changes.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Price is derived from the item snapshots, never stored.
func (o *Order) Price() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (o *Order) Finished() bool {
	for _, s := range FinishedStatuses {
		if o.Status == s {
			return true
		}
	}
	return false
}

func (o *Order) ProductIDs() []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}
