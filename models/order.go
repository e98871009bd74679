package models

import "time"

// OrderStatus represents all possible states of a food order
type OrderStatus string

const (
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusOnTheWay  OrderStatus = "on the way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	BuyerID      uint        `json:"buyer_id" gorm:"not null;index"`
	Buyer        User        `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	RestaurantID *uint       `json:"restaurant_id" gorm:"index"`
	Restaurant   *Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Items        []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	// Payment is the order total, computed from the line items at
	// creation and never written again.
	Payment       float64              `json:"payment" gorm:"not null"`
	Status        OrderStatus          `json:"status" gorm:"not null;default:'preparing'"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null;index"`
	FoodID   uint    `json:"food_id" gorm:"not null"`
	Food     Food    `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"` // snapshot price at time of order
	Title    string  `json:"title"`                 // snapshot title
}

// OrderStatusHistory tracks every status change
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
