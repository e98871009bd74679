package models

import "time"

type Restaurant struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     *uint     `json:"owner_id" gorm:"index"`
	Owner       *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Title       string    `json:"title" gorm:"not null"`
	ImageURL    string    `json:"image_url"`
	LogoURL     string    `json:"logo_url"`
	Time        string    `json:"time"`
	Pickup      bool      `json:"pickup" gorm:"default:true"`
	Delivery    bool      `json:"delivery" gorm:"default:true"`
	IsOpen      bool      `json:"is_open" gorm:"default:true"`
	Rating      float64   `json:"rating" gorm:"default:0"`
	RatingCount int       `json:"rating_count" gorm:"default:0"`
	Code        string    `json:"code"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Foods       []Food    `json:"foods,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
