package models

import "time"

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Food struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	ImageURL     string    `json:"image_url"`
	FoodTags     string    `json:"food_tags"`
	Category     string    `json:"category"`
	Code         string    `json:"code"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Rating       float64   `json:"rating" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
