package models

type Book struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	Title           string  `json:"title" gorm:"not null"`
	Author          string  `json:"author" gorm:"not null"`
	PublicationDate *string `json:"publication_date"`
	ISBN            string  `json:"isbn" gorm:"size:13;unique;not null"`
}
