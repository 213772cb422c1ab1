package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ishankanani/Library-Management/config"
	"github.com/ishankanani/Library-Management/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddBook validates and inserts a new book.
func AddBook(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data provided"})
		return
	}

	title, ok := data["title"].(string)
	if !ok || title == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Title must be a string"})
		return
	}
	author, ok := data["author"].(string)
	if !ok || author == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Author must be a string"})
		return
	}
	isbn, ok := data["isbn"].(string)
	if !ok || isbn == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "ISBN must be a string"})
		return
	}

	var publicationDate *string
	if raw, present := data["publication_date"]; present && raw != nil {
		s, ok := raw.(string)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Publication date must be a string"})
			return
		}
		publicationDate = &s
	}

	if len(isbn) != 13 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ISBN must be 13 characters long"})
		return
	}

	var existing models.Book
	err := config.DB.Where("isbn = ?", isbn).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Book with this ISBN already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add book"})
		return
	}

	book := models.Book{
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		PublicationDate: publicationDate,
	}
	if err := config.DB.Create(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add book"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Book added successfully"})
}

// GetBooks serves both lookup modes on GET /books. When an id or author
// query parameter is present it searches with not-found semantics;
// otherwise it lists every book matching the optional search substring.
func GetBooks(c *gin.Context) {
	query := c.Request.URL.Query()
	if _, hasID := query["id"]; hasID {
		searchBooks(c, query.Get("id"), query.Get("author"))
		return
	}
	if _, hasAuthor := query["author"]; hasAuthor {
		searchBooks(c, "", query.Get("author"))
		return
	}

	pattern := "%" + strings.ToLower(c.Query("search")) + "%"
	books := make([]models.Book, 0)
	if err := config.DB.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", pattern, pattern).Find(&books).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch books"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": books})
}

// searchBooks resolves the id/author search branch of GET /books.
func searchBooks(c *gin.Context, idParam, author string) {
	switch {
	case idParam != "" && author != "":
		id, convErr := strconv.Atoi(idParam)
		var book models.Book
		err := gorm.ErrRecordNotFound
		if convErr == nil {
			err = config.DB.Where("id = ? AND author = ?", id, author).First(&book).Error
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No book found with the given ID and author"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch books"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"books": []models.Book{book}})

	case idParam != "":
		id, convErr := strconv.Atoi(idParam)
		var book models.Book
		err := gorm.ErrRecordNotFound
		if convErr == nil {
			err = config.DB.First(&book, id).Error
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found with the given ID"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch books"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"books": []models.Book{book}})

	case author != "":
		pattern := "%" + strings.ToLower(author) + "%"
		var books []models.Book
		if err := config.DB.Where("LOWER(author) LIKE ?", pattern).Find(&books).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch books"})
			return
		}
		if len(books) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No books found for the given author"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"books": books})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide either an id or an author to search"})
	}
}

// UpdateBook overwrites the fields present in the request body and leaves
// the rest untouched. Update performs no field validation.
func UpdateBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}

	var book models.Book
	if err := config.DB.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update book"})
		return
	}

	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data provided"})
		return
	}

	if v, ok := data["title"].(string); ok {
		book.Title = v
	}
	if v, ok := data["author"].(string); ok {
		book.Author = v
	}
	if v, ok := data["publication_date"].(string); ok {
		book.PublicationDate = &v
	}
	if v, ok := data["isbn"].(string); ok {
		book.ISBN = v
	}

	if err := config.DB.Save(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update book"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book updated successfully"})
}

// DeleteBook removes a book by id.
func DeleteBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}

	var book models.Book
	if err := config.DB.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete book"})
		return
	}

	if err := config.DB.Delete(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete book"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}
