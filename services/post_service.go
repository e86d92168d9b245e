package services

import (
	"errors"
	"log"

	"felt2felt-api/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

type PostService struct {
	DB        *gorm.DB
	sanitizer *bluemonday.Policy
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		DB:        db,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// GetAllPosts is the public forum feed, newest first, comments included.
func (s *PostService) GetAllPosts(c *fiber.Ctx) error {
	var posts []models.Post
	err := s.DB.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		log.Printf("ERROR fetching posts: %v", err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}
	return c.JSON(posts)
}

// CreatePost stores a new post with the author's current rank snapshotted,
// then awards points. The snapshot is taken before the award so the displayed
// rank reflects the rank at authoring time.
func (s *PostService) CreatePost(c *fiber.Ctx) error {
	type Req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		City    string `json:"city"`
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "invalid JSON"})
	}
	if req.Title == "" || req.Content == "" {
		return c.Status(400).JSON(fiber.Map{"msg": "Please include a title and content."})
	}

	userID, _ := c.Locals("user_id").(string)

	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"msg": "User not found."})
		}
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	post := models.Post{
		ID:          uuid.NewString(),
		Title:       s.sanitizer.Sanitize(req.Title),
		Content:     s.sanitizer.Sanitize(req.Content),
		City:        req.City,
		UserID:      user.ID,
		AuthorEmail: user.Email,
		AuthorRank:  user.Rank, // snapshot before the point award below
	}

	if err := s.DB.Create(&post).Error; err != nil {
		log.Printf("ERROR creating post: %v", err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	if err := AwardPoints(s.DB, user.ID, PointsForPost); err != nil {
		log.Printf("⚠️ Failed to award post points to %s: %v", user.Email, err)
	}

	return c.JSON(post)
}

// CreateComment appends a comment with the same rank-snapshot rules.
func (s *PostService) CreateComment(c *fiber.Ctx) error {
	type Req struct {
		Text string `json:"text"`
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "invalid JSON"})
	}
	if req.Text == "" {
		return c.Status(400).JSON(fiber.Map{"msg": "Comment text is required."})
	}

	var post models.Post
	if err := s.DB.First(&post, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"msg": "Post not found"})
		}
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	userID, _ := c.Locals("user_id").(string)

	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"msg": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	comment := models.Comment{
		ID:          uuid.NewString(),
		PostID:      post.ID,
		UserID:      user.ID,
		AuthorEmail: user.Email,
		Text:        s.sanitizer.Sanitize(req.Text),
		AuthorRank:  user.Rank,
	}

	if err := s.DB.Create(&comment).Error; err != nil {
		log.Printf("ERROR creating comment on post %s: %v", post.ID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	if err := AwardPoints(s.DB, user.ID, PointsForComment); err != nil {
		log.Printf("⚠️ Failed to award comment points to %s: %v", user.Email, err)
	}

	var comments []models.Comment
	if err := s.DB.Where("post_id = ?", post.ID).Order("date DESC").Find(&comments).Error; err != nil {
		log.Printf("ERROR fetching comments for post %s: %v", post.ID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	return c.JSON(comments)
}

// AdminDeletePost removes a post and its comments. Admin-only; regular users
// have no delete path at all.
func (s *PostService) AdminDeletePost(c *fiber.Ctx) error {
	var post models.Post
	if err := s.DB.First(&post, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"msg": "Post not found"})
		}
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		log.Printf("ERROR deleting post %s: %v", post.ID, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	return c.JSON(fiber.Map{"msg": "Post successfully deleted by admin."})
}
