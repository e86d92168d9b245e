package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"

	"felt2felt-api/models"
	"felt2felt-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB         *gorm.DB
	Mailer     *Mailer
	JWTSecret  string
	BackendURL string // base URL used to build verification links
}

func NewUserService(db *gorm.DB, mailer *Mailer, jwtSecret, backendURL string) *UserService {
	return &UserService{DB: db, Mailer: mailer, JWTSecret: jwtSecret, BackendURL: backendURL}
}

// Register creates an unverified account and emails a verification link.
// The first account ever created becomes admin; the count-then-insert runs
// under a table lock so two concurrent first registrations cannot both win.
func (s *UserService) Register(c *fiber.Ctx) error {
	type Req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "invalid JSON"})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"errors": []fiber.Map{
			{"msg": "Email and password are required", "param": "email"},
		}})
	}

	var existing models.User
	if err := s.DB.First(&existing, "email = ?", req.Email).Error; err == nil {
		return c.Status(400).JSON(fiber.Map{"msg": "User already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("ERROR checking existing user: %v", err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	tokenBytes := make([]byte, 20)
	if _, err := rand.Read(tokenBytes); err != nil {
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}
	verificationToken := hex.EncodeToString(tokenBytes)

	user := models.User{
		ID:                uuid.NewString(),
		Email:             req.Email,
		Password:          string(hashed),
		VerificationToken: verificationToken,
		Role:              models.RoleUser,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Serialize first-admin election across concurrent registrations.
		if err := tx.Exec("LOCK TABLE users IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			user.Role = models.RoleAdmin
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(400).JSON(fiber.Map{"msg": "User already exists"})
		}
		log.Printf("ERROR creating user: %v", err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	verificationURL := fmt.Sprintf("%s/api/users/verify/%s", s.BackendURL, verificationToken)
	html := fmt.Sprintf(
		`<h1>Welcome to Felt2Felt!</h1><p>Thank you for registering. Please click the link below to verify your email address:</p><a href="%s" target="_blank">Verify Email</a><p>If you did not create an account, please ignore this email.</p>`,
		verificationURL)

	if err := s.Mailer.Send(user.Email, "Welcome to Felt2Felt! Please Verify Your Email", html); err != nil {
		log.Printf("❌ Failed to send verification email to %s: %v", user.Email, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	return c.Status(201).JSON(fiber.Map{"msg": "Registration successful. Please check your email to verify your account."})
}

// Verify consumes a verification token. Tokens are single-use: the field is
// cleared once the account is marked verified.
func (s *UserService) Verify(c *fiber.Ctx) error {
	token := c.Params("token")

	var user models.User
	if err := s.DB.First(&user, "verification_token = ? AND verification_token <> ''", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(400).SendString("Invalid verification token.")
		}
		log.Printf("ERROR looking up verification token: %v", err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	user.IsVerified = true
	user.VerificationToken = ""
	if err := s.DB.Save(&user).Error; err != nil {
		log.Printf("ERROR verifying user %s: %v", user.Email, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	c.Type("html")
	return c.SendString("<h1>Email successfully verified!</h1><p>You can now log in to your account.</p>")
}

// Login checks the credentials and returns a one-hour JWT carrying id + role.
func (s *UserService) Login(c *fiber.Ctx) error {
	type Req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "invalid JSON"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := s.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(400).JSON(fiber.Map{"msg": "Incorrect Username and/or Password"})
		}
		log.Printf("ERROR fetching user for login: %v", err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	if !user.IsVerified {
		return c.Status(400).JSON(fiber.Map{"msg": "Please verify your email before logging in."})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "Incorrect Username and/or Password"})
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.JWTSecret)
	if err != nil {
		log.Printf("ERROR signing token for %s: %v", user.Email, err)
		return c.Status(500).JSON(fiber.Map{"msg": "Server Error"})
	}

	return c.JSON(fiber.Map{"token": token})
}
