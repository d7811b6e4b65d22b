package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/coursehub/coursehub-backend/internal/config"
	"github.com/coursehub/coursehub-backend/internal/database"
	"github.com/coursehub/coursehub-backend/internal/logger"
	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/coursehub/coursehub-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	authService := service.NewAuthService(cfg, repository.NewUserRepository(pool))

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)
	prompt := func(label string) string {
		fmt.Print(label)
		s, _ := reader.ReadString('\n')
		return strings.TrimSpace(s)
	}

	fmt.Println("=== Create New Staff Account ===")

	title := prompt("Enter Title (optional, e.g. Prof. dr): ")

	firstName := prompt("Enter First Name: ")
	if firstName == "" {
		fmt.Println("Error: First name is required")
		return
	}

	lastName := prompt("Enter Last Name: ")
	if lastName == "" {
		fmt.Println("Error: Last name is required")
		return
	}

	email := prompt("Enter Email: ")
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// Role
	var role model.Role
	switch prompt("Role [1] Teacher, [2] StudentService (default 1): ") {
	case "", "1":
		role = model.RoleTeacher
	case "2":
		role = model.RoleStudentService
	default:
		fmt.Println("Error: Role must be 1 or 2")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	user := &model.User{
		Email:     email,
		Title:     title,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
	}

	if err := authService.CreateStaff(ctx, user, password); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			fmt.Printf("Error: %s is already registered\n", email)
			return
		}
		log.Fatal().Err(err).Msg("Failed to create staff account")
	}

	fmt.Printf("\nSuccess! %s '%s' (%s) created with ID: %d\n", user.Role, user.DisplayName(), user.Email, user.ID)
}
