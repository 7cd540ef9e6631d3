package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/Nycksionia/atende50/config"
	"github.com/Nycksionia/atende50/db"
	"github.com/Nycksionia/atende50/models"
	"github.com/Nycksionia/atende50/services"
	"golang.org/x/term"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Admin{}, &models.Session{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin ===")
	fmt.Println()

	fmt.Print("Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	// Get password securely
	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	password := string(passwordBytes)
	fmt.Println() // New line after password input

	// Validate inputs
	if username == "" || password == "" {
		log.Fatal("Username and password are required")
	}

	// Check if admin already exists
	var existing models.Admin
	if err := db.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		log.Fatalf("Admin %s already exists", username)
	}

	// Hash password
	hashedPassword, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &models.Admin{
		Username: username,
		Password: hashedPassword,
	}

	if err := db.DB.Create(admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Println()
	fmt.Println("✓ Admin created successfully!")
	fmt.Printf("  ID: %s\n", admin.ID)
	fmt.Printf("  Username: %s\n", admin.Username)
	fmt.Println()
	fmt.Printf("The admin can now log in at %s/login\n", cfg.AppURL)
}
