package main

import (
	"fmt"
	"log"
	"os"

	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Operator CLI for tasks that have no web UI: promoting the first
// admin, revoking access, and quick triage from a shell.
func main() {
	_ = godotenv.Load()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "user"),
		envOr("DB_PASSWORD", "password"),
		envOr("DB_NAME", "campusvoice"),
		envOr("DB_PORT", "5432"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	s := storage.NewStorageService(db, nil) // no redis needed for the CLI

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "grant-admin":
		requireArgs(3, "Usage: admin grant-admin <email>")
		profile, err := s.GetProfileByEmail(os.Args[2])
		if err != nil {
			log.Fatalf("lookup failed: %v", err)
		}
		if err := s.GrantAdmin(profile.ID); err != nil {
			log.Fatalf("grant failed: %v", err)
		}
		fmt.Printf("%s (%s) is now an admin.\n", profile.Name, profile.Email)

	case "revoke-admin":
		requireArgs(3, "Usage: admin revoke-admin <email>")
		profile, err := s.GetProfileByEmail(os.Args[2])
		if err != nil {
			log.Fatalf("lookup failed: %v", err)
		}
		if err := s.RevokeAdmin(profile.ID); err != nil {
			log.Fatalf("revoke failed: %v", err)
		}
		fmt.Printf("%s (%s) is no longer an admin.\n", profile.Name, profile.Email)

	case "list-complaints":
		status := ""
		if len(os.Args) > 2 {
			status = os.Args[2]
			if !models.ValidStatus(status) {
				log.Fatalf("unknown status %q", status)
			}
		}
		complaints, err := s.ListComplaints(status)
		if err != nil {
			log.Fatalf("list failed: %v", err)
		}
		for _, c := range complaints {
			fmt.Printf("%s  [%-11s/%-6s]  %s\n", c.ID, c.Status, c.Priority, c.Title)
		}

	case "set-status":
		requireArgs(4, "Usage: admin set-status <complaint_id> <status>")
		status := os.Args[3]
		if !models.ValidStatus(status) {
			log.Fatalf("unknown status %q (use %q, %q or %q)",
				status, models.StatusPending, models.StatusInProgress, models.StatusResolved)
		}
		complaint, err := s.GetComplaintByID(os.Args[2])
		if err != nil {
			log.Fatalf("lookup failed: %v", err)
		}
		complaint.Status = status
		if err := s.UpdateComplaint(complaint); err != nil {
			log.Fatalf("update failed: %v", err)
		}
		// Direct storage write: no notifications or survey trigger.
		// Use the web API for student-visible transitions.
		fmt.Printf("Complaint %s is now %s.\n", complaint.ID, status)

	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: admin <grant-admin|revoke-admin|list-complaints|set-status> [args]")
	os.Exit(1)
}

func requireArgs(n int, msg string) {
	if len(os.Args) < n {
		fmt.Println(msg)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
