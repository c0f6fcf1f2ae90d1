package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"crm-lead-tracker/config"
	"crm-lead-tracker/pkg/auth"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := cfg.DebugLoginEmail
	password := "password123"
	name := "Demo User"
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	var clientID string
	err = db.QueryRow(`
		INSERT INTO clients (user_id, name, business_name, business_type, email, status, asking_price, notes)
		VALUES ($1, 'Margaret Hill', 'Sunrise Care Home', 'care home', 'margaret@sunrisecare.example', 'active', 450000, 'Owner considering retirement; good occupancy.')
		RETURNING id
	`, userID).Scan(&clientID)
	if err != nil {
		log.Fatalf("failed to seed client: %v", err)
	}
	fmt.Printf("seeded client: id=%s\n", clientID)

	var buyerID string
	err = db.QueryRow(`
		INSERT INTO buyers (user_id, name, email, company, budget, requirements, status)
		VALUES ($1, 'James Okafor', 'james@okaforgroup.example', 'Okafor Group', 600000, 'Care homes in the south east, 20+ beds', 'active')
		RETURNING id
	`, userID).Scan(&buyerID)
	if err != nil {
		log.Fatalf("failed to seed buyer: %v", err)
	}
	fmt.Printf("seeded buyer: id=%s\n", buyerID)

	if _, err := db.Exec(`
		INSERT INTO client_buyers (client_id, buyer_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, clientID, buyerID); err != nil {
		log.Fatalf("failed to link buyer: %v", err)
	}

	due := time.Now().AddDate(0, 0, 7)
	if _, err := db.Exec(`
		INSERT INTO alerts (user_id, client_id, title, description, type, due_date)
		VALUES ($1, $2, 'Follow up with Margaret', 'Call about the updated valuation.', 'warning', $3)
	`, userID, clientID, due); err != nil {
		log.Fatalf("failed to seed alert: %v", err)
	}
	fmt.Println("seeded alert")
}
