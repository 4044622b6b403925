// Command seed populates a fresh ledger with the demo accounts and a demo
// registration code. It is idempotent: accounts that already exist are
// skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/config"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/fixtures"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hq/attendly-backend-go/internal/repository/jsonstore"
	"github.com/attendly-hq/attendly-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	var (
		employeeRepo employee.EmployeeRepository
		codeRepo     employee.RegistrationCodeRepository
	)
	switch cfg.Ledger.StorageDriver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		employeeRepo = postgresql.NewEmployeeRepository(db)
		codeRepo = postgresql.NewRegistrationCodeRepository(db)
	case "jsonfile":
		store, err := jsonstore.New(cfg.Ledger.DataDir)
		if err != nil {
			log.Fatal("Error opening data directory: ", err)
		}
		employeeRepo = jsonstore.NewEmployeeRepository(store)
		codeRepo = jsonstore.NewRegistrationCodeRepository(store)
	default:
		log.Fatal("Unsupported storage driver: ", cfg.Ledger.StorageDriver)
	}

	ctx := context.Background()

	for _, account := range fixtures.DemoAccounts() {
		hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash demo password: ", err)
		}
		account.Employee.PasswordHash = string(hash)

		created, err := employeeRepo.Create(ctx, account.Employee)
		if errors.Is(err, employee.ErrEmailExists) {
			fmt.Println("Skipping existing account:", account.Employee.Email)
			continue
		}
		if err != nil {
			log.Fatal("Failed to seed account: ", err)
		}
		fmt.Printf("Seeded %s (%s) as employee %d\n", created.Name, created.Email, created.ID)
	}

	for _, code := range fixtures.DemoRegistrationCodes(time.Now()) {
		if _, err := codeRepo.GetByCode(ctx, code.Code); err == nil {
			fmt.Println("Skipping existing registration code:", code.Code)
			continue
		}
		if _, err := codeRepo.Create(ctx, code); err != nil {
			log.Fatal("Failed to seed registration code: ", err)
		}
		fmt.Println("Seeded registration code:", code.Code)
	}
}
