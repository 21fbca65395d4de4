package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	employeeDatamodel "github.com/masdika/employee-directory/internal/core/datamodel/employee"
	userDatamodel "github.com/masdika/employee-directory/internal/core/datamodel/user"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			if err := gormDB.Exec("DELETE FROM employees").Error; err != nil {
				log.Fatalf("failed to clear employees: %v", err)
			}
			if err := gormDB.Exec("DELETE FROM users").Error; err != nil {
				log.Fatalf("failed to clear users: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		seedAdminUser(gormDB, cfg.Security.BCryptCost)
		seedEmployees(gormDB)
	},
}

func seedAdminUser(db *gorm.DB, bcryptCost int) {
	adminEmail := "admin@example.com"

	var count int64
	if err := db.Model(&userDatamodel.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		log.Fatalf("failed to check admin user: %v", err)
	}
	if count > 0 {
		fmt.Println("admin user already exists:", adminEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcryptCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	admin := &userDatamodel.User{
		FirstName:    "Admin",
		LastName:     "User",
		Email:        adminEmail,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("failed to insert admin user: %v", err)
	}
	fmt.Println("Seeded admin user:", adminEmail)
}

func seedEmployees(db *gorm.DB) {
	samples := []struct {
		First, Last, Email, Phone, Department, Position string
		Salary                                          string
	}{
		{"Aisha", "Rahman", "aisha.rahman@example.com", "0811223344", "Engineering", "Backend Engineer", "9500.00"},
		{"Budi", "Santoso", "budi.santoso@example.com", "0811223355", "Engineering", "Frontend Engineer", "9000.00"},
		{"Clara", "Wijaya", "clara.wijaya@example.com", "0811223366", "Finance", "Accountant", "7800.00"},
		{"Dimas", "Putra", "dimas.putra@example.com", "0811223377", "Human Resources", "HR Generalist", "7200.00"},
		{"Eka", "Lestari", "eka.lestari@example.com", "0811223388", "Marketing", "Content Strategist", "7000.00"},
	}

	for _, s := range samples {
		var count int64
		if err := db.Model(&employeeDatamodel.Employee{}).Where("email = ?", s.Email).Count(&count).Error; err != nil {
			log.Fatalf("failed to check employee %s: %v", s.Email, err)
		}
		if count > 0 {
			continue
		}

		salary, err := decimal.NewFromString(s.Salary)
		if err != nil {
			log.Fatalf("bad seed salary for %s: %v", s.Email, err)
		}
		phone := s.Phone
		dept := s.Department
		pos := s.Position

		emp := &employeeDatamodel.Employee{
			FirstName:   s.First,
			LastName:    s.Last,
			Email:       s.Email,
			PhoneNumber: &phone,
			Department:  &dept,
			Position:    &pos,
			Salary:      &salary,
			CreatedAt:   time.Now(),
		}
		if err := db.Create(emp).Error; err != nil {
			log.Fatalf("failed to insert employee %s: %v", s.Email, err)
		}
		fmt.Println("Seeded employee:", s.Email)
	}

	fmt.Println("Employees seeded successfully")
}
