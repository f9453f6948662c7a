package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"assignment-admin-backend/internal/config"
	"assignment-admin-backend/internal/database"
	apperrors "assignment-admin-backend/internal/errors"
	"assignment-admin-backend/internal/repository"
	"assignment-admin-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Structures mirroring the YAML seed files
type FieldData struct {
	Key          string `yaml:"key"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description,omitempty"`
	DisplayOrder int    `yaml:"display_order"`
}

type OrganizationTypeData struct {
	Name         string      `yaml:"name"`
	Slug         string      `yaml:"slug"`
	DisplayName  string      `yaml:"display_name"`
	IconName     string      `yaml:"icon_name,omitempty"`
	DisplayOrder int         `yaml:"display_order"`
	Fields       []FieldData `yaml:"fields,omitempty"`
}

type OrganizationTypesFile struct {
	OrganizationTypes []OrganizationTypeData `yaml:"organization_types"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	orgTypes, err := loadOrganizationTypes(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organization types: %w", err)
	}

	validate := validator.New()
	orgTypeRepo := repository.NewOrganizationTypeRepository(db)
	orgTypeService := service.NewOrganizationTypeService(orgTypeRepo, validate)
	fieldService := service.NewFieldDefinitionService(repository.NewFieldDefinitionRepository(db), orgTypeRepo, validate)

	orgTypeCreated, fieldCreated, fieldTotal := 0, 0, 0
	for _, data := range orgTypes {
		orgType, created, err := ensureOrganizationType(orgTypeService, data)
		if err != nil {
			return fmt.Errorf("failed to create organization type %s: %w", data.Slug, err)
		}
		if created {
			orgTypeCreated++
		}

		n, err := ensureFields(fieldService, orgType, data.Fields)
		if err != nil {
			return fmt.Errorf("failed to create fields for %s: %w", data.Slug, err)
		}
		fieldCreated += n
		fieldTotal += len(data.Fields)
	}
	log.Printf("📋 Organization types: %d created, %d total", orgTypeCreated, len(orgTypes))
	log.Printf("📋 Assignment fields: %d created, %d total", fieldCreated, fieldTotal)

	return nil
}

func loadOrganizationTypes(dataDir string) ([]OrganizationTypeData, error) {
	var all []OrganizationTypeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organization_types") {
			var file OrganizationTypesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file.OrganizationTypes...)
		}
		return nil
	})

	return all, err
}

// ensureOrganizationType looks the type up by slug and creates it when missing
func ensureOrganizationType(svc service.OrganizationTypeServiceInterface, data OrganizationTypeData) (*service.OrganizationTypeResponse, bool, error) {
	existing, err := svc.GetBySlug(data.Slug)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrOrganizationTypeNotFound) {
		return nil, false, err
	}

	created, err := svc.Create(&service.CreateOrganizationTypeRequest{
		Name:         data.Name,
		Slug:         data.Slug,
		DisplayName:  data.DisplayName,
		IconName:     data.IconName,
		DisplayOrder: data.DisplayOrder,
	})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// ensureFields creates the fields whose key is not yet defined for the type, active or not
func ensureFields(svc service.FieldDefinitionServiceInterface, orgType *service.OrganizationTypeResponse, fields []FieldData) (int, error) {
	existing, err := svc.ListAll(orgType.ID)
	if err != nil {
		return 0, err
	}
	known := make(map[string]bool, len(existing))
	for _, def := range existing {
		known[def.FieldKey] = true
	}

	created := 0
	for _, field := range fields {
		if known[field.Key] {
			continue
		}
		if _, err := svc.Create(&service.CreateFieldDefinitionRequest{
			OrganizationTypeID: orgType.ID,
			FieldKey:           field.Key,
			FieldTitle:         field.Title,
			FieldDescription:   field.Description,
			DisplayOrder:       field.DisplayOrder,
		}); err != nil {
			return created, fmt.Errorf("field %s: %w", field.Key, err)
		}
		known[field.Key] = true
		created++
	}
	return created, nil
}
