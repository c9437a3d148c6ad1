package main

import (
	"context"
	"log"
	"os"

	"portfolio_api/internal/config"
	"portfolio_api/internal/model"
	"portfolio_api/internal/repository"
	"portfolio_api/internal/utils"

	"github.com/joho/godotenv"
)

// Seeds the admin account, the singleton about document and a starter set of
// content. Safe to re-run: existing users are kept and only empty
// collections get sample data.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPool, err := config.ConnectDB(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	ctx := context.Background()

	if err := seedAdminUser(ctx, repository.NewUserRepository(dbPool)); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seedAbout(ctx, repository.NewCollection[model.About](dbPool, model.CollectionAbout)); err != nil {
		log.Fatalf("Failed to seed about document: %v", err)
	}
	if err := seedContent(ctx, dbPool); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	log.Println("Seeding complete")
}

func seedAdminUser(ctx context.Context, userRepo repository.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Printf("Admin user %s already exists", email)
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}
	log.Printf("Created admin user %s", email)
	return nil
}

func seedAbout(ctx context.Context, about *repository.Collection[model.About]) error {
	count, err := about.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("About document already present, skipping")
		return nil
	}

	doc := model.About{
		FullName:     "Your Name",
		Title:        "Full Stack Developer",
		Bio:          "Edit this biography from the admin console.",
		Location:     "Remote",
		Email:        os.Getenv("ADMIN_EMAIL"),
		ProfileImage: "https://placehold.co/400x400",
	}
	if err := about.Insert(ctx, &doc); err != nil {
		return err
	}
	log.Println("Created about document")
	return nil
}

func seedContent(ctx context.Context, db repository.DB) error {
	projects := repository.NewCollection[model.Project](db, model.CollectionProjects)
	if err := seedCollection(ctx, projects, []model.Project{
		{
			Title:        "E-commerce Platform",
			Description:  "A full-featured e-commerce platform with product management, shopping cart, and payment processing.",
			Technologies: []string{"React", "Node.js", "PostgreSQL"},
			Featured:     true,
		},
		{
			Title:        "Weather Forecast App",
			Description:  "A real-time weather application using modern APIs and geolocation.",
			Technologies: []string{"React", "OpenWeather API"},
		},
	}); err != nil {
		return err
	}

	techStack := repository.NewCollection[model.TechStack](db, model.CollectionTechStack)
	if err := seedCollection(ctx, techStack, []model.TechStack{
		{Name: "Go", Category: "backend", Proficiency: 90},
		{Name: "PostgreSQL", Category: "backend", Proficiency: 80},
		{Name: "React", Category: "frontend", Proficiency: 75},
		{Name: "Docker", Category: "tools", Proficiency: 70},
	}); err != nil {
		return err
	}

	specializations := repository.NewCollection[model.Specialization](db, model.CollectionSpecializations)
	return seedCollection(ctx, specializations, []model.Specialization{
		{
			Title:       "Backend Development",
			Description: "API design, data modelling, authentication, deployment.",
			Icon:        "https://placehold.co/64x64",
		},
		{
			Title:       "Web Development",
			Description: "Responsive interfaces, accessibility, performance.",
			Icon:        "https://placehold.co/64x64",
		},
	})
}

// seedCollection inserts the samples only when the collection is empty
func seedCollection[T any](ctx context.Context, coll *repository.Collection[T], samples []T) error {
	count, err := coll.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Collection %s already has data, skipping", coll.Name())
		return nil
	}
	for i := range samples {
		if err := coll.Insert(ctx, &samples[i]); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d %s documents", len(samples), coll.Name())
	return nil
}
