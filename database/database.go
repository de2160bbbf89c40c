package database

import (
	"fmt"
	"log"
	"time"

	"workshophub/config"
	"workshophub/models"
	"workshophub/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB
var REDIS *redis.Client

// InitDB initializes the database connection and migrates the models and populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=Europe/Paris", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.Workshop{},
		&models.Task{},
		&models.Group{},
		&models.Participant{},
		&models.Judge{},
		&models.LeaderboardEntry{},
		&models.Announcement{},
	)

	Populate()
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}
}

// InitRedis initializes the Redis client used for caching
func InitRedis() {
	REDIS = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress,
		Password: config.RedisPassword,
		DB:       0,
	})
}

// Populate populates the database with a demo workshop if requested and the database is empty
func Populate() {
	if config.SeedDemoData == "" {
		return
	}

	var countWorkshop int64
	DB.Model(&models.Workshop{}).Count(&countWorkshop)
	if countWorkshop != 0 {
		return
	}

	workshop := models.Workshop{
		Title:       "Demo Workshop",
		Description: "Seeded workshop for local development",
		Status:      models.WorkshopStatusDraft,
	}
	if err := DB.Create(&workshop).Error; err != nil {
		log.Println("Failed to seed demo workshop: ", err)
		return
	}
	log.Println("Demo workshop created")

	for i := 1; i <= 3; i++ {
		task := models.Task{
			WorkshopID: workshop.ID,
			Title:      fmt.Sprintf("Task %d", i),
			TaskOrder:  i,
			CreatedAt:  time.Now(),
		}
		if err := DB.Create(&task).Error; err != nil {
			log.Println("Failed to seed demo task: ", err)
		}
	}

	for _, name := range []string{"Team Alpha", "Team Beta"} {
		group := models.Group{
			WorkshopID: workshop.ID,
			Name:       name,
			GroupCode:  utils.GenerateGroupCode(config.DefaultGroupCodeConfig.Length),
		}
		if err := DB.Create(&group).Error; err != nil {
			log.Println("Failed to seed demo group: ", err)
			continue
		}
		entry := models.LeaderboardEntry{
			WorkshopID: workshop.ID,
			GroupID:    group.ID,
		}
		if err := DB.Create(&entry).Error; err != nil {
			log.Println("Failed to seed demo leaderboard entry: ", err)
		}
	}
	log.Println("Demo groups created")
}
