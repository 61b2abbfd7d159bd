package main

import (
	"log"
	"os"
	"strings"

	"Band_Plan/internal/model"
	"Band_Plan/internal/pkg"
	"Band_Plan/internal/repository/mysql"
	"Band_Plan/internal/repository/redis"
	"Band_Plan/internal/router"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	dsn := envOr("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/bandplan?charset=utf8mb4&parseTime=True")
	if err := mysql.InitDB(dsn); err != nil {
		panic(err)
	}

	// 连接 redis
	if err := redis.Init(envOr("REDIS_ADDR", "127.0.0.1:6379"), os.Getenv("REDIS_PASSWORD"), 0); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.GroupMember{},
		&model.Instrument{},
		&model.AvailabilityMark{},
		&model.Event{},
		&model.EventAssignment{},
	)

	// kafka 通知通道，没配 broker 就不发
	var producer *pkg.KafkaProducer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		p, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: strings.Split(brokers, ","),
			Topic:   envOr("KAFKA_TOPIC", "bandplan-notifications"),
		})
		if err != nil {
			log.Fatalf("kafka init: %v", err)
		}
		producer = p
		defer producer.Close()
	}

	emailCfg := pkg.SMTPConfig{
		Host:     envOr("SMTP_HOST", "smtp.example.com"),
		Port:     587,
		Username: envOr("SMTP_USER", "no-reply@example.com"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     envOr("SMTP_FROM", "BandPlan <no-reply@example.com>"),
	}

	// Gin
	r := router.InitRouter(emailCfg, producer)
	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
