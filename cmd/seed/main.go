package main

import (
	"context"
	"log"
	"time"

	"github.com/Kirojava/Arsenic/internal/config"
	"github.com/Kirojava/Arsenic/internal/db"
	"github.com/Kirojava/Arsenic/internal/model"
	"github.com/Kirojava/Arsenic/internal/repository"
)

// Seeds demo content (committees, the summit event, founding team) when the
// committees table is empty. Safe to run repeatedly.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Committee{},
		&model.Registration{},
		&model.TeamMember{},
		&model.Event{},
		&model.GalleryImage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	committeeRepo := repository.NewCommitteeRepository(gormDB)

	count, err := committeeRepo.Count(ctx)
	if err != nil {
		log.Fatalf("count committees: %v", err)
	}
	if count > 0 {
		log.Println("committees already present, nothing to seed")
		return
	}

	log.Println("seeding database...")

	committees := []model.Committee{
		{
			Name:         "United Nations Security Council",
			Abbreviation: "UNSC",
			Description:  "The primary organ responsible for maintenance of international peace and security.",
			Agenda:       "Addressing the Situation in the Middle East",
			Capacity:     15,
			ImageURL:     "https://upload.wikimedia.org/wikipedia/commons/thumb/0/05/UN_Security_Council.jpg/1200px-UN_Security_Council.jpg",
		},
		{
			Name:         "World Health Organization",
			Abbreviation: "WHO",
			Description:  "Specialized agency responsible for international public health.",
			Agenda:       "Pandemic Preparedness and Response in Developing Nations",
			Capacity:     50,
			ImageURL:     "https://www.who.int/images/default-source/infographics/who-emblem.png",
		},
	}
	for i := range committees {
		if err := committeeRepo.Create(ctx, &committees[i]); err != nil {
			log.Fatalf("seed committee %s: %v", committees[i].Abbreviation, err)
		}
	}

	eventRepo := repository.NewEventRepository(gormDB)
	summit := model.Event{
		Name:        "Arsenic Summit 2025",
		Date:        time.Date(2025, time.November, 22, 0, 0, 0, 0, time.UTC),
		Location:    "Grand Convention Center",
		Description: "The premier Model United Nations conference of the year.",
		Status:      model.EventStatusUpcoming,
	}
	if err := eventRepo.Create(ctx, &summit); err != nil {
		log.Fatalf("seed event: %v", err)
	}

	teamRepo := repository.NewTeamMemberRepository(gormDB)
	founder := model.TeamMember{
		Name:         "Alex Rivera",
		Role:         "Founder",
		Title:        "Founder",
		Bio:          "Visionary leader with 10+ years of MUN experience.",
		DisplayOrder: 1,
	}
	if err := teamRepo.Create(ctx, &founder); err != nil {
		log.Fatalf("seed team member: %v", err)
	}

	secGen := model.TeamMember{
		Name:         "Sarah Chen",
		Role:         "Executive",
		Title:        "Secretary General",
		Bio:          "Leading the secretariat for 2025.",
		ParentID:     &founder.ID,
		DisplayOrder: 2,
	}
	if err := teamRepo.Create(ctx, &secGen); err != nil {
		log.Fatalf("seed team member: %v", err)
	}

	log.Println("database seeded")
}
