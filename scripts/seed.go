package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/atharvaaa699/mishika/internal/infrastructure/clients/postgres"
	"github.com/atharvaaa699/mishika/internal/infrastructure/observability"
	"github.com/atharvaaa699/mishika/pkg/config"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id                uuid PRIMARY KEY,
	email             text NOT NULL,
	full_name         text,
	phone             text,
	avatar_url        text,
	role              text NOT NULL DEFAULT 'user',
	membership_tier   text DEFAULT 'none',
	membership_expiry timestamptz,
	created_at        timestamptz NOT NULL DEFAULT now(),
	updated_at        timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS services (
	id           uuid PRIMARY KEY,
	name         text NOT NULL,
	description  text NOT NULL DEFAULT '',
	category     text NOT NULL,
	price        numeric,
	price_unit   text,
	image_url    text,
	is_available boolean NOT NULL DEFAULT true,
	featured     boolean NOT NULL DEFAULT false,
	created_at   timestamptz NOT NULL DEFAULT now(),
	updated_at   timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bookings (
	id               uuid PRIMARY KEY,
	user_id          uuid NOT NULL REFERENCES profiles(id),
	service_id       uuid NOT NULL,
	start_date       timestamptz NOT NULL,
	end_date         timestamptz,
	status           text NOT NULL DEFAULT 'pending',
	total_amount     numeric NOT NULL DEFAULT 0,
	payment_status   text NOT NULL DEFAULT 'unpaid',
	payment_id       text,
	special_requests text,
	created_at       timestamptz NOT NULL DEFAULT now(),
	updated_at       timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS bookings_user_id_idx ON bookings (user_id);
CREATE INDEX IF NOT EXISTS bookings_service_id_idx ON bookings (service_id);
CREATE INDEX IF NOT EXISTS bookings_created_at_idx ON bookings (created_at DESC);
`

// seedID derives a stable ID so golden evaluation cases can refer to seeded rows
func seedID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mishika:"+kind+":"+name)).String()
}

func price(v float64) *float64 {
	return &v
}

type seedBooking struct {
	member  string
	service string
	amount  float64
	daysAgo int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	observability.InitLogger("mishika-seed", cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}
	defer pgClient.Close()

	ctx := context.Background()
	db := goqu.New("postgres", pgClient.DB())

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `TRUNCATE TABLE bookings, services, profiles CASCADE`); err != nil {
			log.Fatal().Err(err).Msg("Failed to reset tables")
		}
	}

	now := time.Now().UTC()

	// 1. Profiles
	profiles := []struct {
		key  string
		name string
		tier entities.MembershipTier
		role entities.Role
	}{
		{"alice", "Alice Moreau", entities.MembershipTierGold, entities.RoleVIP},
		{"bruno", "Bruno Castellane", entities.MembershipTierSilver, entities.RoleUser},
		{"chen", "Chen Wei", entities.MembershipTierNone, entities.RoleUser},
		{"dara", "Dara Okafor", entities.MembershipTierPlatinum, entities.RoleVIP},
	}
	profileRows := make([]goqu.Record, 0, len(profiles))
	for _, p := range profiles {
		profileRows = append(profileRows, goqu.Record{
			"id":              seedID("profile", p.key),
			"email":           p.key + "@members.mishika.example",
			"full_name":       p.name,
			"role":            string(p.role),
			"membership_tier": string(p.tier),
			"created_at":      now,
			"updated_at":      now,
		})
	}
	insert(ctx, db, "profiles", profileRows)

	// 2. Services; created_at is staggered so catalog order is stable
	services := []struct {
		key      string
		name     string
		category string
		price    *float64
		unit     string
		featured bool
	}{
		{"jet-charter", "Private Jet Charter", "aviation", price(25000), "per flight", false},
		{"heli-transfer", "Helicopter Transfer", "aviation", price(4000), "per transfer", false},
		{"yacht-week", "Mediterranean Yacht Week", "yacht", price(60000), "per week", false},
		{"yacht-day", "Sunset Yacht Day", "yacht", price(8000), "per day", false},
		{"spa-retreat", "Alpine Spa Retreat", "wellness", price(3000), "per stay", false},
		{"private-chef", "Private Chef Dinner", "dining", price(1500), "per evening", false},
		{"villa-amalfi", "Amalfi Coast Villa", "stay", price(20000), "per week", false},
		{"gala-tickets", "Opera Gala Box", "events", price(5000), "per box", true},
		{"art-tour", "After-hours Museum Tour", "culture", nil, "", true},
	}
	serviceRows := make([]goqu.Record, 0, len(services))
	for i, s := range services {
		created := now.Add(-time.Duration(len(services)-i) * time.Hour)
		row := goqu.Record{
			"id":           seedID("service", s.key),
			"name":         s.name,
			"description":  s.name + " arranged by your concierge",
			"category":     s.category,
			"is_available": true,
			"featured":     s.featured,
			"created_at":   created,
			"updated_at":   created,
		}
		if s.price != nil {
			row["price"] = *s.price
		}
		if s.unit != "" {
			row["price_unit"] = s.unit
		}
		serviceRows = append(serviceRows, row)
	}
	insert(ctx, db, "services", serviceRows)

	// 3. Bookings
	bookings := []seedBooking{
		{"alice", "jet-charter", 25000, 40},
		{"alice", "yacht-day", 8000, 10},
		{"bruno", "jet-charter", 24000, 20},
		{"bruno", "heli-transfer", 4000, 5},
		{"bruno", "villa-amalfi", 20000, 3},
		{"chen", "yacht-day", 8000, 12},
		{"chen", "spa-retreat", 3000, 2},
		{"dara", "yacht-week", 60000, 25},
		{"dara", "jet-charter", 26000, 8},
		{"dara", "yacht-day", 9000, 1},
	}
	bookingRows := make([]goqu.Record, 0, len(bookings))
	for i, b := range bookings {
		created := now.AddDate(0, 0, -b.daysAgo)
		bookingRows = append(bookingRows, goqu.Record{
			"id":             seedID("booking", b.member+":"+b.service+":"+strconv.Itoa(i)),
			"user_id":        seedID("profile", b.member),
			"service_id":     seedID("service", b.service),
			"start_date":     created.AddDate(0, 0, 14),
			"status":         string(entities.BookingStatusConfirmed),
			"total_amount":   b.amount,
			"payment_status": string(entities.PaymentStatusPaid),
			"created_at":     created,
			"updated_at":     created,
		})
	}
	insert(ctx, db, "bookings", bookingRows)

	log.Info().
		Int("profiles", len(profileRows)).
		Int("services", len(serviceRows)).
		Int("bookings", len(bookingRows)).
		Msg("Seeding complete")
}

func insert(ctx context.Context, db *goqu.Database, table string, rows []goqu.Record) {
	query, args, err := db.Insert(table).Rows(rows).OnConflict(goqu.DoNothing()).ToSQL()
	if err != nil {
		log.Fatal().Err(err).Str("table", table).Msg("Failed to build insert")
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		log.Fatal().Err(err).Str("table", table).Msg("Failed to seed table")
	}
	log.Info().Str("table", table).Int("rows", len(rows)).Msg("Seeded table")
}
