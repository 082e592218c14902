package main

import (
	"context"
	"log"
	"math"
	"time"

	"bootcamp-api/internal/config"
	"bootcamp-api/internal/database"
	"bootcamp-api/internal/models"
	"bootcamp-api/pkg/auth"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	userIDs := seedUsers(ctx, mongoDB.Database)
	bootcampIDs := seedBootcamps(ctx, mongoDB.Database, userIDs)
	seedCourses(ctx, mongoDB.Database, bootcampIDs, userIDs)
	seedReviews(ctx, mongoDB.Database, bootcampIDs, userIDs)

	log.Println("Seed completed successfully!")
}

func clearCollection(ctx context.Context, db *mongo.Database, name string) {
	if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear %s: %v", name, err)
	}
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")
	clearCollection(ctx, db, "users")

	password, _ := auth.HashPassword("password123")
	now := time.Now()

	users := []interface{}{
		models.User{
			Name:      "Admin Account",
			Email:     "admin@bootcamp.dev",
			Role:      models.RoleAdmin,
			Password:  password,
			CreatedAt: now,
		},
		models.User{
			Name:      "John Doe",
			Email:     "john@devworks.com",
			Role:      models.RolePublisher,
			Password:  password,
			CreatedAt: now,
		},
		models.User{
			Name:      "Sasha Ryan",
			Email:     "sasha@moderntech.com",
			Role:      models.RolePublisher,
			Password:  password,
			CreatedAt: now,
		},
		models.User{
			Name:      "Kevin Smith",
			Email:     "kevin@example.com",
			Role:      models.RoleUser,
			Password:  password,
			CreatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seeded %d users", len(result.InsertedIDs))

	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}
	return userIDs
}

func seedBootcamps(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) []primitive.ObjectID {
	collection := db.Collection("bootcamps")
	clearCollection(ctx, db, "bootcamps")

	now := time.Now()

	bootcamps := []models.Bootcamp{
		{
			Name:        "Devworks Bootcamp",
			Description: "Devworks is a full stack JavaScript Bootcamp located in the heart of Boston that focuses on the technologies you need to get a high paying job as a web developer",
			Website:     "https://devworks.com",
			Phone:       "(111) 111-1111",
			Email:       "enroll@devworks.com",
			Location: models.Location{
				Type:             "Point",
				Coordinates:      []float64{-71.104028, 42.350846},
				FormattedAddress: "233 Bay State Rd, Boston, MA 02215, US",
				Street:           "233 Bay State Rd",
				City:             "Boston",
				State:            "MA",
				Zipcode:          "02215",
				Country:          "US",
			},
			Careers:       []string{"Web Development", "UI/UX", "Business"},
			Housing:       true,
			JobAssistance: true,
			AcceptGi:      true,
			UserID:        userIDs[1],
		},
		{
			Name:        "ModernTech Bootcamp",
			Description: "ModernTech has one goal, and that is to make you a rockstar developer and/or designer with a six figure salary. We teach both development and UI/UX",
			Website:     "https://moderntech.com",
			Phone:       "(222) 222-2222",
			Email:       "enroll@moderntech.com",
			Location: models.Location{
				Type:             "Point",
				Coordinates:      []float64{-71.525909, 41.483657},
				FormattedAddress: "220 Pawtucket St, Lowell, MA 01854, US",
				Street:           "220 Pawtucket St",
				City:             "Lowell",
				State:            "MA",
				Zipcode:          "01854",
				Country:          "US",
			},
			Careers:       []string{"Web Development", "UI/UX", "Mobile Development"},
			Housing:       false,
			JobAssistance: true,
			JobGuarantee:  false,
			AcceptGi:      true,
			UserID:        userIDs[2],
		},
	}

	var docs []interface{}
	for _, b := range bootcamps {
		b.Slug = slug.Make(b.Name)
		b.Photo = models.DefaultPhoto
		b.CreatedAt = now
		docs = append(docs, b)
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed bootcamps: %v", err)
	}
	log.Printf("Seeded %d bootcamps", len(result.InsertedIDs))

	var bootcampIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		bootcampIDs = append(bootcampIDs, id.(primitive.ObjectID))
	}
	return bootcampIDs
}

func seedCourses(ctx context.Context, db *mongo.Database, bootcampIDs, userIDs []primitive.ObjectID) {
	collection := db.Collection("courses")
	clearCollection(ctx, db, "courses")

	now := time.Now()

	courses := []models.Course{
		{
			Title:                "Front End Web Development",
			Description:          "This course will provide you with all of the essentials to become a successful frontend web developer. You will learn to master HTML, CSS and front end JavaScript, along with tools like Git, VSCode and front end frameworks like Vue",
			Weeks:                8,
			Tuition:              8000,
			MinimumSkill:         models.SkillBeginner,
			ScholarshipAvailable: true,
			BootcampID:           bootcampIDs[0],
			UserID:               userIDs[1],
		},
		{
			Title:                "Full Stack Web Development",
			Description:          "In this course you will learn full stack web development, first learning all about the frontend, then the backend with technologies like Node.js, Express and MongoDB",
			Weeks:                12,
			Tuition:              10000,
			MinimumSkill:         models.SkillIntermediate,
			BootcampID:           bootcampIDs[0],
			UserID:               userIDs[1],
		},
		{
			Title:                "UI/UX",
			Description:          "In this course you will learn to create beautiful interfaces. It is a mix of design and development to create modern user experiences on both web and mobile",
			Weeks:                12,
			Tuition:              10000,
			MinimumSkill:         models.SkillIntermediate,
			BootcampID:           bootcampIDs[1],
			UserID:               userIDs[2],
		},
		{
			Title:                "Web Design & Development",
			Description:          "Get started building websites and web apps. In this course you will learn HTML, CSS, JavaScript and responsive design principles",
			Weeks:                10,
			Tuition:              12000,
			MinimumSkill:         models.SkillBeginner,
			ScholarshipAvailable: true,
			BootcampID:           bootcampIDs[1],
			UserID:               userIDs[2],
		},
	}

	var docs []interface{}
	for _, c := range courses {
		c.CreatedAt = now
		docs = append(docs, c)
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed courses: %v", err)
	}
	log.Printf("Seeded %d courses", len(result.InsertedIDs))

	setAverages(ctx, db, "tuition", "averageCost", bootcampIDs, true)
}

func seedReviews(ctx context.Context, db *mongo.Database, bootcampIDs, userIDs []primitive.ObjectID) {
	collection := db.Collection("reviews")
	clearCollection(ctx, db, "reviews")

	now := time.Now()

	reviews := []models.Review{
		{
			Title:      "Learned a ton",
			Text:       "The instructors were great, and the curriculum kept pace with what employers actually want",
			Rating:     9,
			BootcampID: bootcampIDs[0],
			UserID:     userIDs[3],
		},
		{
			Title:      "Solid fundamentals",
			Text:       "Good coverage of the basics but the later weeks felt rushed",
			Rating:     7,
			BootcampID: bootcampIDs[1],
			UserID:     userIDs[3],
		},
	}

	var docs []interface{}
	for _, r := range reviews {
		r.CreatedAt = now
		docs = append(docs, r)
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed reviews: %v", err)
	}
	log.Printf("Seeded %d reviews", len(result.InsertedIDs))

	setAverages(ctx, db, "rating", "averageRating", bootcampIDs, false)
}

// setAverages recomputes a bootcamp aggregate from its seeded children, the
// same way the stats service does at runtime.
func setAverages(ctx context.Context, db *mongo.Database, sourceField, targetField string, bootcampIDs []primitive.ObjectID, roundToTens bool) {
	sourceColl := "courses"
	if sourceField == "rating" {
		sourceColl = "reviews"
	}

	for _, id := range bootcampIDs {
		cursor, err := db.Collection(sourceColl).Aggregate(ctx, mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{"bootcamp": id}}},
			bson.D{{Key: "$group", Value: bson.M{"_id": "$bootcamp", "average": bson.M{"$avg": "$" + sourceField}}}},
		})
		if err != nil {
			log.Fatalf("Failed to aggregate %s: %v", sourceColl, err)
		}

		var results []struct {
			Average float64 `bson:"average"`
		}
		if err := cursor.All(ctx, &results); err != nil {
			log.Fatalf("Failed to decode %s aggregate: %v", sourceColl, err)
		}
		if len(results) == 0 {
			continue
		}

		var value interface{} = results[0].Average
		if roundToTens {
			value = int(math.Ceil(results[0].Average/10) * 10)
		}
		_, err = db.Collection("bootcamps").UpdateByID(ctx, id, bson.M{"$set": bson.M{targetField: value}})
		if err != nil {
			log.Fatalf("Failed to set %s: %v", targetField, err)
		}
	}
}
