package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureStateIndexes prepares the state collection the key-value driver writes
// into. Keys are the document _id, so the only extra index is on updatedAt for
// operational queries.
func EnsureStateIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("state").Indexes()

	updatedAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "updatedAt", Value: -1}},
		Options: options.Index().SetName("updatedAt_index"),
	}

	log.Println("EnsureStateIndexes: creating updatedAt_index index")
	_, err := indexes.CreateOne(ctx, updatedAtIndex)
	if err != nil {
		log.Println("EnsureStateIndexes: updatedAt index error:", err)
		return err
	}
	log.Println("EnsureStateIndexes: updatedAt_index index created")
	return nil
}
