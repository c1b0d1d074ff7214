package database

import (
	"context"
	"fmt"
	"time"

	"hoteladmin/config"
	"hoteladmin/database/docstore"

	firebase "firebase.google.com/go/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// InitDB opens the document store selected by STORE_DRIVER.
// The Firebase app is only needed by the firestore driver.
func InitDB(ctx context.Context, cfg config.Config, app *firebase.App, logger *zap.Logger) (docstore.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreFirestore:
		if app == nil {
			return nil, fmt.Errorf("firestore driver requires an initialized firebase app")
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to open Firestore: %w", err)
		}
		logger.Info("Connected to Firestore", zap.String("project", cfg.FirebaseProjectID))
		return docstore.NewFirestoreStore(client), nil

	case config.StoreMongo:
		client, err := connectMongo(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to MongoDB successfully", zap.String("database", cfg.DatabaseName))
		return docstore.NewMongoStore(client, cfg.DatabaseName), nil

	case config.StoreMemory:
		logger.Warn("Using in-memory document store; data is lost on restart")
		return docstore.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func connectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}
