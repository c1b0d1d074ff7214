package utils

import (
	"context"
	"fmt"

	"hoteladmin/config"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseClientOptions builds the credential options shared by every Google client.
func FirebaseClientOptions(cfg config.Config) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	}
	return opts
}

// FirebaseInit initializes the Firebase App used for Authentication and Firestore.
func FirebaseInit(ctx context.Context, cfg config.Config) (*firebase.App, error) {
	var fbConfig *firebase.Config
	if cfg.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, FirebaseClientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	return app, nil
}
