package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Config selects the Google Cloud project and credentials used by the API clients.
// An empty CredentialsFile falls back to Application Default Credentials.
type Config struct {
	ProjectID       string
	CredentialsFile string
}

// ClientOptions returns the options shared by every Google API client.
func (c Config) ClientOptions() []option.ClientOption {
	if c.CredentialsFile == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(c.CredentialsFile)}
}

// GetApp creates a Firebase App instance.
func GetApp(ctx context.Context, cfg Config) (*firebase.App, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, cfg.ClientOptions()...)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// InitFirebaseAuth initializes the Firebase App and returns an Auth client used to verify ID tokens.
func InitFirebaseAuth(ctx context.Context, cfg Config) (*firebaseauth.Client, error) {
	firebaseApp, err := GetApp(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app [%w]", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase auth [%w]", err)
	}

	return fbAuth, nil
}

// NewStorageClient builds a Cloud Storage client with the configured credentials.
func NewStorageClient(ctx context.Context, cfg Config) (*storage.Client, error) {
	client, err := storage.NewClient(ctx, cfg.ClientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("error initializing storage client [%w]", err)
	}
	return client, nil
}
