package main

import (
	"context"

	"go.uber.org/zap"

	platformauth "github.com/zenGate-Global/palmyra-events/platform/go/auth"
	"github.com/zenGate-Global/palmyra-events/platform/go/gcp"
)

// buildVerifier selects the token verifier for the configured auth provider.
func buildVerifier(ctx context.Context, cfg config, gcpConfig gcp.Config, logger *zap.Logger) platformauth.VerifyFunc {
	switch cfg.AuthProvider {
	case "firebase":
		fbAuth, err := gcp.InitFirebaseAuth(ctx, gcpConfig)
		if err != nil {
			logger.Fatal("init firebase auth", zap.Error(err))
		}
		return platformauth.FirebaseTokenVerifier(fbAuth)
	case "dev":
		logger.Warn("using dev auth middleware; do not use in production")
		return platformauth.UnsignedTokenVerifier()
	default:
		logger.Fatal("unsupported auth provider", zap.String("provider", cfg.AuthProvider))
		return nil
	}
}
