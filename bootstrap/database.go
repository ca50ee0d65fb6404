package bootstrap

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pinora-app/pinora-backend/logging"
	"github.com/pinora-app/pinora-backend/mongo"
)

func mongoURI(env *Env) string {
	if env.DBUser == "" && env.DBPass == "" {
		return fmt.Sprintf("mongodb://%s:%s", env.DBHost, env.DBPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s",
		url.QueryEscape(env.DBUser), url.QueryEscape(env.DBPass), env.DBHost, env.DBPort)
}

func NewMongoDatabase(env *Env) (mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(mongoURI(env))
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	logging.Info().Str("host", env.DBHost).Str("db", env.DBName).Msg("connected to MongoDB")
	return client, nil
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logging.Error().Err(err).Msg("close MongoDB connection")
		return
	}

	logging.Info().Msg("connection to MongoDB closed")
}
