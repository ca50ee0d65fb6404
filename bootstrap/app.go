package bootstrap

import (
	"time"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/logging"
	"github.com/pinora-app/pinora-backend/mediahost"
	"github.com/pinora-app/pinora-backend/mongo"
)

type Application struct {
	Env       *Env
	Mongo     mongo.Client
	MediaHost domain.MediaHost
}

// App 加载配置、初始化日志并连接数据库
func App() (Application, error) {
	app := Application{}

	env, err := NewEnv()
	if err != nil {
		return app, err
	}
	app.Env = env

	logging.Init(logging.Config{Level: env.LogLevel, Format: env.LogFormat})

	client, err := NewMongoDatabase(env)
	if err != nil {
		return app, err
	}
	app.Mongo = client

	app.MediaHost = mediahost.New(mediahost.Config{
		Endpoint:   env.MediaHostEndpoint,
		PrivateKey: env.MediaHostPrivateKey,
		Timeout:    time.Duration(env.ContextTimeout) * time.Second,
	})

	return app, nil
}

func (app *Application) Database() mongo.Database {
	return app.Mongo.Database(app.Env.DBName)
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
