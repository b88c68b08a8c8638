package main

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pressfeed/pressfeed/cache"
	"github.com/pressfeed/pressfeed/server"
	"github.com/pressfeed/pressfeed/store"
	"github.com/pressfeed/pressfeed/utils"
	"github.com/pressfeed/pressfeed/utils/dotenv"
	"github.com/pressfeed/pressfeed/utils/flag"
	. "github.com/pressfeed/pressfeed/utils/log"
)

// cacheTTL reads PRESSFEED_CACHE_TTL (seconds) with the historical 5s
// fallback.
func cacheTTL() time.Duration {
	raw := os.Getenv("PRESSFEED_CACHE_TTL")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return server.DefaultCacheTTL
	}
	return time.Duration(seconds) * time.Second
}

// feedCache picks redis when one is configured, otherwise an in-process
// cache. A single replica behaves identically either way.
func feedCache() cache.Cache {
	if os.Getenv("REDIS_HOST") != "" {
		return cache.NewRedis()
	}
	return cache.NewMemory()
}

func main() {
	flag.Parse()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("cannot connect to DB: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	s := server.New(store.NewGormStore(db), feedCache(), cacheTTL())

	router := s.Router(gin.Logger(), cors.Default())

	Log.Info("api server starts up")
	router.Run(":8080")
}
