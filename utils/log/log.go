package log

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pressfeed/pressfeed/utils/dotenv"
	"github.com/pressfeed/pressfeed/utils/flag"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	if os.Getenv("PRESSFEED_ENV") == dotenv.ProdEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Log = logger.WithFields(
		logrus.Fields{"service": *flag.ServiceName, "is_development": os.Getenv("PRESSFEED_ENV") != dotenv.ProdEnv},
	)
}
