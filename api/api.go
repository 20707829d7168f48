package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"

	"github.com/uplox/uploads-backend/usecases"
	"github.com/uplox/uploads-backend/utils"
)

type Configuration struct {
	Env            string
	Port           string
	DefaultTimeout time.Duration
}

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(duration),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.String(http.StatusRequestTimeout, "request timeout")
		}),
	)
}

func loggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctxWithLogger := utils.StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctxWithLogger)
		c.Next()
	}
}

func NewServer(
	conf Configuration,
	usecases usecases.Usecases,
	logger *slog.Logger,
) *http.Server {
	if conf.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(loggerMiddleware(logger))
	r.Use(timeoutMiddleware(conf.DefaultTimeout))

	addRoutes(r, usecases)

	return &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", conf.Port),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      conf.DefaultTimeout + 5*time.Second,
	}
}
